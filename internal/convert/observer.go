// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "github.com/pdiddy/manga2pdf/pkg/types"

// Observer is notified as a run progresses. Calls for one chapter always
// arrive in order: ChapterStarted, ImagesCollected, ConversionStarted,
// PageAdded (once per page), ChapterFinished. The middle steps are skipped
// when the chapter stops early.
type Observer interface {
	RunStarted(root string, chapters int)
	ChapterStarted(ch types.Chapter)
	ImagesCollected(ch types.Chapter, count int)
	ConversionStarted(ch types.Chapter, output string)
	PageAdded(ch types.Chapter, done, total int)
	ChapterFinished(o types.Outcome)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) RunStarted(string, int) {}
func (NopObserver) ChapterStarted(types.Chapter) {}
func (NopObserver) ImagesCollected(types.Chapter, int) {}
func (NopObserver) ConversionStarted(types.Chapter, string) {}
func (NopObserver) PageAdded(types.Chapter, int, int) {}
func (NopObserver) ChapterFinished(types.Outcome) {}
