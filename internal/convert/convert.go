// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives the per-chapter conversion: it collects each
// chapter's images, decides whether a PDF has to be built, and hands the
// work to an Assembler. Outcomes are reported to an Observer; nothing in
// this package prints.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/manga2pdf/internal/assemble"
	"github.com/pdiddy/manga2pdf/internal/chapter"
	"github.com/pdiddy/manga2pdf/pkg/types"
)

// Assembler builds one PDF from an ordered list of images. *assemble.Assembler
// is the production implementation.
type Assembler interface {
	// Assemble writes images to outPath, one page per image. On error no
	// file may be left at outPath.
	Assemble(ctx context.Context, images []string, outPath string, onPage assemble.PageFunc) (assemble.Result, error)
}

// Option configures a Processor.
type Option func(*Processor)

// WithObserver sets the observer notified of progress. With more than one
// job the observer is called from several goroutines.
func WithObserver(o Observer) Option {
	return func(p *Processor) {
		if o != nil {
			p.obs = o
		}
	}
}

// WithJobs sets how many chapters may be converted at once. Values below
// one mean one.
func WithJobs(n int) Option {
	return func(p *Processor) {
		p.jobs = max(n, 1)
	}
}

// Processor converts chapter folders into PDFs.
type Processor struct {
	asm  Assembler
	obs  Observer
	jobs int

	// outputs serializes work on the same output path, so two folders that
	// map to one chapter number behave as they would when run in order.
	outputs sync.Map
}

// New returns a Processor that builds PDFs with asm.
func New(asm Assembler, opts ...Option) *Processor {
	p := &Processor{asm: asm, obs: NopObserver{}, jobs: types.DefaultJobs}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ConvertChapter processes one chapter folder under root and returns its
// outcome. It never returns an error: every failure is captured in the
// outcome so sibling chapters keep going.
func (p *Processor) ConvertChapter(ctx context.Context, root string, ch types.Chapter) types.Outcome {
	out := types.Outcome{
		Chapter: ch,
		Number:  chapter.Number(ch.Name),
		Output:  filepath.Join(root, chapter.OutputName(ch.Name)),
	}
	p.obs.ChapterStarted(ch)
	out = p.convert(ctx, ch, out)
	p.obs.ChapterFinished(out)
	return out
}

func (p *Processor) convert(ctx context.Context, ch types.Chapter, out types.Outcome) types.Outcome {
	images, err := chapter.Images(ch.Path)
	if err != nil {
		return failed(out, types.ReasonUnreadable, err)
	}
	out.Images = len(images)
	p.obs.ImagesCollected(ch, len(images))

	if len(images) == 0 {
		return failed(out, types.ReasonNoImages, nil)
	}

	mu := p.lockOutput(out.Output)
	defer mu.Unlock()

	if _, err := os.Stat(out.Output); err == nil {
		out.Status = types.OutcomeSkipped
		return out
	}

	p.obs.ConversionStarted(ch, out.Output)
	res, err := p.asm.Assemble(ctx, images, out.Output, func(done, total int) {
		p.obs.PageAdded(ch, done, total)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return failed(out, types.ReasonInterrupted, err)
		}
		return failed(out, types.ReasonPDFFailed, err)
	}

	out.Status = types.OutcomeConverted
	out.Pages = res.Pages
	return out
}

func (p *Processor) lockOutput(path string) *sync.Mutex {
	v, _ := p.outputs.LoadOrStore(path, new(sync.Mutex))
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

func failed(out types.Outcome, reason string, err error) types.Outcome {
	out.Status = types.OutcomeFailed
	out.Reason = reason
	out.Err = err
	return out
}

// ConvertAll converts every chapter folder directly under root and returns
// the summary with outcomes in discovery order. The returned error is
// either a configuration error (bad root) or the context's error when the
// run was cancelled; in the latter case the summary is still complete and
// chapters that never started are marked interrupted.
func (p *Processor) ConvertAll(ctx context.Context, root string) (types.Summary, error) {
	if err := chapter.ValidateRoot(root); err != nil {
		return types.Summary{Root: root}, err
	}

	chapters, err := chapter.Folders(root)
	if err != nil {
		return types.Summary{Root: root}, fmt.Errorf("listing chapter folders: %w", err)
	}
	p.obs.RunStarted(root, len(chapters))

	outcomes := make([]types.Outcome, len(chapters))
	var g errgroup.Group
	g.SetLimit(p.jobs)
	for i, ch := range chapters {
		if ctx.Err() != nil {
			outcomes[i] = interrupted(root, ch, ctx.Err())
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = interrupted(root, ch, err)
				return nil
			}
			outcomes[i] = p.ConvertChapter(ctx, root, ch)
			return nil
		})
	}
	g.Wait()

	return types.Summarize(root, outcomes), ctx.Err()
}

func interrupted(root string, ch types.Chapter, err error) types.Outcome {
	return failed(types.Outcome{
		Chapter: ch,
		Number:  chapter.Number(ch.Name),
		Output:  filepath.Join(root, chapter.OutputName(ch.Name)),
	}, types.ReasonInterrupted, err)
}
