// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report presents a conversion run: per-chapter status lines and
// the closing summary on the console, and an optional YAML or JSON report
// file.
package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/pdiddy/manga2pdf/pkg/types"
)

const ruleWidth = 60

var rule = strings.Repeat("=", ruleWidth)

// Console writes human-readable progress to w. It implements
// convert.Observer and is safe for concurrent use.
type Console struct {
	mu       sync.Mutex
	w        io.Writer
	progress bool
	buffered bool

	// chapter output held back until the chapter finishes, keyed by path.
	pending map[string]*bytes.Buffer
	// images found in the chapter currently being converted.
	images int
	bar    *progressbar.ProgressBar
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithProgressBar shows a page progress bar while a PDF is built. It has no
// effect in buffered mode.
func WithProgressBar(on bool) ConsoleOption {
	return func(c *Console) { c.progress = on }
}

// WithBuffering holds each chapter's lines until the chapter finishes and
// writes them as one block. Use it when chapters run concurrently.
func WithBuffering(on bool) ConsoleOption {
	return func(c *Console) { c.buffered = on }
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w, pending: make(map[string]*bytes.Buffer)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Banner prints the program title.
func (c *Console) Banner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, "Manga Chapter to PDF Converter")
	fmt.Fprintln(c.w, rule)
}

// RunStarted prints the run header.
func (c *Console) RunStarted(root string, chapters int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "\n%s\nProcessing chapters in: %s\n%s\n\n", rule, root, rule)
	if chapters == 0 {
		fmt.Fprintln(c.w, "No chapter folders found in the selected directory")
	}
}

// ChapterStarted prints the chapter folder name.
func (c *Console) ChapterStarted(ch types.Chapter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buffered {
		c.pending[ch.Path] = new(bytes.Buffer)
	}
	fmt.Fprintf(c.out(ch), "Processing: %s\n", ch.Name)
}

// ImagesCollected prints how many images were found.
func (c *Console) ImagesCollected(ch types.Chapter, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if count == 0 {
		fmt.Fprintf(c.out(ch), "  ⚠ No images found in %s\n", ch.Name)
		return
	}
	c.images = count
	fmt.Fprintf(c.out(ch), "  Found %d images\n", count)
}

// ConversionStarted prints the PDF being created and starts the progress
// bar when enabled.
func (c *Console) ConversionStarted(ch types.Chapter, output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out(ch), "  Creating PDF: %s...\n", filepath.Base(output))
	if c.progress && !c.buffered {
		c.bar = progressbar.NewOptions(c.images,
			progressbar.OptionSetWriter(c.w),
			progressbar.OptionSetDescription("  pages"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}
}

// PageAdded advances the progress bar.
func (c *Console) PageAdded(_ types.Chapter, done, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bar != nil {
		c.bar.Set(done)
	}
}

// ChapterFinished prints the chapter's result and, in buffered mode,
// flushes its lines.
func (c *Console) ChapterFinished(o types.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bar != nil {
		c.bar.Finish()
		c.bar = nil
	}

	w := c.out(o.Chapter)
	name := filepath.Base(o.Output)
	switch {
	case o.Status == types.OutcomeConverted:
		fmt.Fprintf(w, "  ✓ Successfully created %s\n", name)
	case o.Status == types.OutcomeSkipped:
		fmt.Fprintf(w, "  ⚠ PDF already exists: %s (skipping)\n", name)
	case o.Reason == types.ReasonUnreadable:
		fmt.Fprintf(w, "  ✗ Cannot read folder %s: %v\n", o.Chapter.Name, o.Err)
	case o.Reason == types.ReasonPDFFailed, o.Reason == types.ReasonInterrupted:
		if o.Err != nil {
			fmt.Fprintf(w, "Error creating PDF: %v\n", o.Err)
		}
		fmt.Fprintf(w, "  ✗ Failed to create PDF for %s\n", o.Chapter.Name)
	}

	if buf, ok := c.pending[o.Chapter.Path]; ok {
		c.w.Write(buf.Bytes())
		delete(c.pending, o.Chapter.Path)
	}
	c.images = 0
}

// Summary prints the closing summary. Nothing is printed for a run without
// chapter folders.
func (c *Console) Summary(s types.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.Total == 0 {
		return
	}

	fmt.Fprintf(c.w, "\n%s\nCONVERSION SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(c.w, "Total chapter folders: %d\n", s.Total)
	fmt.Fprintf(c.w, "Successfully converted: %d\n", s.Succeeded)
	fmt.Fprintf(c.w, "Failed: %d\n", s.Failed)
	fmt.Fprintf(c.w, "PDFs saved to: %s\n", s.Root)
	fmt.Fprintln(c.w, rule)

	if len(s.Failures) > 0 {
		fmt.Fprintln(c.w, "\nFailed Conversions:")
		for _, f := range s.Failures {
			fmt.Fprintf(c.w, "  - %s: %s\n", f.Folder, f.Reason)
		}
		fmt.Fprintln(c.w)
	}
}

// Done prints the closing line.
func (c *Console) Done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, "\nConversion complete!")
}

// out returns where lines for ch go. Callers hold c.mu.
func (c *Console) out(ch types.Chapter) io.Writer {
	if buf, ok := c.pending[ch.Path]; ok {
		return buf
	}
	return c.w
}
