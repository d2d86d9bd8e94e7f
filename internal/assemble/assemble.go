// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble builds a multi-page PDF from an ordered list of page
// images, one page per image at the image's own size.
package assemble

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/sunshineplan/imgconv"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/manga2pdf/pkg/types"
)

const (
	pointsPerInch = 72.0
	creator       = "manga2pdf"
)

// ErrNoImages is returned when Assemble is called with an empty image list.
var ErrNoImages = errors.New("no images to assemble")

// PageFunc is called after each page is added with the number of pages done
// and the total.
type PageFunc func(done, total int)

// Result describes a written PDF.
type Result struct {
	Pages int
	Bytes int64
}

// Assembler turns page images into PDF documents.
type Assembler struct {
	cfg types.PDFConfig
}

// New returns an Assembler using cfg; out-of-range values fall back to the
// defaults.
func New(cfg types.PDFConfig) *Assembler {
	return &Assembler{cfg: cfg.Normalize()}
}

// page is an encoded JPEG ready to be placed on a page.
type page struct {
	data          []byte
	width, height int
}

// Assemble writes images, in order, to a PDF at outPath. The document is
// built in memory and only written once every page succeeded, so a failure
// never leaves a file at outPath. onPage may be nil.
func (a *Assembler) Assemble(ctx context.Context, images []string, outPath string, onPage PageFunc) (Result, error) {
	if len(images) == 0 {
		return Result{}, ErrNoImages
	}

	var pdf *gofpdf.Fpdf
	for i, path := range images {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		p, err := a.encodePage(path)
		if err != nil {
			return Result{}, err
		}

		w, h := a.pageSize(p)
		if pdf == nil {
			pdf = newDocument(w, h)
		}
		addPage(pdf, fmt.Sprintf("page-%05d", i+1), p, w, h)
		if pdf.Err() {
			return Result{}, fmt.Errorf("adding %s: %w", filepath.Base(path), pdf.Error())
		}

		if onPage != nil {
			onPage(i+1, len(images))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Result{}, fmt.Errorf("serializing PDF: %w", err)
	}

	if a.cfg.Verify {
		if err := verify(buf.Bytes(), len(images)); err != nil {
			return Result{}, err
		}
	}

	if err := writeAtomic(outPath, buf.Bytes()); err != nil {
		return Result{}, err
	}
	return Result{Pages: len(images), Bytes: int64(buf.Len())}, nil
}

// encodePage reads one image and returns it as JPEG data. Three-channel JPEG
// files are passed through untouched; everything else is decoded,
// normalized to RGB and re-encoded.
func (a *Assembler) encodePage(path string) (page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return page{}, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return page{}, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	if format == "jpeg" && cfg.ColorModel == color.YCbCrModel {
		return page{data: data, width: cfg.Width, height: cfg.Height}, nil
	}

	// Pages keep their stored orientation, like the passthrough path above.
	img, err := imgconv.Decode(bytes.NewReader(data), imgconv.AutoOrientation(false))
	if err != nil {
		return page{}, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	img = Normalize(img)

	var out bytes.Buffer
	err = imgconv.Write(&out, img, &imgconv.FormatOption{
		Format:       imgconv.JPEG,
		EncodeOption: []imgconv.EncodeOption{imgconv.Quality(a.cfg.JPEGQuality)},
	})
	if err != nil {
		return page{}, fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	b := img.Bounds()
	return page{data: out.Bytes(), width: b.Dx(), height: b.Dy()}, nil
}

// pageSize converts the pixel size of p to points.
func (a *Assembler) pageSize(p page) (w, h float64) {
	scale := pointsPerInch / a.cfg.Resolution
	return float64(p.width) * scale, float64(p.height) * scale
}

func newDocument(w, h float64) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator(creator, true)
	return pdf
}

func addPage(pdf *gofpdf.Fpdf, name string, p page, w, h float64) {
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(p.data))
	pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
}

// writeAtomic writes data to a temporary file next to dest and renames it
// into place.
func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".manga2pdf-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	writeErr := tmp.Chmod(0o644)
	if writeErr == nil {
		_, writeErr = tmp.Write(data)
	}
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing PDF: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
