// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"image"

	"golang.org/x/image/draw"
)

// ColorMode classifies a decoded image for PDF embedding.
type ColorMode int

const (
	// ModeRGB is three-channel color without alpha; used unchanged.
	ModeRGB ColorMode = iota
	// ModeTransparent has an alpha channel or a palette; flattened onto white.
	ModeTransparent
	// ModeOther is any other color model (gray, CMYK, ...); converted to RGB.
	ModeOther
)

func (m ColorMode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeTransparent:
		return "transparent"
	default:
		return "other"
	}
}

// Classify returns the color mode of img.
func Classify(img image.Image) ColorMode {
	switch img.(type) {
	case *image.YCbCr:
		return ModeRGB
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64,
		*image.Paletted, *image.NYCbCrA, *image.Alpha, *image.Alpha16:
		return ModeTransparent
	default:
		return ModeOther
	}
}

// Normalize returns img in a form that can be encoded as an RGB page.
// Transparent pixels become white, partially transparent pixels are blended
// with white, and other color models are converted through their RGBA
// conversion.
func Normalize(img image.Image) image.Image {
	switch Classify(img) {
	case ModeRGB:
		return img
	case ModeTransparent:
		return flatten(img)
	default:
		return toRGB(img)
	}
}

// flatten composites img over an opaque white canvas.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

func toRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
