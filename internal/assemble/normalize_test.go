// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbaAt(t *testing.T, img image.Image, x, y int) [4]int {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	return [4]int{int(r >> 8), int(g >> 8), int(b >> 8), int(a >> 8)}
}

func TestClassify(t *testing.T) {
	rect := image.Rect(0, 0, 2, 2)
	tests := []struct {
		name string
		img  image.Image
		want ColorMode
	}{
		{"ycbcr", image.NewYCbCr(rect, image.YCbCrSubsampleRatio420), ModeRGB},
		{"rgba", image.NewRGBA(rect), ModeTransparent},
		{"nrgba", image.NewNRGBA(rect), ModeTransparent},
		{"nrgba64", image.NewNRGBA64(rect), ModeTransparent},
		{"paletted", image.NewPaletted(rect, color.Palette{color.Black, color.White}), ModeTransparent},
		{"nycbcra", image.NewNYCbCrA(rect, image.YCbCrSubsampleRatio444), ModeTransparent},
		{"gray", image.NewGray(rect), ModeOther},
		{"gray16", image.NewGray16(rect), ModeOther},
		{"cmyk", image.NewCMYK(rect), ModeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.img))
		})
	}
}

func TestNormalizeTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 255, A: 128})

	out := Normalize(img)
	require.Equal(t, image.Rect(0, 0, 3, 1), out.Bounds())

	assert.Equal(t, [4]int{255, 255, 255, 255}, rgbaAt(t, out, 0, 0), "transparent pixel becomes white")
	assert.Equal(t, [4]int{255, 0, 0, 255}, rgbaAt(t, out, 1, 0), "opaque pixel keeps its color")

	half := rgbaAt(t, out, 2, 0)
	assert.Equal(t, 255, half[0])
	assert.InDelta(t, 127, half[1], 1)
	assert.InDelta(t, 127, half[2], 1)
	assert.Equal(t, 255, half[3])
}

func TestNormalizePalettedTransparentIndex(t *testing.T) {
	palette := color.Palette{color.Transparent, color.RGBA{B: 255, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), palette)
	img.SetColorIndex(0, 0, 0)
	img.SetColorIndex(1, 0, 1)

	out := Normalize(img)

	assert.Equal(t, [4]int{255, 255, 255, 255}, rgbaAt(t, out, 0, 0))
	assert.Equal(t, [4]int{0, 0, 255, 255}, rgbaAt(t, out, 1, 0))
}

func TestNormalizeOtherModes(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 100})
	assert.Equal(t, [4]int{100, 100, 100, 255}, rgbaAt(t, Normalize(gray), 0, 0))

	cmyk := image.NewCMYK(image.Rect(0, 0, 1, 1))
	cmyk.SetCMYK(0, 0, color.CMYK{M: 255, Y: 255})
	assert.Equal(t, [4]int{255, 0, 0, 255}, rgbaAt(t, Normalize(cmyk), 0, 0))
}

func TestNormalizeRGBUnchanged(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420)
	assert.Same(t, img, Normalize(img).(*image.YCbCr))
}

func TestNormalizeRebasesBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.SetNRGBA(5, 5, color.NRGBA{G: 255, A: 255})
	sub := img.SubImage(image.Rect(5, 5, 8, 8))

	out := Normalize(sub)

	assert.Equal(t, image.Rect(0, 0, 3, 3), out.Bounds())
	assert.Equal(t, [4]int{0, 255, 0, 255}, rgbaAt(t, out, 0, 0))
	assert.Equal(t, [4]int{255, 255, 255, 255}, rgbaAt(t, out, 1, 1))
}
