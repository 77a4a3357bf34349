// Package testutil contains raster builders and comparison helpers for tests.
package testutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/sc2682/ImageProcessor/pixel"
)

// NewSolidBuffer returns a buffer filled with one pixel value.
func NewSolidBuffer(t *testing.T, width, height int, p pixel.RGBA) *pixel.Buffer[pixel.RGBA] {
	t.Helper()
	buf := pixel.NewBuffer[pixel.RGBA](width, height)
	frame, err := buf.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	defer frame.Release()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.Set(x, y, p)
		}
	}
	return buf
}

// NewPatternBuffer returns a buffer where every pixel encodes its own
// coordinates: R = x, G = y, B = x+y, A = 255. Handy for verifying exact
// sampling positions.
func NewPatternBuffer(t *testing.T, width, height int) *pixel.Buffer[pixel.RGBA] {
	t.Helper()
	buf := pixel.NewBuffer[pixel.RGBA](width, height)
	frame, err := buf.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	defer frame.Release()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.Set(x, y, PatternPixel(x, y))
		}
	}
	return buf
}

// PatternPixel returns the pixel NewPatternBuffer stores at (x, y).
func PatternPixel(x, y int) pixel.RGBA {
	return pixel.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255}
}

// ReadAll copies a buffer's pixels into a slice in row-major order.
func ReadAll(t *testing.T, buf *pixel.Buffer[pixel.RGBA]) []pixel.RGBA {
	t.Helper()
	frame, err := buf.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	defer frame.Release()
	pixels := make([]pixel.RGBA, 0, buf.Width()*buf.Height())
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			pixels = append(pixels, frame.Get(x, y))
		}
	}
	return pixels
}

// NewSolidImage returns a solid NRGBA image of the given size.
func NewSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
