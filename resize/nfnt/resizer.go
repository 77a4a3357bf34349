// Package nfnt provides a resizer backed by "github.com/nfnt/resize".
package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	improc "github.com/sc2682/ImageProcessor"
)

// Resizer uses "github.com/nfnt/resize" with Lanczos3 resampling.
type Resizer struct{}

var _ improc.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
	return m, nil
}
