// Package imaging provides a resizer backed by "github.com/kovidgoyal/imaging".
package imaging

import (
	"image"

	"github.com/kovidgoyal/imaging"

	improc "github.com/sc2682/ImageProcessor"
)

// Resizer uses "github.com/kovidgoyal/imaging"
type Resizer struct{}

var _ improc.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return imaging.Resize(img, size.X, size.Y, imaging.Lanczos), nil
}
