// Package bild provides a resizer backed by "github.com/anthonynsimon/bild".
package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	improc "github.com/sc2682/ImageProcessor"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ improc.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := transform.Resize(img, size.X, size.Y, transform.Lanczos)
	return m, nil
}
