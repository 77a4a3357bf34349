// Package rez provides a resizer backed by "github.com/bamiaux/rez",
// which carries SIMD assembly on amd64.
package rez

import (
	"image"

	"github.com/bamiaux/rez"

	improc "github.com/sc2682/ImageProcessor"
)

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct{}

var _ improc.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	err := rez.Convert(m, img, rez.NewLanczosFilter(3))
	if err != nil {
		return nil, err
	}
	return m, nil
}
