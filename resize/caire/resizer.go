// Package caire provides a content-aware resizer backed by
// "github.com/esimov/caire" (seam carving).
package caire

import (
	"image"
	"image/draw"

	"github.com/esimov/caire"

	improc "github.com/sc2682/ImageProcessor"
)

// Resizer uses "github.com/esimov/caire"
type Resizer struct{}

var _ improc.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	p := &caire.Processor{
		BlurRadius:     1, // or ie. 4
		SobelThreshold: 4, // or ie. 2
		NewWidth:       size.X,
		NewHeight:      size.Y,
	}
	nimg, ok := img.(*image.NRGBA)
	if !ok {
		b := img.Bounds()
		nimg = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nimg, nimg.Bounds(), img, b.Min, draw.Src)
	}
	return p.Resize(nimg)
}
