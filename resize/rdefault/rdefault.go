// Package rdefault provides the default resizer selection.
package rdefault

import (
	"image"
	"runtime"

	improc "github.com/sc2682/ImageProcessor"
	"github.com/sc2682/ImageProcessor/resize/rez"
	"github.com/sc2682/ImageProcessor/resize/xdraw"
	"github.com/sc2682/ImageProcessor/sampling"
)

type Resizer struct{}

var _ improc.Resizer = (*Resizer)(nil)

// Resize picks the fastest suitable implementation: SIMD-assisted rez on
// amd64 for the raster formats it supports, the weighted executor otherwise,
// with x/image/draw as the last fallback.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if runtime.GOARCH == `amd64` {
		switch img.(type) {
		case *image.YCbCr, *image.RGBA, *image.NRGBA, *image.Gray:
			// use SIMD assembly if possible
			if m, err := (&rez.Resizer{}).Resize(img, size); err == nil {
				return m, nil
			}
		}
	}
	m, err := improc.Resize(img, size.X, size.Y,
		improc.WithSampler(sampling.Weighted(sampling.NewCatmullRomFilter())))
	if err != nil {
		return xdraw.ApproxBiLinear().Resize(img, size)
	}
	return m, nil
}
