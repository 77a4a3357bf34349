// Package imageprocessor resamples rasters. The heavy lifting lives in the
// resize sub-package; this package wires decoded images, weight tables and
// the executor together and defines the Resizer interface the pluggable
// backends under resize/ implement.
package imageprocessor

import (
	"image"
	"log/slog"

	"github.com/sc2682/ImageProcessor/geom"
	"github.com/sc2682/ImageProcessor/internal/consts"
	"github.com/sc2682/ImageProcessor/internal/errors"
	"github.com/sc2682/ImageProcessor/pixel"
	"github.com/sc2682/ImageProcessor/resize"
	"github.com/sc2682/ImageProcessor/sampling"
)

// Resizer resizes images
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

type resizeConfig struct {
	sampler     sampling.Sampler
	parallelism int
	progress    func()
	logger      *slog.Logger
}

// ResizeOption configures Resize and Thumbnail.
type ResizeOption func(*resizeConfig)

// WithSampler selects the sampling strategy. The default is the
// Mitchell-Netravali cubic.
func WithSampler(s sampling.Sampler) ResizeOption {
	return func(c *resizeConfig) { c.sampler = s }
}

// WithParallelism bounds concurrent row processing, n <= 0 means GOMAXPROCS.
func WithParallelism(n int) ResizeOption {
	return func(c *resizeConfig) { c.parallelism = n }
}

// WithProgress registers a per-row callback, see resize.WithProgress.
func WithProgress(fn func()) ResizeOption {
	return func(c *resizeConfig) { c.progress = fn }
}

// WithLogger attaches a logger for debug records.
func WithLogger(l *slog.Logger) ResizeOption {
	return func(c *resizeConfig) { c.logger = l }
}

// Resize resamples img to width x height.
func Resize(img image.Image, width, height int, opts ...ResizeOption) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	cfg := resizeConfig{sampler: sampling.Weighted(sampling.NewMitchellNetravaliFilter())}
	for _, opt := range opts {
		opt(&cfg)
	}

	source, err := pixel.FromImage(img)
	if err != nil {
		return nil, err
	}
	// Matching dimensions need no resampling, the executor would treat
	// this as a done copy and leave the target untouched.
	if source.Width() == width && source.Height() == height {
		return pixel.ToNRGBA(source)
	}

	target := pixel.NewBuffer[pixel.RGBA](width, height)
	targetRect := geom.Rect(0, 0, width, height)
	sourceRect := source.Bounds()

	var weights resize.WeightSource
	if !cfg.sampler.IsNearestNeighbor() {
		weights = resize.TablesFor(cfg.sampler.Filter(), targetRect, sourceRect)
	}
	ex := resize.New[pixel.RGBA](cfg.sampler, weights,
		resize.WithParallelism(cfg.parallelism),
		resize.WithProgress(cfg.progress),
		resize.WithLogger(cfg.logger),
	)
	if err := ex.Apply(target, source, targetRect, sourceRect, 0, height); err != nil {
		return nil, err
	}
	return pixel.ToNRGBA(target)
}

// Thumbnail resamples img to fit within maxWidth x maxHeight while keeping
// its aspect ratio. Images already within bounds are returned converted but
// not resampled.
func Thumbnail(img image.Image, maxWidth, maxHeight int, opts ...ResizeOption) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxWidth && h <= maxHeight {
		return Resize(img, w, h, opts...)
	}
	if w*maxHeight > h*maxWidth {
		h = h * maxWidth / w
		if h < 1 {
			h = 1
		}
		w = maxWidth
	} else {
		w = w * maxHeight / h
		if w < 1 {
			w = 1
		}
		h = maxHeight
	}
	return Resize(img, w, h, opts...)
}
