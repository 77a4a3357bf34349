// Package resize implements the resampling executor: a separable two-pass
// convolution over precomputed weight tables, with a direct nearest-neighbor
// path and a no-op fast path. The executor owns no state between calls and
// may be invoked for chunked row ranges of the same target.
package resize

import (
	"log/slog"

	"github.com/sc2682/ImageProcessor/geom"
	"github.com/sc2682/ImageProcessor/internal/consts"
	"github.com/sc2682/ImageProcessor/internal/errors"
	"github.com/sc2682/ImageProcessor/internal/logx"
	"github.com/sc2682/ImageProcessor/pixel"
	"github.com/sc2682/ImageProcessor/sampling"
)

type config struct {
	parallelism int
	progress    func()
	logger      *slog.Logger
}

// Option configures an Executor.
type Option func(*config)

// WithParallelism bounds the number of rows processed concurrently.
// n <= 0 means GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(c *config) { c.parallelism = n }
}

// WithProgress registers a callback fired once per destination row written in
// the final pass. It may be invoked concurrently from multiple workers and in
// any row order.
func WithProgress(fn func()) Option {
	return func(c *config) { c.progress = fn }
}

// WithLogger attaches a logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Executor resamples a source raster into a target raster. The sampler
// selects the algorithm; weights supplies the contribution tables for the
// weighted path and may be nil for nearest-neighbor.
type Executor[P pixel.Pixel[P]] struct {
	sampler sampling.Sampler
	weights WeightSource
	cfg     config
}

// New returns an executor for the given sampler and weight source.
func New[P pixel.Pixel[P]](sampler sampling.Sampler, weights WeightSource, opts ...Option) *Executor[P] {
	e := &Executor[P]{sampler: sampler, weights: weights}
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

// Apply overwrites target's pixels inside targetRect, restricted to rows in
// [startRow, endRow), with values resampled from sourceRect of source. The
// target must already be allocated at its final dimensions and must not
// alias source. Coordinates falling outside the target raster are skipped,
// never an error. Rectangle containment and weight table sizing are caller
// contracts and are not re-validated here.
func (e *Executor[P]) Apply(target, source *pixel.Buffer[P], targetRect, sourceRect geom.Rectangle, startRow, endRow int) error {
	if e == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if target == nil || source == nil {
		return errors.New(consts.ErrNilParam)
	}
	// Degenerate resize, the copy is assumed already done.
	if source.Bounds().Eq(target.Bounds()) && sourceRect.Eq(targetRect) {
		return nil
	}
	if e.sampler.IsNearestNeighbor() {
		logx.Debug(`nearest-neighbor resize`, e.cfg.logger,
			`rows`, endRow-startRow, `width`, targetRect.Width)
		return e.applyNearest(target, source, targetRect, sourceRect, startRow, endRow)
	}
	if e.weights == nil {
		return errors.New(consts.ErrNilParam)
	}
	logx.Debug(`weighted resize`, e.cfg.logger,
		`sampler`, e.sampler.Name(), `rows`, endRow-startRow, `width`, targetRect.Width)
	return e.applyWeighted(target, source, targetRect, startRow, endRow)
}

func (e *Executor[P]) applyNearest(target, source *pixel.Buffer[P], targetRect, sourceRect geom.Rectangle, startRow, endRow int) error {
	widthFactor := float64(sourceRect.Width) / float64(targetRect.Width)
	heightFactor := float64(sourceRect.Height) / float64(targetRect.Height)

	src, err := source.Acquire()
	if err != nil {
		return err
	}
	defer src.Release()
	dst, err := target.Acquire()
	if err != nil {
		return err
	}
	defer dst.Release()

	width, height := target.Width(), target.Height()
	forEachRow(e.cfg.parallelism, startRow, endRow, func(y int) {
		if y < 0 || y >= height {
			return
		}
		// Origins are relative to the destination rectangle's local
		// offset so that a source sub-rectangle maps onto a target
		// sub-rectangle at any position.
		originY := int(float64(y-startRow) * heightFactor)
		for x := targetRect.X; x < targetRect.Right(); x++ {
			if x < 0 || x >= width {
				continue
			}
			originX := int(float64(x-targetRect.X) * widthFactor)
			dst.Set(x, y, src.Get(originX, originY))
		}
		e.rowProcessed()
	})
	return nil
}

func (e *Executor[P]) applyWeighted(target, source *pixel.Buffer[P], targetRect geom.Rectangle, startRow, endRow int) error {
	// Horizontal pass result, target's final width at the source's height.
	// Owned by this call only.
	scratch := pixel.NewBuffer[P](target.Width(), source.Height())

	if err := e.horizontalPass(scratch, source, targetRect); err != nil {
		return err
	}
	// forEachRow has drained every pass-1 row by now; any vertical weight
	// row may reference any scratch row.
	return e.verticalPass(target, scratch, startRow, endRow)
}

// horizontalPass convolves every source row into the scratch raster. It
// covers the full source height rather than the invocation's row range
// because each pass-2 row may read any scratch row.
func (e *Executor[P]) horizontalPass(scratch, source *pixel.Buffer[P], targetRect geom.Rectangle) error {
	src, err := source.Acquire()
	if err != nil {
		return err
	}
	defer src.Release()
	dst, err := scratch.Acquire()
	if err != nil {
		return err
	}
	defer dst.Release()

	width := scratch.Width()
	forEachRow(e.cfg.parallelism, 0, source.Height(), func(y int) {
		for x := targetRect.X; x < targetRect.Right(); x++ {
			if x < 0 || x >= width {
				continue
			}
			// The table is indexed from 0 regardless of where the
			// rectangle starts.
			row := e.weights.Horizontal(x - targetRect.X)
			var sum pixel.Vector4
			for _, w := range row.Values[:row.Sum] {
				sum = sum.Add(src.Get(w.Index, y).ToVector4().Scale(w.Coefficient))
			}
			var p P
			dst.Set(x, y, p.FromVector4(sum))
		}
	})
	return nil
}

// verticalPass convolves scratch columns into the target rows of
// [startRow, endRow). Only this pass reports row progress.
func (e *Executor[P]) verticalPass(target, scratch *pixel.Buffer[P], startRow, endRow int) error {
	src, err := scratch.Acquire()
	if err != nil {
		return err
	}
	defer src.Release()
	dst, err := target.Acquire()
	if err != nil {
		return err
	}
	defer dst.Release()

	width, height := target.Width(), target.Height()
	forEachRow(e.cfg.parallelism, startRow, endRow, func(y int) {
		if y < 0 || y >= height {
			return
		}
		row := e.weights.Vertical(y - startRow)
		for x := 0; x < width; x++ {
			var sum pixel.Vector4
			for _, w := range row.Values[:row.Sum] {
				sum = sum.Add(src.Get(x, w.Index).ToVector4().Scale(w.Coefficient))
			}
			var p P
			dst.Set(x, y, p.FromVector4(sum))
		}
		e.rowProcessed()
	})
	return nil
}

func (e *Executor[P]) rowProcessed() {
	if e.cfg.progress != nil {
		e.cfg.progress()
	}
}
