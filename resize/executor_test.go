package resize_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sc2682/ImageProcessor/geom"
	"github.com/sc2682/ImageProcessor/internal/testutil"
	"github.com/sc2682/ImageProcessor/pixel"
	"github.com/sc2682/ImageProcessor/resize"
	"github.com/sc2682/ImageProcessor/sampling"
)

// tableSource hands the executor hand-built weight rows.
type tableSource struct {
	h, v []sampling.WeightRow
}

func (s tableSource) Horizontal(offsetX int) sampling.WeightRow { return s.h[offsetX] }
func (s tableSource) Vertical(offsetY int) sampling.WeightRow   { return s.v[offsetY] }

func identityRows(size int) []sampling.WeightRow {
	rows := make([]sampling.WeightRow, size)
	for i := range rows {
		rows[i] = sampling.WeightRow{Sum: 1, Values: []sampling.Weight{{Index: i, Coefficient: 1}}}
	}
	return rows
}

func TestApplyFastPathLeavesTargetUntouched(t *testing.T) {
	source := testutil.NewPatternBuffer(t, 4, 4)
	sentinel := pixel.RGBA{R: 9, G: 8, B: 7, A: 6}
	target := testutil.NewSolidBuffer(t, 4, 4, sentinel)
	rect := geom.Rect(0, 0, 4, 4)

	var rows atomic.Int64
	ex := resize.New[pixel.RGBA](
		sampling.Weighted(sampling.NewLinearFilter()), nil,
		resize.WithProgress(func() { rows.Add(1) }),
	)
	require.NoError(t, ex.Apply(target, source, rect, rect, 0, 4))

	for _, p := range testutil.ReadAll(t, target) {
		assert.Equal(t, sentinel, p)
	}
	assert.EqualValues(t, 0, rows.Load())
}

func TestNearestNeighborMapping(t *testing.T) {
	source := testutil.NewPatternBuffer(t, 4, 3)
	target := pixel.NewBuffer[pixel.RGBA](2, 2)

	ex := resize.New[pixel.RGBA](sampling.NearestNeighbor, nil)
	require.NoError(t, ex.Apply(target, source,
		geom.Rect(0, 0, 2, 2), geom.Rect(0, 0, 4, 3), 0, 2))

	frame, err := target.Acquire()
	require.NoError(t, err)
	defer frame.Release()
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := testutil.PatternPixel(x*4/2, y*3/2)
			assert.Equal(t, want, frame.Get(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestNearestNeighborSolidColor(t *testing.T) {
	c := pixel.RGBA{R: 10, G: 20, B: 30, A: 255}
	source := testutil.NewSolidBuffer(t, 4, 4, c)
	target := pixel.NewBuffer[pixel.RGBA](2, 2)

	ex := resize.New[pixel.RGBA](sampling.NearestNeighbor, nil)
	require.NoError(t, ex.Apply(target, source,
		geom.Rect(0, 0, 2, 2), geom.Rect(0, 0, 4, 4), 0, 2))

	for _, p := range testutil.ReadAll(t, target) {
		assert.Equal(t, c, p)
	}
}

func TestNearestNeighborSubRectangle(t *testing.T) {
	source := testutil.NewPatternBuffer(t, 4, 4)
	sentinel := pixel.RGBA{R: 1, G: 2, B: 3, A: 4}
	target := testutil.NewSolidBuffer(t, 6, 6, sentinel)

	// 4x4 source into the 2x2 sub-rectangle at (2,2) of a 6x6 canvas.
	ex := resize.New[pixel.RGBA](sampling.NearestNeighbor, nil)
	require.NoError(t, ex.Apply(target, source,
		geom.Rect(2, 2, 2, 2), geom.Rect(0, 0, 4, 4), 2, 4))

	frame, err := target.Acquire()
	require.NoError(t, err)
	defer frame.Release()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if x >= 2 && x < 4 && y >= 2 && y < 4 {
				want := testutil.PatternPixel((x-2)*2, (y-2)*2)
				assert.Equal(t, want, frame.Get(x, y), "pixel (%d,%d)", x, y)
			} else {
				assert.Equal(t, sentinel, frame.Get(x, y), "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestWeightedRampHalves(t *testing.T) {
	// Ramp [0, 64, 128, 192] halved to two averaged samples.
	source := pixel.NewBuffer[pixel.RGBA](4, 1)
	frame, err := source.Acquire()
	require.NoError(t, err)
	for i, v := range []uint8{0, 64, 128, 192} {
		frame.Set(i, 0, pixel.RGBA{R: v, G: v, B: v, A: 255})
	}
	frame.Release()

	target := pixel.NewBuffer[pixel.RGBA](2, 1)
	weights := tableSource{
		h: []sampling.WeightRow{
			// trailing entries beyond Sum must never be read
			{Sum: 2, Values: []sampling.Weight{
				{Index: 0, Coefficient: 0.5},
				{Index: 1, Coefficient: 0.5},
				{Index: 3, Coefficient: 100},
			}},
			{Sum: 2, Values: []sampling.Weight{
				{Index: 2, Coefficient: 0.5},
				{Index: 3, Coefficient: 0.5},
			}},
		},
		v: identityRows(1),
	}

	ex := resize.New[pixel.RGBA](sampling.Weighted(sampling.NewLinearFilter()), weights)
	require.NoError(t, ex.Apply(target, source,
		geom.Rect(0, 0, 2, 1), geom.Rect(0, 0, 4, 1), 0, 1))

	got := testutil.ReadAll(t, target)
	assert.Equal(t, pixel.RGBA{R: 32, G: 32, B: 32, A: 255}, got[0])
	assert.Equal(t, pixel.RGBA{R: 160, G: 160, B: 160, A: 255}, got[1])
}

func TestWeightedLinearity(t *testing.T) {
	apply := func(scale uint8) []pixel.RGBA {
		source := pixel.NewBuffer[pixel.RGBA](6, 6)
		frame, err := source.Acquire()
		require.NoError(t, err)
		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				v := uint8((x + y) * 10 * int(scale))
				frame.Set(x, y, pixel.RGBA{R: v, G: v, B: v, A: 255})
			}
		}
		frame.Release()

		target := pixel.NewBuffer[pixel.RGBA](3, 3)
		targetRect := geom.Rect(0, 0, 3, 3)
		sourceRect := geom.Rect(0, 0, 6, 6)
		sampler := sampling.Weighted(sampling.NewCatmullRomFilter())
		ex := resize.New[pixel.RGBA](sampler, resize.TablesFor(sampler.Filter(), targetRect, sourceRect))
		require.NoError(t, ex.Apply(target, source, targetRect, sourceRect, 0, 3))
		return testutil.ReadAll(t, target)
	}

	once := apply(1)
	twice := apply(2)
	for i := range once {
		assert.InDelta(t, 2*int(once[i].R), int(twice[i].R), 2, "pixel %d", i)
		assert.Equal(t, uint8(255), twice[i].A)
	}
}

func TestWeightedOutOfBoundsRowsSkipped(t *testing.T) {
	source := testutil.NewPatternBuffer(t, 4, 4)
	sentinel := pixel.RGBA{R: 5, G: 5, B: 5, A: 5}
	target := testutil.NewSolidBuffer(t, 2, 2, sentinel)

	var rows atomic.Int64
	weights := tableSource{h: identityRows(2), v: identityRows(2)}
	ex := resize.New[pixel.RGBA](
		sampling.Weighted(sampling.NewLinearFilter()), weights,
		resize.WithProgress(func() { rows.Add(1) }),
	)
	// Entirely below the target raster: no writes, no notifications.
	require.NoError(t, ex.Apply(target, source,
		geom.Rect(0, 0, 2, 2), geom.Rect(0, 0, 4, 4), 5, 7))

	for _, p := range testutil.ReadAll(t, target) {
		assert.Equal(t, sentinel, p)
	}
	assert.EqualValues(t, 0, rows.Load())
}

func TestRowProcessedCountWeighted(t *testing.T) {
	source := testutil.NewPatternBuffer(t, 8, 8)
	target := pixel.NewBuffer[pixel.RGBA](3, 3)
	targetRect := geom.Rect(0, 0, 3, 3)
	sourceRect := geom.Rect(0, 0, 8, 8)

	var rows atomic.Int64
	sampler := sampling.Weighted(sampling.NewLanczosFilter(3))
	ex := resize.New[pixel.RGBA](sampler,
		resize.TablesFor(sampler.Filter(), targetRect, sourceRect),
		resize.WithParallelism(4),
		resize.WithProgress(func() { rows.Add(1) }),
	)
	require.NoError(t, ex.Apply(target, source, targetRect, sourceRect, 0, 3))
	assert.EqualValues(t, 3, rows.Load())
}

func TestIdentityKernelsReproduceSource(t *testing.T) {
	// Source is wider than the target so the fast path does not trigger;
	// only its left 4x4 region is referenced by the tables.
	source := testutil.NewPatternBuffer(t, 6, 4)
	target := pixel.NewBuffer[pixel.RGBA](4, 4)

	weights := tableSource{h: identityRows(4), v: identityRows(4)}
	ex := resize.New[pixel.RGBA](sampling.Weighted(sampling.NewLinearFilter()), weights)
	require.NoError(t, ex.Apply(target, source,
		geom.Rect(0, 0, 4, 4), geom.Rect(0, 0, 4, 4), 0, 4))

	frame, err := target.Acquire()
	require.NoError(t, err)
	defer frame.Release()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, testutil.PatternPixel(x, y), frame.Get(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestChunkedInvocationsCoverAllRows(t *testing.T) {
	source := testutil.NewPatternBuffer(t, 8, 8)
	targetRect := geom.Rect(0, 0, 4, 4)
	sourceRect := geom.Rect(0, 0, 8, 8)
	sampler := sampling.Weighted(sampling.NewCatmullRomFilter())
	tables := resize.TablesFor(sampler.Filter(), targetRect, sourceRect)

	whole := pixel.NewBuffer[pixel.RGBA](4, 4)
	ex := resize.New[pixel.RGBA](sampler, tables)
	require.NoError(t, ex.Apply(whole, source, targetRect, sourceRect, 0, 4))

	// Same resize split into two row chunks, each with its vertical
	// table slice re-indexed from the chunk's start row.
	chunked := pixel.NewBuffer[pixel.RGBA](4, 4)
	lo := resize.New[pixel.RGBA](sampler, resize.Tables{H: tables.H, V: tables.V.Slice(0, 2)})
	require.NoError(t, lo.Apply(chunked, source, targetRect, sourceRect, 0, 2))
	hi := resize.New[pixel.RGBA](sampler, resize.Tables{H: tables.H, V: tables.V.Slice(2, 4)})
	require.NoError(t, hi.Apply(chunked, source, targetRect, sourceRect, 2, 4))

	assert.Equal(t, testutil.ReadAll(t, whole), testutil.ReadAll(t, chunked))
}

func TestApplyNilArguments(t *testing.T) {
	rect := geom.Rect(0, 0, 2, 2)
	ex := resize.New[pixel.RGBA](sampling.NearestNeighbor, nil)
	assert.Error(t, ex.Apply(nil, testutil.NewPatternBuffer(t, 2, 2), rect, rect, 0, 2))
	assert.Error(t, ex.Apply(testutil.NewPatternBuffer(t, 2, 2), nil, rect, rect, 0, 2))
}
