package resize

import (
	"github.com/sc2682/ImageProcessor/geom"
	"github.com/sc2682/ImageProcessor/sampling"
)

// WeightSource supplies the precomputed contribution tables the weighted path
// convolves with. Horizontal is indexed by the destination column offset
// within the target rectangle, over [0, targetRect.Width); Vertical by the
// destination row offset within the invocation's row range, over
// [0, endRow-startRow). Both tables must cover those ranges before Apply
// runs the weighted path; the executor does not re-validate them.
type WeightSource interface {
	Horizontal(offsetX int) sampling.WeightRow
	Vertical(offsetY int) sampling.WeightRow
}

// Tables is a WeightSource backed by one precomputed table per axis.
type Tables struct {
	H *sampling.WeightTable
	V *sampling.WeightTable
}

var _ WeightSource = Tables{}

func (t Tables) Horizontal(offsetX int) sampling.WeightRow { return t.H.Row(offsetX) }
func (t Tables) Vertical(offsetY int) sampling.WeightRow   { return t.V.Row(offsetY) }

// TablesFor precomputes both axis tables for resampling sourceRect into
// targetRect with the given filter. The vertical table covers the whole
// target rectangle height; callers that chunk the row range across several
// Apply invocations take a Slice of V per chunk.
func TablesFor(filter sampling.Filter, targetRect, sourceRect geom.Rectangle) Tables {
	return Tables{
		H: sampling.NewWeightTable(filter, sourceRect.Width, targetRect.Width),
		V: sampling.NewWeightTable(filter, sourceRect.Height, targetRect.Height),
	}
}
