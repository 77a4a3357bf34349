package sampling

import "math"

// Weight is one contribution of a source coordinate to a destination
// coordinate along one axis.
type Weight struct {
	Index       int
	Coefficient float64
}

// WeightRow holds the contributions for a single destination coordinate.
// Only the first Sum entries of Values are valid.
type WeightRow struct {
	Sum    int
	Values []Weight
}

// WeightTable holds one WeightRow per destination coordinate along one axis,
// indexed by the destination offset within the active rectangle (offset 0 is
// the rectangle origin, not absolute coordinate 0).
type WeightTable struct {
	rows []WeightRow
}

// Row returns the weight row for a destination offset.
func (t *WeightTable) Row(offset int) WeightRow { return t.rows[offset] }

// Len returns the number of destination offsets covered.
func (t *WeightTable) Len() int { return len(t.rows) }

// Slice returns a view of the rows in [lo, hi), for callers that split one
// axis across chunked invocations.
func (t *WeightTable) Slice(lo, hi int) *WeightTable {
	return &WeightTable{rows: t.rows[lo:hi]}
}

// NewWeightTable precomputes the contribution table for resampling srcSize
// source pixels to dstSize destination pixels with the given filter. The
// kernel window widens by the scale factor when downscaling so every source
// pixel keeps contributing; each row's coefficients are normalized to sum
// to 1. Source indices are clamped to [0, srcSize), which replicates edge
// pixels instead of sampling outside the raster.
func NewWeightTable(filter Filter, srcSize, dstSize int) *WeightTable {
	scale := float64(srcSize) / float64(dstSize)
	support := filter.Support()
	expand := 1.0
	if scale > 1 {
		expand = scale
		support *= scale
	}

	rows := make([]WeightRow, dstSize)
	for i := range rows {
		center := (float64(i)+0.5)*scale - 0.5
		left := int(math.Ceil(center - support))
		right := int(math.Floor(center + support))

		values := make([]Weight, 0, right-left+1)
		total := 0.0
		for j := left; j <= right; j++ {
			coef := filter.Kernel((center - float64(j)) / expand)
			if coef == 0 {
				continue
			}
			idx := j
			if idx < 0 {
				idx = 0
			} else if idx >= srcSize {
				idx = srcSize - 1
			}
			values = append(values, Weight{Index: idx, Coefficient: coef})
			total += coef
		}
		if total != 0 {
			for k := range values {
				values[k].Coefficient /= total
			}
		}
		rows[i] = WeightRow{Sum: len(values), Values: values}
	}
	return &WeightTable{rows: rows}
}

// NewIdentityWeightTable returns a table whose row at each offset has a
// single unit contribution from the same source index. Resampling with it
// reproduces the source exactly.
func NewIdentityWeightTable(size int) *WeightTable {
	rows := make([]WeightRow, size)
	for i := range rows {
		rows[i] = WeightRow{Sum: 1, Values: []Weight{{Index: i, Coefficient: 1}}}
	}
	return &WeightTable{rows: rows}
}
