package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sc2682/ImageProcessor/sampling"
)

func TestWeightRowsNormalized(t *testing.T) {
	for _, filter := range []sampling.Filter{
		sampling.NewBoxFilter(),
		sampling.NewLinearFilter(),
		sampling.NewMitchellNetravaliFilter(),
		sampling.NewCatmullRomFilter(),
		sampling.NewLanczosFilter(2),
		sampling.NewLanczosFilter(3),
	} {
		t.Run(filter.Name(), func(t *testing.T) {
			for _, sizes := range [][2]int{{10, 4}, {4, 10}, {7, 7}, {100, 33}} {
				table := sampling.NewWeightTable(filter, sizes[0], sizes[1])
				require.Equal(t, sizes[1], table.Len())
				for i := 0; i < table.Len(); i++ {
					row := table.Row(i)
					require.LessOrEqual(t, row.Sum, len(row.Values))
					require.Positive(t, row.Sum, "offset %d has no contributions", i)
					total := 0.0
					for _, w := range row.Values[:row.Sum] {
						require.GreaterOrEqual(t, w.Index, 0)
						require.Less(t, w.Index, sizes[0])
						total += w.Coefficient
					}
					assert.InDelta(t, 1.0, total, 1e-9, "offset %d", i)
				}
			}
		})
	}
}

func TestWeightTableCentersContribution(t *testing.T) {
	// Halving with the linear filter: destination offset i is centered
	// between source pixels 2i and 2i+1, so both must contribute.
	table := sampling.NewWeightTable(sampling.NewLinearFilter(), 8, 4)
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		indices := map[int]bool{}
		for _, w := range row.Values[:row.Sum] {
			indices[w.Index] = true
		}
		assert.True(t, indices[2*i], "offset %d misses source %d", i, 2*i)
		assert.True(t, indices[2*i+1], "offset %d misses source %d", i, 2*i+1)
	}
}

func TestIdentityWeightTable(t *testing.T) {
	table := sampling.NewIdentityWeightTable(5)
	require.Equal(t, 5, table.Len())
	for i := 0; i < 5; i++ {
		row := table.Row(i)
		require.Equal(t, 1, row.Sum)
		assert.Equal(t, i, row.Values[0].Index)
		assert.Equal(t, 1.0, row.Values[0].Coefficient)
	}
}

func TestWeightTableSlice(t *testing.T) {
	table := sampling.NewIdentityWeightTable(6)
	part := table.Slice(2, 5)
	require.Equal(t, 3, part.Len())
	assert.Equal(t, 2, part.Row(0).Values[0].Index)
	assert.Equal(t, 4, part.Row(2).Values[0].Index)
}

func TestFilterKernels(t *testing.T) {
	assert.Equal(t, 1.0, sampling.NewBoxFilter().Kernel(0))
	assert.Equal(t, 0.0, sampling.NewBoxFilter().Kernel(0.75))

	linear := sampling.NewLinearFilter()
	assert.Equal(t, 1.0, linear.Kernel(0))
	assert.InDelta(t, 0.25, linear.Kernel(0.75), 1e-12)
	assert.Equal(t, linear.Kernel(-0.5), linear.Kernel(0.5))

	lanczos := sampling.NewLanczosFilter(3)
	assert.Equal(t, `lanczos3`, lanczos.Name())
	assert.Equal(t, 1.0, lanczos.Kernel(0))
	assert.Equal(t, 0.0, lanczos.Kernel(3))
	assert.InDelta(t, 0.0, lanczos.Kernel(1), 1e-12)

	cubic := sampling.NewCatmullRomFilter()
	assert.InDelta(t, 1.0, cubic.Kernel(0), 1e-12)
	assert.InDelta(t, 0.0, cubic.Kernel(2), 1e-12)
	// Catmull-Rom has negative lobes, that is what makes it sharpen.
	assert.Negative(t, cubic.Kernel(1.5))
}

func TestSamplers(t *testing.T) {
	assert.True(t, sampling.NearestNeighbor.IsNearestNeighbor())
	assert.Nil(t, sampling.NearestNeighbor.Filter())

	weighted := sampling.Weighted(sampling.NewLanczosFilter(3))
	assert.False(t, weighted.IsNearestNeighbor())
	assert.Equal(t, `lanczos3`, weighted.Name())

	byName := sampling.Samplers()
	for _, name := range []string{
		`nearestneighbor`, `box`, `linear`, `mitchellnetravali`,
		`catmullrom`, `lanczos2`, `lanczos3`,
	} {
		_, ok := byName[name]
		assert.True(t, ok, name)
	}
}
