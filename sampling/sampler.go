package sampling

// Sampler tags a sampling strategy. The nearest-neighbor sampler carries no
// filter and short-circuits the weighted path; every other sampler wraps a
// Filter whose kernel feeds the weight tables.
type Sampler struct {
	name   string
	filter Filter
}

// NearestNeighbor copies the closest source pixel with no blending.
var NearestNeighbor = Sampler{name: `nearestneighbor`}

// Weighted returns a sampler backed by the given filter.
func Weighted(f Filter) Sampler {
	return Sampler{name: f.Name(), filter: f}
}

// Name returns the sampler name.
func (s Sampler) Name() string { return s.name }

// IsNearestNeighbor reports whether this sampler bypasses convolution.
func (s Sampler) IsNearestNeighbor() bool { return s.filter == nil }

// Filter returns the backing filter, nil for nearest-neighbor.
func (s Sampler) Filter() Filter { return s.filter }

// Samplers returns the built-in samplers by name.
func Samplers() map[string]Sampler {
	m := map[string]Sampler{}
	for _, s := range []Sampler{
		NearestNeighbor,
		Weighted(NewBoxFilter()),
		Weighted(NewLinearFilter()),
		Weighted(NewMitchellNetravaliFilter()),
		Weighted(NewCatmullRomFilter()),
		Weighted(NewLanczosFilter(2)),
		Weighted(NewLanczosFilter(3)),
	} {
		m[s.Name()] = s
	}
	return m
}
