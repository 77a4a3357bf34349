// Package sampling provides resampling filters and the precomputed
// contribution tables the resize executor convolves with.
package sampling

import (
	"math"
	"strconv"
)

// Filter is an interpolation kernel. Support is the kernel radius in source
// pixels; Kernel evaluates the weight at a (possibly negative) distance.
type Filter interface {
	Name() string
	Support() float64
	Kernel(x float64) float64
}

type box struct{}

func (box) Name() string     { return `box` }
func (box) Support() float64 { return 0.5 }

func (box) Kernel(x float64) float64 {
	if x > -0.5 && x <= 0.5 {
		return 1
	}
	return 0
}

type linear struct{}

func (linear) Name() string     { return `linear` }
func (linear) Support() float64 { return 1 }

func (linear) Kernel(x float64) float64 {
	x = math.Abs(x)
	if x < 1 {
		return 1 - x
	}
	return 0
}

// cubic is the Mitchell-Netravali family parameterized by b and c.
type cubic struct {
	name string
	b, c float64
}

func (f cubic) Name() string   { return f.name }
func (cubic) Support() float64 { return 2 }

func (f cubic) Kernel(x float64) float64 {
	x = math.Abs(x)
	b, c := f.b, f.c
	if x < 1 {
		return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
	}
	if x < 2 {
		return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	}
	return 0
}

type lanczos struct {
	name  string
	lobes float64
}

func (f lanczos) Name() string     { return f.name }
func (f lanczos) Support() float64 { return f.lobes }

func (f lanczos) Kernel(x float64) float64 {
	x = math.Abs(x)
	if x >= f.lobes {
		return 0
	}
	if x < 1e-12 {
		return 1
	}
	a := x * math.Pi
	b := a / f.lobes
	return math.Sin(a) * math.Sin(b) / (a * b)
}

// NewBoxFilter returns the box (averaging) filter.
func NewBoxFilter() Filter { return box{} }

// NewLinearFilter returns the triangle (bilinear) filter.
func NewLinearFilter() Filter { return linear{} }

// NewCubicFilter returns a Mitchell-Netravali cubic with custom b and c.
func NewCubicFilter(name string, b, c float64) Filter {
	return cubic{name: name, b: b, c: c}
}

// NewMitchellNetravaliFilter returns the cubic with b = c = 1/3.
func NewMitchellNetravaliFilter() Filter {
	return NewCubicFilter(`mitchellnetravali`, 1.0/3.0, 1.0/3.0)
}

// NewCatmullRomFilter returns the Catmull-Rom cubic (b = 0, c = 0.5).
func NewCatmullRomFilter() Filter {
	return NewCubicFilter(`catmullrom`, 0, 0.5)
}

// NewLanczosFilter returns a lanczos filter with the given lobe count.
func NewLanczosFilter(lobes int) Filter {
	return lanczos{name: `lanczos` + strconv.Itoa(lobes), lobes: float64(lobes)}
}
