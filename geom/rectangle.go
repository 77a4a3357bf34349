// Package geom provides the rectangle arithmetic used by the resize pipeline.
package geom

import "image"

// Rectangle is an axis-aligned region described by its origin and extent.
// Equality is structural, two rectangles are equal when origin and extent
// match component-wise.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect is shorthand for Rectangle{x, y, w, h}.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// Right returns the exclusive right edge.
func (r Rectangle) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rectangle) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no pixels.
func (r Rectangle) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// In reports whether every pixel of r lies inside s.
func (r Rectangle) In(s Rectangle) bool {
	if r.Empty() {
		return true
	}
	return r.X >= s.X && r.Right() <= s.Right() &&
		r.Y >= s.Y && r.Bottom() <= s.Bottom()
}

// Eq reports structural equality.
func (r Rectangle) Eq(s Rectangle) bool { return r == s }

// Std converts to the standard library representation.
func (r Rectangle) Std() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// FromStd converts from the standard library representation.
func FromStd(r image.Rectangle) Rectangle {
	return Rectangle{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}
