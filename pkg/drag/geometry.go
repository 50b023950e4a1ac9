package drag

import "math"

// Point is a position in screen or canvas-local units.
type Point struct {
	X, Y float64
}

// Add returns p shifted by o.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Sub returns the offset that takes q to p.
func (p Point) Sub(q Point) Offset {
	return Offset{DX: p.X - q.X, DY: p.Y - q.Y}
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return finite(p.X) && finite(p.Y)
}

// Or returns p if it is finite, otherwise fallback.
func (p Point) Or(fallback Point) Point {
	if p.IsFinite() {
		return p
	}
	return fallback
}

// Offset is the distance from an object's top-left corner to the point where
// the pointer grabbed it.
type Offset struct {
	DX, DY float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// normalize maps non-finite or negative dimensions to zero.
func (s Size) normalize() Size {
	if !finite(s.Width) || s.Width < 0 {
		s.Width = 0
	}
	if !finite(s.Height) || s.Height < 0 {
		s.Height = 0
	}
	return s
}

// Fits reports whether s fits inside outer on both axes.
func (s Size) Fits(outer Size) bool {
	s, outer = s.normalize(), outer.normalize()
	return s.Width <= outer.Width && s.Height <= outer.Height
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// TopLeft returns the rectangle's origin.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
