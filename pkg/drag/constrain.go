package drag

import "math"

// Limits overrides the range a position may take on either axis. A nil
// field falls back to the range derived from the canvas: [0, canvas-object].
type Limits struct {
	MinX, MaxX *float64
	MinY, MaxY *float64
}

// Clamp constrains candidate so that an object of the given size stays fully
// inside a canvas of canvasSize.
//
// If the object is larger than the canvas on an axis the valid range is
// empty; the result on that axis is pinned to 0 instead of producing an
// inverted range. Non-finite candidates also resolve to 0.
func Clamp(candidate Point, object, canvasSize Size) Point {
	return ClampWithin(candidate, object, canvasSize, Limits{})
}

// ClampWithin is Clamp with optional per-axis overrides. An inverted range
// resolves to its minimum.
func ClampWithin(candidate Point, object, canvasSize Size, lim Limits) Point {
	object, canvasSize = object.normalize(), canvasSize.normalize()
	return Point{
		X: clampAxis(candidate.X, limit(lim.MinX, 0), limit(lim.MaxX, canvasSize.Width-object.Width)),
		Y: clampAxis(candidate.Y, limit(lim.MinY, 0), limit(lim.MaxY, canvasSize.Height-object.Height)),
	}
}

func limit(override *float64, fallback float64) float64 {
	if override != nil && finite(*override) {
		return *override
	}
	return fallback
}

func clampAxis(v, lo, hi float64) float64 {
	if !finite(v) {
		return lo
	}
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// SnapToGrid rounds p to the nearest multiple of grid on both axes.
// A non-positive or non-finite grid leaves p unchanged.
func SnapToGrid(p Point, grid float64) Point {
	if grid <= 0 || !finite(grid) || !p.IsFinite() {
		return p
	}
	return Point{
		X: math.Round(p.X/grid) * grid,
		Y: math.Round(p.Y/grid) * grid,
	}
}
