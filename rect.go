package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle, described by its minimum and maximum
// corners.
type Rect struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// NewRect returns a new rectangle with the given corners, sorted so that
// x0 ≤ x1 and y0 ≤ y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: min(x0, x1),
		Y0: min(y0, y1),
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// NewRectFromPoints returns a new rectangle with the given corner points,
// sorted so that x0 ≤ x1 and y0 ≤ y1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return NewRect(p0.X, p0.Y, p1.X, p1.Y)
}

func (r Rect) String() string {
	return fmt.Sprintf("{(%g, %g), (%g, %g)}", r.X0, r.Y0, r.X1, r.Y1)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Origin returns the minimum corner.
func (r Rect) Origin() Point { return Point{r.X0, r.Y0} }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing both r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// ContainsPoint reports whether pt lies inside the rectangle, with the minimum
// edges inclusive and the maximum edges exclusive.
func (r Rect) ContainsPoint(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// IsFinite reports whether all coordinates are finite, non-NaN values.
func (r Rect) IsFinite() bool {
	for _, n := range [...]float64{r.X0, r.Y0, r.X1, r.Y1} {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return false
		}
	}
	return true
}
