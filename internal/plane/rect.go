package plane

import (
	"iter"
	"math"
)

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// empty is the identity of [Rect.Union].
var empty = Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}

// BoundingBox returns the smallest rectangle containing all of points. It is
// the zero rectangle if points is empty or contains only NaN points.
func BoundingBox(points iter.Seq[Point]) Rect {
	r := empty
	for pt := range points {
		if pt.IsNaN() {
			continue
		}
		r = r.UnionPoint(pt)
	}
	if r == empty {
		return Rect{}
	}
	return r
}

// UnionPoint returns the smallest rectangle containing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate returns a new rectangle grown by width on the left and right and by
// height on the top and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Pt(r.X0, r.Y0).Midpoint(Pt(r.X1, r.Y1))
}

// Contains reports whether pt lies within r. Points on the right and bottom
// edges are not contained.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}
