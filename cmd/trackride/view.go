package main

import (
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/track"
	"honnef.co/go/track/internal/plane"
)

// cellAspect is the width of a terminal cell relative to its height.
const cellAspect = 0.5

// A View maps world positions to terminal cells, looking down on the xz
// plane.
type View struct {
	aff    plane.Affine
	bounds plane.Rect
}

// NewView returns a view that fits vertices into a screen of w×h cells.
func NewView(vertices []track.Vertex, w, h int) View {
	box := plane.BoundingBox(projected(vertices)).Inflate(1, 1)
	screen := plane.Rect{X0: 0, Y0: 0, X1: float64(w), Y1: float64(h)}
	return View{
		aff:    plane.Fit(box, screen, cellAspect),
		bounds: screen,
	}
}

func projected(vertices []track.Vertex) iter.Seq[plane.Point] {
	return func(yield func(plane.Point) bool) {
		for _, v := range vertices {
			if !yield(plane.Pt(float64(v.Pos[0]), float64(v.Pos[2]))) {
				return
			}
		}
	}
}

// Cell returns the cell showing p. It reports false if the cell is off
// screen.
func (v View) Cell(p r3.Vec) (int, int, bool) {
	pt := plane.TopDown(p).Transform(v.aff)
	if !v.bounds.Contains(pt) {
		return 0, 0, false
	}
	x, y := pt.Cell()
	return x, y, true
}

// VertexCell is like Cell for a mesh vertex.
func (v View) VertexCell(vert track.Vertex) (int, int, bool) {
	return v.Cell(r3.Vec{
		X: float64(vert.Pos[0]),
		Y: float64(vert.Pos[1]),
		Z: float64(vert.Pos[2]),
	})
}
