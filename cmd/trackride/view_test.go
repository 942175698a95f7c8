package main

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/track"
)

func TestView(t *testing.T) {
	vertices := []track.Vertex{
		{Pos: [3]float32{-9, 0, -9}},
		{Pos: [3]float32{9, 5, 9}},
	}
	v := NewView(vertices, 80, 20)

	x, y, ok := v.Cell(r3.Vec{})
	if !ok {
		t.Fatal("center is off screen")
	}
	diff(t, []int{40, 10}, []int{x, y})

	// The view is inflated by one unit around the mesh.
	if _, _, ok := v.VertexCell(vertices[1]); !ok {
		t.Error("mesh vertex is off screen")
	}
	if _, _, ok := v.Cell(r3.Vec{X: 100}); ok {
		t.Error("far point is on screen")
	}
}

func TestViewCourse(t *testing.T) {
	cfg := &Config{}
	cfg.resolve()
	road, _ := track.Ribbon(track.Follow(cfg.Controls(), cfg.Ride.Rate), track.RibbonOptions{
		Width: cfg.Ride.Width,
		Lanes: cfg.Ride.Lanes,
	})
	if len(road) == 0 {
		t.Fatal("default course has no road")
	}
	v := NewView(road, 120, 40)
	for _, vert := range road {
		if _, _, ok := v.VertexCell(vert); !ok {
			t.Fatalf("vertex %v is off screen", vert.Pos)
		}
	}
}
