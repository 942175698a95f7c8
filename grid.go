package track

import "gonum.org/v1/gonum/spatial/r3"

// Grid returns a square reference grid in the xz plane as a line list. It has
// 2*size+1 lines in each direction, spaced scale apart and centered on the
// origin.
func Grid(size int, scale float64, color [3]float32) ([]Vertex, []uint32) {
	if size < 0 {
		return nil, nil
	}
	var vertices []Vertex
	var indices []uint32
	line := func(a, b r3.Vec) {
		n := uint32(len(vertices))
		vertices = append(vertices, vertex(a, color), vertex(b, color))
		indices = append(indices, n, n+1)
	}
	l := float64(size) * scale
	for i := -size; i <= size; i++ {
		f := float64(i) * scale
		line(r3.Vec{X: l, Z: f}, r3.Vec{X: -l, Z: f})
		line(r3.Vec{X: f, Z: l}, r3.Vec{X: f, Z: -l})
	}
	return vertices, indices
}
