package track

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRibbonTopology(t *testing.T) {
	for _, lanes := range []int{1, 2, 5} {
		samples := Follow(testControls, 0.25)
		rows := len(slices.Collect(samples))
		vertices, indices := Ribbon(samples, RibbonOptions{Width: 2, Lanes: lanes})
		if want := rows * (2*lanes + 1); len(vertices) != want {
			t.Errorf("lanes %d: got %d vertices, want %d", lanes, len(vertices), want)
		}
		if want := 6 * (rows - 1) * (2 * lanes); len(indices) != want {
			t.Errorf("lanes %d: got %d indices, want %d", lanes, len(indices), want)
		}
		for _, idx := range indices {
			if int(idx) >= len(vertices) {
				t.Fatalf("lanes %d: index %d out of range for %d vertices", lanes, idx, len(vertices))
			}
		}
	}
}

func TestRibbonGeometry(t *testing.T) {
	controls := []Control{
		Ctrl(vec(0, 0, 0), vec(1, 0, 0), 0),
		Ctrl(vec(3, 0, 0), vec(1, 0, 0), 0),
	}
	vertices, indices := Ribbon(Follow(controls, 1.5), RibbonOptions{Width: 2, Lanes: 1})
	want := []Vertex{
		{Pos: [3]float32{0, 0, -1}, Color: [3]float32{0, 0, 0}},
		{Pos: [3]float32{0, 0, 0}, Color: [3]float32{0.5, 0, 0}},
		{Pos: [3]float32{0, 0, 1}, Color: [3]float32{1, 0, 0}},
		{Pos: [3]float32{1.5, 0, -1}, Color: [3]float32{0, 1, 0.5}},
		{Pos: [3]float32{1.5, 0, 0}, Color: [3]float32{0.5, 1, 0.5}},
		{Pos: [3]float32{1.5, 0, 1}, Color: [3]float32{1, 1, 0.5}},
	}
	diff(t, want, vertices, cmpopts.EquateApprox(0, 1e-6))
	diff(t, []uint32{0, 3, 1, 1, 3, 4, 1, 4, 2, 2, 4, 5}, indices)
}

func TestRibbonTwist(t *testing.T) {
	// A quarter twist along x turns the flat ribbon into a wall: the lateral
	// axis z rolls into -y.
	controls := []Control{
		Ctrl(vec(0, 0, 0), vec(1, 0, 0), math.Pi/2),
		Ctrl(vec(3, 0, 0), vec(1, 0, 0), math.Pi/2),
	}
	vertices, _ := Ribbon(Follow(controls, 1), RibbonOptions{Width: 2, Lanes: 1})
	diff(t, [3]float32{0, 1, 0}, vertices[0].Pos, cmpopts.EquateApprox(0, 1e-6))
	diff(t, [3]float32{0, -1, 0}, vertices[2].Pos, cmpopts.EquateApprox(0, 1e-6))
}

func TestRibbonDoubleSided(t *testing.T) {
	samples := Follow(testControls, 0.5)
	_, single := Ribbon(samples, RibbonOptions{Width: 1, Lanes: 2})
	_, double := Ribbon(samples, RibbonOptions{Width: 1, Lanes: 2, DoubleSided: true})
	if len(double) != 2*len(single) {
		t.Fatalf("got %d indices, want %d", len(double), 2*len(single))
	}
	diff(t, single, double[:len(single)])
	back := double[len(single):]
	for i := 0; i < len(single); i += 3 {
		diff(t, []uint32{single[i], single[i+2], single[i+1]}, back[i:i+3])
	}
}

func TestRibbonDegenerate(t *testing.T) {
	vertices, indices := Ribbon(Follow(nil, 1), RibbonOptions{Width: 1, Lanes: 2})
	if len(vertices) != 0 || len(indices) != 0 {
		t.Errorf("no controls: got %d vertices and %d indices", len(vertices), len(indices))
	}
	vertices, indices = Ribbon(Follow(testControls[:1], 1), RibbonOptions{Width: 1, Lanes: 2})
	if len(vertices) != 0 || len(indices) != 0 {
		t.Errorf("one control: got %d vertices and %d indices", len(vertices), len(indices))
	}

	// A single row has no quads to connect.
	one := func(yield func(Sample) bool) {
		s, _ := SampleAt(testControls, 0)
		yield(s)
	}
	vertices, indices = Ribbon(one, RibbonOptions{Width: 1, Lanes: 2})
	if len(vertices) != 5 || len(indices) != 0 {
		t.Errorf("one row: got %d vertices and %d indices", len(vertices), len(indices))
	}

	// No lanes leaves a single column.
	vertices, indices = Ribbon(Follow(testControls, 0.5), RibbonOptions{Width: 1, Lanes: 0})
	if len(vertices) == 0 || len(indices) != 0 {
		t.Errorf("no lanes: got %d vertices and %d indices", len(vertices), len(indices))
	}
	for _, v := range vertices {
		diff(t, float32(0.5), v.Color[0])
	}
}

func TestGridIndices(t *testing.T) {
	diff(t, []uint32{0, 2, 1, 1, 2, 3}, GridIndices(2, 2))
	if got := GridIndices(1, 5); got != nil {
		t.Errorf("got %v for a single row", got)
	}
	if got := GridIndices(5, 1); got != nil {
		t.Errorf("got %v for a single column", got)
	}
	indices := GridIndices(4, 3)
	diff(t, 6*3*2, len(indices))
	for _, idx := range indices {
		if idx >= 12 {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestCenterLine(t *testing.T) {
	color := [3]float32{1, 0, 0}
	samples := slices.Collect(Follow(testControls, 0.3))
	vertices, indices := CenterLine(slices.Values(samples), color)
	if len(vertices) != len(samples) {
		t.Fatalf("got %d vertices for %d samples", len(vertices), len(samples))
	}
	if want := 2 * (len(samples) - 1); len(indices) != want {
		t.Fatalf("got %d indices, want %d", len(indices), want)
	}
	for i := 0; i < len(indices); i += 2 {
		diff(t, []uint32{uint32(i / 2), uint32(i/2 + 1)}, indices[i:i+2])
	}
	for _, v := range vertices {
		diff(t, color, v.Color)
	}

	vertices, indices = CenterLine(Follow(nil, 1), color)
	if len(vertices) != 0 || len(indices) != 0 {
		t.Errorf("got %d vertices and %d indices for no controls", len(vertices), len(indices))
	}
}

func TestTraceAway(t *testing.T) {
	controls := straight(2, 3)
	vertices, indices := TraceAway(Follow(controls, 1), TraceOptions{
		Axis:  vec(0, 0.5, 0),
		Color: [3]float32{0, 1, 0},
	})
	if len(vertices) == 0 || len(vertices)%2 != 0 {
		t.Fatalf("got %d vertices", len(vertices))
	}
	diff(t, len(vertices), len(indices))
	approx := cmpopts.EquateApprox(0, 1e-6)
	for i := 0; i < len(vertices); i += 2 {
		base, tip := vertices[i].Pos, vertices[i+1].Pos
		diff(t, [3]float32{base[0], base[1] + 0.5, base[2]}, tip, approx)
		diff(t, []uint32{uint32(i), uint32(i + 1)}, indices[i:i+2])
	}
}

func TestTrackTrace(t *testing.T) {
	controls := testControls[:2]
	vertices, indices := TrackTrace(controls, 0.25, [3]float32{1, 1, 1})
	diff(t, 8, len(vertices))
	diff(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7}, indices)
	diff(t, vertex(controls[0].Position, [3]float32{1, 1, 1}), vertices[0])
	diff(t, vertex(controls[1].Position, [3]float32{1, 1, 1}), vertices[7])

	if vertices, _ := TrackTrace(controls, 0, [3]float32{}); vertices != nil {
		t.Errorf("got %d vertices for zero resolution", len(vertices))
	}
}

func TestGrid(t *testing.T) {
	vertices, indices := Grid(1, 2, [3]float32{0.3, 0.3, 0.3})
	diff(t, 12, len(vertices))
	diff(t, 12, len(indices))
	diff(t, [3]float32{2, 0, -2}, vertices[0].Pos)
	diff(t, [3]float32{-2, 0, -2}, vertices[1].Pos)
}
