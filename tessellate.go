package track

import (
	"iter"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is the vertex format produced by the tessellation functions.
type Vertex struct {
	Pos [3]float32
	// Color is either a color or, for ribbons, auxiliary coordinates. See
	// [Ribbon].
	Color [3]float32
}

func vertex(pos r3.Vec, color [3]float32) Vertex {
	return Vertex{
		Pos:   [3]float32{float32(pos.X), float32(pos.Y), float32(pos.Z)},
		Color: color,
	}
}

// DefaultForward and DefaultLateral are the reference axes used when
// [RibbonOptions] or [TraceOptions] leave them zero. With these defaults and
// no twist, a curve running along x produces a flat ribbon in the xz plane.
var (
	DefaultForward = r3.Vec{X: 1}
	DefaultLateral = r3.Vec{Z: 1}
)

func orDefault(v, def r3.Vec) r3.Vec {
	if v == (r3.Vec{}) {
		return def
	}
	return v
}

// CenterLine returns a polyline through the positions of samples, as a line
// list: every pair of consecutive samples contributes one line segment.
func CenterLine(samples iter.Seq[Sample], color [3]float32) ([]Vertex, []uint32) {
	var vertices []Vertex
	var indices []uint32
	for s := range samples {
		if n := uint32(len(vertices)); n > 0 {
			indices = append(indices, n-1, n)
		}
		vertices = append(vertices, vertex(s.Position, color))
	}
	return vertices, indices
}

// RibbonOptions configures [Ribbon].
type RibbonOptions struct {
	// Width is the total width of the ribbon in world units.
	Width float64
	// Lanes is the number of lanes on either side of the center line. Each
	// row of the ribbon has 2*Lanes+1 vertices.
	Lanes int
	// Forward is the reference axis that the sample orientation aligns with
	// the tangent. Defaults to [DefaultForward].
	Forward r3.Vec
	// Lateral is the axis, in the same frame as Forward, along which the
	// ribbon extends. Defaults to [DefaultLateral].
	Lateral r3.Vec
	// DoubleSided appends every triangle a second time with reversed
	// winding.
	DoubleSided bool
}

// Ribbon builds a road-like strip mesh along samples.
//
// Every sample contributes one row of 2*Lanes+1 vertices spread evenly
// across the lateral axis of the sample's local frame, from -Width/2 to
// +Width/2. A vertex's Color holds (lateral fraction in [0, 1], row index
// normalized to [0, 1], sample Param), for use by shaders.
//
// Consecutive rows are connected by two triangles per pair of adjacent
// vertices, for 6·(rows-1)·2·Lanes indices before double-siding. Fewer than
// two rows or zero lanes produce no indices.
func Ribbon(samples iter.Seq[Sample], opts RibbonOptions) ([]Vertex, []uint32) {
	rows := slices.Collect(samples)
	if len(rows) == 0 {
		return nil, nil
	}
	forward := orDefault(opts.Forward, DefaultForward)
	lateral := r3.Unit(orDefault(opts.Lateral, DefaultLateral))
	cols := 2*max(opts.Lanes, 0) + 1

	fracs := []float64{0.5}
	if cols > 1 {
		fracs = floats.Span(make([]float64, cols), 0, 1)
	}

	vertices := make([]Vertex, 0, len(rows)*cols)
	for row, s := range rows {
		var along float64
		if len(rows) > 1 {
			along = float64(row) / float64(len(rows)-1)
		}
		axis := r3.Scale(opts.Width, s.Rotate(forward, lateral))
		for _, frac := range fracs {
			pos := r3.Add(s.Position, r3.Scale(frac-0.5, axis))
			vertices = append(vertices, vertex(pos, [3]float32{
				float32(frac),
				float32(along),
				float32(s.Param),
			}))
		}
	}

	indices := GridIndices(len(rows), cols)
	if opts.DoubleSided {
		indices = appendReversed(indices)
	}
	return vertices, indices
}

// GridIndices returns the triangle indices of a grid of rows×cols vertices
// stored in row-major order. Each cell becomes two triangles. Grids with
// fewer than two rows or columns have no cells and produce no indices.
func GridIndices(rows, cols int) []uint32 {
	if rows < 2 || cols < 2 {
		return nil
	}
	indices := make([]uint32, 0, 6*(rows-1)*(cols-1))
	for r := range rows - 1 {
		for c := range cols - 1 {
			a := uint32(r*cols + c)
			b := a + 1
			d := a + uint32(cols)
			e := d + 1
			indices = append(indices,
				a, d, b,
				b, d, e,
			)
		}
	}
	return indices
}

// appendReversed appends every triangle of indices with its winding reversed.
func appendReversed(indices []uint32) []uint32 {
	n := len(indices)
	for i := 0; i+2 < n; i += 3 {
		indices = append(indices, indices[i], indices[i+2], indices[i+1])
	}
	return indices
}

// TraceOptions configures [TraceAway].
type TraceOptions struct {
	// Forward is the reference axis aligned with the tangent. Defaults to
	// [DefaultForward].
	Forward r3.Vec
	// Axis is the offset, in the frame of Forward, of the second vertex of
	// every tick.
	Axis  r3.Vec
	Color [3]float32
}

// TraceAway visualizes the local frames of samples. For every sample it
// emits a short line from the on-curve position to the position offset by
// Axis rotated into the sample's frame.
func TraceAway(samples iter.Seq[Sample], opts TraceOptions) ([]Vertex, []uint32) {
	forward := orDefault(opts.Forward, DefaultForward)
	var vertices []Vertex
	var indices []uint32
	for s := range samples {
		tip := r3.Add(s.Position, s.Rotate(forward, opts.Axis))
		n := uint32(len(vertices))
		vertices = append(vertices,
			vertex(s.Position, opts.Color),
			vertex(tip, opts.Color),
		)
		indices = append(indices, n, n+1)
	}
	return vertices, indices
}

// TrackTrace returns a line list approximating every segment of controls
// with fixed steps of the local parameter, without adapting to curve speed.
// A resolution that is not positive produces nothing.
func TrackTrace(controls []Control, resolution float64, color [3]float32) ([]Vertex, []uint32) {
	if !(resolution > 0) {
		return nil, nil
	}
	steps := int(math.Ceil(1 / resolution))
	var vertices []Vertex
	var indices []uint32
	push := func(p r3.Vec) {
		indices = append(indices, uint32(len(vertices)))
		vertices = append(vertices, vertex(p, color))
	}
	for i := 0; i+1 < len(controls); i++ {
		c := controls[i].Segment(controls[i+1])
		for k := range steps {
			push(c.Eval(float64(k) * resolution))
			push(c.Eval(min(float64(k+1)*resolution, 1)))
		}
	}
	return vertices, indices
}
