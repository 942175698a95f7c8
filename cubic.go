package track

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CubicBez is a cubic Bézier segment in 3D space.
type CubicBez struct {
	P0 r3.Vec
	P1 r3.Vec
	P2 r3.Vec
	P3 r3.Vec
}

// QuadBez is a quadratic Bézier in 3D space. It mostly shows up as the
// hodograph of a [CubicBez].
type QuadBez struct {
	P0 r3.Vec
	P1 r3.Vec
	P2 r3.Vec
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez{%v, %v, %v, %v}", c.P0, c.P1, c.P2, c.P3)
}

func (c CubicBez) IsNaN() bool {
	return isNaN(c.P0) || isNaN(c.P1) || isNaN(c.P2) || isNaN(c.P3)
}

// Eval evaluates the cubic at t ∈ [0, 1] using the Bernstein basis.
//
// Eval(0) is exactly P0 and Eval(1) is exactly P3.
func (c CubicBez) Eval(t float64) r3.Vec {
	mt := 1.0 - t
	b0 := mt * mt * mt
	b1 := 3.0 * mt * mt * t
	b2 := 3.0 * mt * t * t
	b3 := t * t * t
	return r3.Vec{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
		Z: b0*c.P0.Z + b1*c.P1.Z + b2*c.P2.Z + b3*c.P3.Z,
	}
}

// Differentiate returns the hodograph of the cubic, the quadratic whose
// evaluation is the cubic's first derivative.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		r3.Scale(3, r3.Sub(c.P1, c.P0)),
		r3.Scale(3, r3.Sub(c.P2, c.P1)),
		r3.Scale(3, r3.Sub(c.P3, c.P2)),
	}
}

// Deriv returns the analytic first derivative of the cubic at t.
//
// It expands to 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2).
func (c CubicBez) Deriv(t float64) r3.Vec {
	return c.Differentiate().Eval(t)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			midpoint(c.P0, c.P1),
			r3.Scale(0.25, r3.Add(r3.Add(c.P0, r3.Scale(2, c.P1)), c.P2)),
			pm,
		},
		CubicBez{
			pm,
			r3.Scale(0.25, r3.Add(r3.Add(c.P1, r3.Scale(2, c.P2)), c.P3)),
			midpoint(c.P2, c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() r3.Vec {
	return c.P0
}

func (c CubicBez) End() r3.Vec {
	return c.P3
}

// Eval evaluates the quadratic at t ∈ [0, 1].
func (q QuadBez) Eval(t float64) r3.Vec {
	mt := 1.0 - t
	b0 := mt * mt
	b1 := 2.0 * mt * t
	b2 := t * t
	return r3.Vec{
		X: b0*q.P0.X + b1*q.P1.X + b2*q.P2.X,
		Y: b0*q.P0.Y + b1*q.P1.Y + b2*q.P2.Y,
		Z: b0*q.P0.Z + b1*q.P1.Z + b2*q.P2.Z,
	}
}

func midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

func isNaN(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}
