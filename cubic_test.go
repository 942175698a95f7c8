package track

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCubicBezEndpoints(t *testing.T) {
	c := CubicBez{vec(0.1, -2, 3), vec(4, 5, -6), vec(-7, 8, 9), vec(1.7, 0.3, -1)}
	diff(t, c.P0, c.Eval(0))
	diff(t, c.P3, c.Eval(1))
	diff(t, c.P0, c.Start())
	diff(t, c.P3, c.End())
}

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2, z = x
	c := CubicBez{
		vec(0.0, 0.0, 0.0),
		vec(1.0/3.0, 0.0, 1.0/3.0),
		vec(2.0/3.0, 1.0/3.0, 2.0/3.0),
		vec(1.0, 1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := r3.Scale(1.0/delta, r3.Sub(p1, p))
		d := deriv.Eval(ts)
		if l := r3.Norm(r3.Sub(d, dApprox)); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
		diff(t, d, c.Deriv(ts))
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{vec(0, 0, 0), vec(1, 2, 0), vec(3, 2, 1), vec(4, 0, 2)}
	left, right := c.Subdivide()
	approx := cmpopts.EquateApprox(0, 1e-12)
	for i := range 5 {
		ts := float64(i) / 4
		diff(t, c.Eval(ts/2), left.Eval(ts), approx)
		diff(t, c.Eval(0.5+ts/2), right.Eval(ts), approx)
	}
}
