package track

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"
)

var testControls = []Control{
	Ctrl(vec(0, 1, 0), vec(1, 1, 1), 0),
	Ctrl(vec(1, 2, 3), vec(2, -1, 1), math.Pi/2),
	Ctrl(vec(-2, 0, 4), vec(0, 0, -3), -1),
	Ctrl(vec(-2, 0, 4), vec(1e-3, 0, 0), 0.25),
}

func TestEvalEndpoints(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	for i := 0; i+1 < len(testControls); i++ {
		begin, end := testControls[i], testControls[i+1]
		diff(t, begin.Position, Eval(begin, end, 0), approx)
		diff(t, end.Position, Eval(begin, end, 1), approx)
	}
}

func TestEvalStraightLine(t *testing.T) {
	begin := Ctrl(vec(0, 0, 0), vec(1, 0, 0), 0)
	end := Ctrl(vec(1, 0, 0), vec(1, 0, 0), 0)
	diff(t, vec(0.5, 0, 0), Eval(begin, end, 0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestDerivCentralDifference(t *testing.T) {
	const n = 16
	const h = 1e-5
	for i := 0; i+1 < len(testControls); i++ {
		begin, end := testControls[i], testControls[i+1]
		for j := range n + 1 {
			u := float64(j) / n
			approx := r3.Scale(1/(2*h), r3.Sub(Eval(begin, end, u+h), Eval(begin, end, u-h)))
			got := Deriv(begin, end, u)
			if d := r3.Norm(r3.Sub(got, approx)); d > 1e-6 {
				t.Errorf("segment %d at %g: derivative %v differs from finite difference %v by %g", i, u, got, approx, d)
			}
		}
	}
}

func TestTwistAt(t *testing.T) {
	begin := Ctrl(vec(0, 0, 0), vec(1, 0, 0), 1)
	end := Ctrl(vec(1, 0, 0), vec(1, 0, 0), 3)
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, 1.0, TwistAt(begin, end, 0), approx)
	diff(t, 2.0, TwistAt(begin, end, 0.5), approx)
	diff(t, 3.0, TwistAt(begin, end, 1), approx)
	// smooth-step lags behind linear interpolation in the first half
	diff(t, 1+2*0.15625, TwistAt(begin, end, 0.25), approx)
}

func TestSampleSegment(t *testing.T) {
	begin, end := testControls[0], testControls[1]
	s := SampleSegment(begin, end, 0.3)
	diff(t, Eval(begin, end, 0.3), s.Position)
	diff(t, Deriv(begin, end, 0.3), s.Derivative)
	diff(t, TwistAt(begin, end, 0.3), s.Twist)
	diff(t, 0.3, s.Param)
}
