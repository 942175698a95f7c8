package track

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// straight returns n controls spaced step apart along x whose segments have
// a constant speed of step.
func straight(n int, step float64) []Control {
	controls := make([]Control, n)
	for i := range controls {
		controls[i] = Ctrl(vec(float64(i)*step, 0, 0), vec(step/3, 0, 0), 0)
	}
	return controls
}
