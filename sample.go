package track

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sample is the state of a track curve at one parameter.
type Sample struct {
	Position r3.Vec
	// Derivative is the unnormalized tangent. Its magnitude is the local
	// speed of the curve with respect to its parameter.
	Derivative r3.Vec
	// Twist is the interpolated roll angle, in radians.
	Twist float64
	// Param is the parameter that produced the sample.
	Param float64
}

func (s Sample) String() string {
	return fmt.Sprintf("Sample{%v, %v, %g, %g}", s.Position, s.Derivative, s.Twist, s.Param)
}

// Speed returns the magnitude of the sample's derivative.
func (s Sample) Speed() float64 {
	return r3.Norm(s.Derivative)
}

// Tangent returns the unit tangent of the sample. It is NaN if the derivative
// is zero.
func (s Sample) Tangent() r3.Vec {
	return r3.Unit(s.Derivative)
}

// SampleAt samples the composite curve described by controls at the global
// parameter t.
//
// The integer part of t selects the segment between controls[⌊t⌋] and
// controls[⌊t⌋+1], the fractional part is the local parameter within it. The
// returned sample's Param is t itself. SampleAt reports false if no such
// segment exists, which is the case for t < 0, t ≥ len(controls)-1, and NaN.
func SampleAt(controls []Control, t float64) (Sample, bool) {
	// The comparisons are false for NaN.
	if !(t >= 0) || !(t < Domain(controls)) {
		return Sample{}, false
	}
	whole := math.Floor(t)
	base := int(whole)
	s := SampleSegment(controls[base], controls[base+1], t-whole)
	s.Param = t
	return s, true
}

// Domain returns the exclusive upper bound of the global parameter for
// controls. It is zero if there are fewer than two controls, in which case
// no parameter is valid.
func Domain(controls []Control) float64 {
	if len(controls) < 2 {
		return 0
	}
	return float64(len(controls) - 1)
}
