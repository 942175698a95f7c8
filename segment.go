package track

import "gonum.org/v1/gonum/spatial/r3"

// Eval returns the position of the segment between begin and end at local
// parameter i ∈ [0, 1].
func Eval(begin, end Control, i float64) r3.Vec {
	return begin.Segment(end).Eval(i)
}

// Deriv returns the unnormalized derivative of the segment between begin and
// end at local parameter i. Its magnitude is the local speed of the curve.
func Deriv(begin, end Control, i float64) r3.Vec {
	return begin.Segment(end).Deriv(i)
}

// TwistAt returns the twist of the segment between begin and end at local
// parameter i.
//
// Twist eases in and out of the controls: it is interpolated with a
// smooth-step of i rather than i itself, so it does not follow the Bézier
// timing of position and derivative.
func TwistAt(begin, end Control, i float64) float64 {
	return lerp(begin.Twist, end.Twist, smoothStep(i))
}

// SampleSegment samples the segment between begin and end at local parameter
// i. The sample's Param is i.
func SampleSegment(begin, end Control, i float64) Sample {
	c := begin.Segment(end)
	return Sample{
		Position:   c.Eval(i),
		Derivative: c.Deriv(i),
		Twist:      TwistAt(begin, end, i),
		Param:      i,
	}
}

// smoothStep maps [0, 1] onto [0, 1] with zero slope at both ends.
func smoothStep(i float64) float64 {
	return i * i * (3 - 2*i)
}

func lerp(a, b, i float64) float64 {
	return a*(1-i) + b*i
}
