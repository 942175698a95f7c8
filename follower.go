package track

import (
	"iter"
	"math"
)

// MinSpeed is the smallest curve speed a [Follower] divides by when
// computing its next step. It bounds the step at cusps and zero tangents.
const MinSpeed = 1e-6

// Follower walks a composite curve, producing samples spaced roughly rate
// world units apart.
//
// The step from one sample to the next is rate divided by the local speed of
// the curve. This approximates arc-length spacing to the degree that the
// speed is constant over a step; it is not an exact arc-length
// parametrization.
//
// A Follower borrows its controls and never modifies them. Once it runs off
// the end of the curve it stays exhausted; it cannot be restarted.
type Follower struct {
	controls []Control
	rate     float64
	i        float64
	done     bool
}

// NewFollower returns a follower over controls starting at parameter 0.
//
// A rate that is not positive produces no samples.
func NewFollower(controls []Control, rate float64) *Follower {
	return &Follower{
		controls: controls,
		rate:     rate,
		done:     !(rate > 0) || math.IsInf(rate, 1),
	}
}

// Param returns the parameter the next call to Next will sample at.
func (f *Follower) Param() float64 {
	return f.i
}

// Rate returns the nominal distance between samples.
func (f *Follower) Rate() float64 {
	return f.rate
}

// Next returns the sample at the current parameter and advances past it. It
// reports false once the parameter has left the curve, and keeps doing so on
// every later call.
func (f *Follower) Next() (Sample, bool) {
	if f.done {
		return Sample{}, false
	}
	s, ok := SampleAt(f.controls, f.i)
	if !ok {
		f.done = true
		return Sample{}, false
	}
	next := f.i + f.rate/max(s.Speed(), MinSpeed)
	if next <= f.i {
		// The step vanished in rounding.
		next = math.Nextafter(f.i, math.Inf(1))
	}
	f.i = next
	return s, true
}

// All returns an iterator over the follower's remaining samples. Consuming
// the iterator advances the follower.
func (f *Follower) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for {
			s, ok := f.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Follow returns an iterator over the samples of a new [Follower] over
// controls. Unlike [Follower.All], the iterator can be ranged over more than
// once; each iteration starts over at parameter 0.
func Follow(controls []Control, rate float64) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		NewFollower(controls, rate).All()(yield)
	}
}
