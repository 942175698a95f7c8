package main

import (
	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/track"
)

// A Rider moves along a track at a roughly constant speed in world space.
//
// The rider owns the current parameter and samples the track directly every
// tick, without a follower.
type Rider struct {
	Controls []track.Control
	// Speed is the nominal speed in world units per second.
	Speed float64
	// Width is the width of the road. Full lateral input moves the rider to
	// its edge.
	Width float64
	// Forward and Lateral are the reference axes of the rider's frame. Zero
	// values use track.DefaultForward and track.DefaultLateral.
	Forward, Lateral r3.Vec

	T    float64
	Laps int
}

// Pose is where a rider is during one tick.
type Pose struct {
	Sample track.Sample
	// Position is the sample position displaced laterally by the input.
	Position r3.Vec
	// Lapped reports whether the rider ran off the end of the track and
	// started over during this tick.
	Lapped bool
}

// Step samples the rider's current position, displaced by the lateral input
// x, and then advances the rider by dt seconds. The forward input y scales
// the speed between half and one and a half times the nominal speed. Both
// inputs are in [-1, 1].
//
// Step reports false if the track has no segments.
func (r *Rider) Step(dt, x, y float64) (Pose, bool) {
	var pose Pose
	s, ok := track.SampleAt(r.Controls, r.T)
	if !ok {
		r.T = 0
		r.Laps++
		pose.Lapped = true
		s, ok = track.SampleAt(r.Controls, r.T)
		if !ok {
			return Pose{}, false
		}
	}
	pose.Sample = s

	forward := r.Forward
	if forward == (r3.Vec{}) {
		forward = track.DefaultForward
	}
	lateral := r.Lateral
	if lateral == (r3.Vec{}) {
		lateral = track.DefaultLateral
	}
	offset := r3.Scale(x*r.Width/2, s.Rotate(forward, r3.Unit(lateral)))
	pose.Position = r3.Add(s.Position, offset)

	speed := r.Speed * (1 + 0.5*y)
	r.T += speed * dt / max(s.Speed(), track.MinSpeed)
	return pose, true
}
