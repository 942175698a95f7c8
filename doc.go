// Package track provides composite 3D curves for laying out roads, rails and
// ribbons, and for moving objects along them.
//
// # Controls and segments
//
// A track is an ordered slice of [Control] values, each holding a position, a
// tangent and a twist angle. Two adjacent controls define a segment, which is
// the cubic Bézier through the first control's position, its front handle
// (position + tangent), the second control's back handle (position -
// tangent), and the second control's position. Because both segments meeting
// at a control use the same tangent, the composite curve is C1 continuous.
//
// [Eval], [Deriv] and [TwistAt] evaluate a single segment. The derivative is
// analytic and shares its coefficients with the position, see
// [CubicBez.Differentiate].
//
// # Global parameter
//
// [SampleAt] evaluates the whole track at a single real parameter t. The
// integer part of t selects the segment and the fractional part is the local
// parameter within it, so t ranges over [0, len(controls)-1). Outside that
// range there is no sample, and SampleAt reports false instead of failing;
// callers that animate along a track typically wrap t back to 0.
//
// # Orientation
//
// Samples do not store an orientation. [Sample.Orientation] derives one from
// the tangent and twist, relative to a forward axis chosen by the caller.
//
// # Following a track
//
// Uniform steps of t do not produce uniform spacing in space, since the speed
// of a Bézier varies along it. A [Follower] instead steps by rate divided by
// the local speed, yielding samples approximately rate world units apart.
// [Follow] wraps this in an iterator.
//
// # Tessellation
//
// [Ribbon], [CenterLine] and [TraceAway] consume sample iterators and produce
// vertex and index buffers for a renderer. [Grid] and [TrackTrace] produce
// reference geometry that does not depend on a follower.
package track
