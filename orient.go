package track

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// parallelEpsilon is the magnitude of the cross product of two unit vectors
// below which they are treated as parallel.
const parallelEpsilon = 1e-12

var identity = r3.Rotation{Real: 1}

// RotationBetween returns the shortest rotation that maps the direction of
// from onto the direction of to.
//
// If from and to point in opposite directions, every axis perpendicular to
// them describes a valid half turn. RotationBetween then rotates about
// from × ⟨1, 0, 0⟩, or from × ⟨0, 1, 0⟩ if from is too close to the x axis
// for that to be well conditioned. The result is NaN if either vector is zero.
func RotationBetween(from, to r3.Vec) r3.Rotation {
	if from == (r3.Vec{}) || to == (r3.Vec{}) || isNaN(from) || isNaN(to) {
		nan := math.NaN()
		return r3.Rotation{Real: nan, Imag: nan, Jmag: nan, Kmag: nan}
	}
	f := r3.Unit(from)
	t := r3.Unit(to)
	axis := r3.Cross(f, t)
	sin := r3.Norm(axis)
	cos := r3.Dot(f, t)
	if sin < parallelEpsilon {
		if cos > 0 {
			return identity
		}
		return r3.NewRotation(math.Pi, perpendicular(f))
	}
	return r3.NewRotation(math.Atan2(sin, cos), axis)
}

// perpendicular returns a unit vector perpendicular to the unit vector v.
func perpendicular(v r3.Vec) r3.Vec {
	if math.Abs(v.X) < 0.9 {
		return r3.Unit(r3.Cross(v, r3.Vec{X: 1}))
	}
	return r3.Unit(r3.Cross(v, r3.Vec{Y: 1}))
}

// Orientation returns the rotation of an object riding the curve at s, whose
// own forward axis is ref.
//
// The rotation is the quaternion product twist · align. align is
// [RotationBetween](ref, s.Derivative) and twist rotates by s.Twist radians
// about the normalized derivative. Applied to a vector, align acts first and
// the roll about the tangent second, so ref itself always ends up on the
// tangent regardless of twist.
//
// The orientation is undefined (NaN) where the derivative is zero.
func (s Sample) Orientation(ref r3.Vec) r3.Rotation {
	align := RotationBetween(ref, s.Derivative)
	if s.Twist == 0 {
		return align
	}
	twist := r3.NewRotation(s.Twist, r3.Unit(s.Derivative))
	return r3.Rotation(quat.Mul(quat.Number(twist), quat.Number(align)))
}

// Rotate rotates v into the local frame of s, using ref as the forward axis
// of that frame. See [Sample.Orientation].
func (s Sample) Rotate(ref, v r3.Vec) r3.Vec {
	return s.Orientation(ref).Rotate(v)
}
