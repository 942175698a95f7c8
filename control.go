package track

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Control is one anchor of a composite track curve.
//
// The tangent doubles as the handle length of the segments on either side of
// the control: the segment leaving the control uses Position + Tangent as its
// first handle, and the segment arriving at it uses Position - Tangent as its
// second handle. A zero tangent yields a zero derivative at the control, and
// thus an undefined orientation there.
type Control struct {
	Position r3.Vec
	Tangent  r3.Vec
	// Twist is the roll angle about the tangent, in radians.
	Twist float64
}

// Ctrl returns a control at position with the given tangent and twist.
func Ctrl(position, tangent r3.Vec, twist float64) Control {
	return Control{
		Position: position,
		Tangent:  tangent,
		Twist:    twist,
	}
}

func (c Control) String() string {
	return fmt.Sprintf("Control{%v, %v, %g}", c.Position, c.Tangent, c.Twist)
}

// Front returns the handle in front of the control.
func (c Control) Front() r3.Vec {
	return r3.Add(c.Position, c.Tangent)
}

// Back returns the handle behind the control.
func (c Control) Back() r3.Vec {
	return r3.Sub(c.Position, c.Tangent)
}

// Segment returns the cubic Bézier connecting c to end.
func (c Control) Segment(end Control) CubicBez {
	return CubicBez{
		P0: c.Position,
		P1: c.Front(),
		P2: end.Back(),
		P3: end.Position,
	}
}
