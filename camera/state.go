package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the camera transform read by the renderer every tick.
type State struct {
	Position mgl64.Vec3
	Pitch    float64 // rotation about X, radians
	Yaw      float64 // rotation about Y, radians
}

// Depth returns the position along the corridor axis.
func (s State) Depth() float64 {
	return s.Position.Z()
}

// Side tells which wall of the corridor a frame hangs on.
type Side int

const (
	Left Side = iota
	Right
)

// SideOf classifies a frame by the sign of its x coordinate.
func SideOf(x float64) Side {
	if x < 0 {
		return Left
	}
	return Right
}

// Opposite is the side the info overlay uses so it never covers the frame.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Sign is -1 for Left and +1 for Right.
func (s Side) Sign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// FocusRequest asks the animator to fly to a frame.
type FocusRequest struct {
	FrameID string
	Anchor  mgl64.Vec3
	Side    Side
}

// Target is the resting camera position for the request. Frames on the left get a
// positive x offset and frames on the right a negative one, so the camera always ends up
// between the frame and the corridor centre.
func (r FocusRequest) Target(offset mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		r.Anchor.X() - r.Side.Sign()*math.Abs(offset.X()),
		r.Anchor.Y() + offset.Y(),
		r.Anchor.Z() + offset.Z(),
	}
}
