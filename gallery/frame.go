package gallery

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/go-gl/mathgl/mgl64"

	"corridor-gallery/camera"
)

// Frame is one picture on the corridor walls. Immutable once built.
type Frame struct {
	ID       string
	ImageRef string // local path or http(s) URL
	Title    string
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// Side is the wall the frame hangs on.
func (f Frame) Side() camera.Side {
	return camera.SideOf(f.Position.X())
}

// FrameID derives a stable identifier from an image reference, so the same picture
// keeps its id across reloads.
func FrameID(ref string) string {
	sum := sha1.Sum([]byte(ref))
	return hex.EncodeToString(sum[:8])
}
