package canvas

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"corridor-gallery/camera"
)

// Camera projects world points onto the screen for one camera state.
type Camera struct {
	view, proj, viewProj mgl64.Mat4
	near                 float64
	w, h                 float64
}

// NewCamera builds the view and projection matrices. fov is the vertical field of
// view in degrees; w and h are the screen size in pixels.
func NewCamera(s camera.State, fov, near, far, w, h float64) *Camera {
	if h <= 0 {
		h = 1
	}
	view := mgl64.HomogRotate3DY(-s.Yaw).
		Mul4(mgl64.HomogRotate3DX(-s.Pitch)).
		Mul4(mgl64.Translate3D(-s.Position.X(), -s.Position.Y(), -s.Position.Z()))
	proj := mgl64.Perspective(mgl64.DegToRad(fov), w/h, near, far)
	return &Camera{view: view, proj: proj, viewProj: proj.Mul4(view), near: near, w: w, h: h}
}

// ToView transforms a world point into camera space, where the camera looks down -z.
func (c *Camera) ToView(p mgl64.Vec3) mgl64.Vec3 {
	return c.view.Mul4x1(p.Vec4(1)).Vec3()
}

// ProjectView maps a camera-space point to screen pixels. ok is false for points at
// or behind the near plane.
func (c *Camera) ProjectView(v mgl64.Vec3) (sx, sy float64, ok bool) {
	if -v.Z() < c.near {
		return 0, 0, false
	}
	clip := c.proj.Mul4x1(v.Vec4(1))
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	return (nx + 1) / 2 * c.w, (1 - ny) / 2 * c.h, true
}

// WorldToScreen projects a world point. ok is false when it is behind the camera.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (sx, sy float64, ok bool) {
	return c.ProjectView(c.ToView(p))
}

// Distance is the camera-space depth of p; larger is farther.
func (c *Camera) Distance(p mgl64.Vec3) float64 {
	return -c.ToView(p).Z()
}

// ProjectSegment clips the segment a-b against the near plane and projects what is
// left.
func (c *Camera) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	va, vb := c.ToView(a), c.ToView(b)
	da, db := -va.Z()-c.near, -vb.Z()-c.near
	if da < 0 && db < 0 {
		return 0, 0, 0, 0, false
	}
	if da < 0 {
		va = va.Add(vb.Sub(va).Mul(da / (da - db)))
	} else if db < 0 {
		vb = vb.Add(va.Sub(vb).Mul(db / (db - da)))
	}
	// nudge clipped endpoints off the plane itself
	if -va.Z() < c.near {
		va[2] = -c.near
	}
	if -vb.Z() < c.near {
		vb[2] = -c.near
	}
	x0, y0, _ = c.ProjectView(va)
	x1, y1, _ = c.ProjectView(vb)
	return x0, y0, x1, y1, true
}

// Quad returns the world corners of a w x h rectangle centred at center and turned
// by yaw about the Y axis, in the order top-left, top-right, bottom-right,
// bottom-left as seen from its front.
func Quad(center mgl64.Vec3, yaw, w, h float64) [4]mgl64.Vec3 {
	rot := mgl64.Rotate3DY(yaw)
	hw, hh := w/2, h/2
	local := [4]mgl64.Vec3{{-hw, hh, 0}, {hw, hh, 0}, {hw, -hh, 0}, {-hw, -hh, 0}}
	var out [4]mgl64.Vec3
	for i, p := range local {
		out[i] = center.Add(rot.Mul3x1(p))
	}
	return out
}

// PointInQuad reports whether (x, y) lies inside the convex screen quad q.
func PointInQuad(x, y float64, q [4][2]float64) bool {
	sign := 0.0
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = math.Copysign(1, cross)
		} else if math.Copysign(1, cross) != sign {
			return false
		}
	}
	return sign != 0
}
