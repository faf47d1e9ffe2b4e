package canvas

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"corridor-gallery/visual"
)

// DrawSky fills the screen with a vertical gradient from top to horizon.
func DrawSky(screen *ebiten.Image, top, horizon color.RGBA) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	const bands = 32
	bh := float32(h) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		vector.DrawFilledRect(screen, 0, float32(i)*bh, float32(w), bh+1, mix(top, horizon, t), false)
	}
}

// DrawOcean renders the water plane as a projected grid whose lines drift with the
// ocean time, the way the canvas grid follows the camera.
func DrawOcean(cam *Camera, screen *ebiten.Image, o visual.Ocean, gridSize float64, clr color.RGBA) {
	y := o.Position.Y()
	halfX, halfZ := o.Size.X()/2, o.Size.Y()/2
	cx, cz := o.Position.X(), o.Position.Z()

	drift := math.Mod(o.Time*gridSize+o.NormalOffset.X()*gridSize, gridSize)
	for x := cx - halfX + drift; x <= cx+halfX; x += gridSize {
		ripple := math.Sin(o.Time+x*0.01) * 0.3
		a := mgl64.Vec3{x, y + ripple, cz - halfZ}
		b := mgl64.Vec3{x, y + ripple, cz + halfZ}
		strokeSegment(cam, screen, a, b, 1, clr)
	}

	drift = math.Mod(o.Time*gridSize*0.5+o.NormalOffset.Y()*gridSize, gridSize)
	for z := cz - halfZ + drift; z <= cz+halfZ; z += gridSize {
		ripple := math.Cos(o.Time+z*0.01) * 0.3
		a := mgl64.Vec3{cx - halfX, y + ripple, z}
		b := mgl64.Vec3{cx + halfX, y + ripple, z}
		strokeSegment(cam, screen, a, b, 1, clr)
	}
}

// Stars is a fixed point cloud on a sphere around the viewer.
type Stars struct {
	points []mgl64.Vec3
	radius float64
}

// NewStars scatters count points over a sphere of the given radius using a
// Fibonacci lattice, so the field is the same on every run.
func NewStars(count int, radius float64) *Stars {
	pts := make([]mgl64.Vec3, count)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range pts {
		y := 1 - 2*(float64(i)+0.5)/float64(count)
		r := math.Sqrt(1 - y*y)
		th := golden * float64(i)
		pts[i] = mgl64.Vec3{math.Cos(th) * r, y, math.Sin(th) * r}
	}
	return &Stars{points: pts, radius: radius}
}

func (s *Stars) Len() int { return len(s.points) }

// Draw renders the stars turned by rotation about Y and centred on the viewer.
func (s *Stars) Draw(cam *Camera, screen *ebiten.Image, viewer mgl64.Vec3, rotation float64, clr color.RGBA) {
	rot := mgl64.Rotate3DY(rotation)
	for i, p := range s.points {
		if p.Y() < -0.05 {
			continue // below the horizon, hidden by the ocean
		}
		w := viewer.Add(rot.Mul3x1(p).Mul(s.radius))
		sx, sy, ok := cam.WorldToScreen(w)
		if !ok {
			continue
		}
		size := float32(1 + float64(i%3)*0.5)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), size, size, clr, false)
	}
}

// DrawCloud draws a soft fog billboard. Nothing is drawn at zero opacity.
func DrawCloud(cam *Camera, screen *ebiten.Image, c visual.Cloud, clr color.RGBA) {
	if c.Opacity <= 0 {
		return
	}
	sx, sy, ok := cam.WorldToScreen(c.Position)
	if !ok {
		return
	}
	d := cam.Distance(c.Position)
	r := c.Scale * 4 * cam.h / d
	if r < 1 {
		return
	}
	const layers = 5
	for i := 0; i < layers; i++ {
		k := 1 - float64(i)/layers
		a := uint8(float64(clr.A) * c.Opacity / layers)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r*k), color.RGBA{clr.R, clr.G, clr.B, a}, true)
	}
}

func strokeSegment(cam *Camera, screen *ebiten.Image, a, b mgl64.Vec3, width float32, clr color.Color) {
	x0, y0, x1, y1, ok := cam.ProjectSegment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, false)
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}
