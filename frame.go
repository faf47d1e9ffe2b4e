package main

import (
	"image"
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"corridor-gallery/canvas"
	"corridor-gallery/gallery"
	"corridor-gallery/ui"
	"corridor-gallery/visual"
)

// frameQuad is a frame projected onto the screen.
type frameQuad struct {
	frame   gallery.Frame
	state   *visual.FrameState
	outer   [4][2]float64 // border, full frame size
	inner   [4][2]float64 // picture, scaled by the hover state
	depth   float64
	opacity float64
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// frameQuads projects every visible frame, sorted far to near.
func (g *Game) frameQuads(view *canvas.Camera) []frameQuad {
	var out []frameQuad
	for _, f := range g.ctrl.Frames() {
		st := g.ctrl.Visual(f.ID)
		if st == nil || st.Opacity() <= 0 {
			continue
		}
		geo := g.geometry.Lookup(f.ID)
		yaw := f.Rotation.Y()
		outer, ok := projectQuad(view, canvas.Quad(f.Position, yaw, geo.Width, geo.Height))
		if !ok {
			continue
		}
		s := st.Scale()
		// the picture sits slightly in front of its border
		front := mgl64.Rotate3DY(yaw).Mul3x1(mgl64.Vec3{0, 0, 0.05})
		inner, ok := projectQuad(view, canvas.Quad(f.Position.Add(front), yaw, geo.Width*s[0], geo.Height*s[1]))
		if !ok {
			continue
		}
		out = append(out, frameQuad{
			frame:   f,
			state:   st,
			outer:   outer,
			inner:   inner,
			depth:   view.Distance(f.Position),
			opacity: st.Opacity(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].depth > out[j].depth })
	return out
}

func projectQuad(view *canvas.Camera, corners [4]mgl64.Vec3) ([4][2]float64, bool) {
	var q [4][2]float64
	for i, c := range corners {
		x, y, ok := view.WorldToScreen(c)
		if !ok {
			return q, false
		}
		q[i] = [2]float64{x, y}
	}
	return q, true
}

// FrameAt returns the nearest frame under the screen point, as last projected.
func (g *Game) FrameAt(sx, sy float64) (string, bool) {
	if g.view == nil {
		return "", false
	}
	quads := g.frameQuads(g.view)
	for i := len(quads) - 1; i >= 0; i-- {
		if canvas.PointInQuad(sx, sy, quads[i].outer) {
			return quads[i].frame.ID, true
		}
	}
	return "", false
}

func (g *Game) drawFrames(screen *ebiten.Image, view *canvas.Camera) {
	for _, q := range g.frameQuads(view) {
		border := q.state.Color()
		drawQuad(screen, g.whitePixel(), q.outer, border, q.opacity)
		if sprite, ok := g.sprites[q.frame.ID]; ok {
			drawQuad(screen, sprite, q.inner, color.RGBA{0xff, 0xff, 0xff, 0xff}, q.opacity)
		} else {
			drawQuad(screen, g.whitePixel(), q.inner, ColorBackground, q.opacity)
		}
		g.drawLabel(screen, q)
	}
}

func (g *Game) drawLabel(screen *ebiten.Image, q frameQuad) {
	if q.depth > LabelMaxDistance || q.opacity < LabelMinOpacity {
		return
	}
	bl, br := q.outer[3], q.outer[2]
	cx := (bl[0] + br[0]) / 2
	y := max(bl[1], br[1]) + LabelGap
	x := cx - float64(ui.TextWidth(g.face, q.frame.Title))/2
	clr := ColorLabel
	clr.A = uint8(float64(clr.A) * q.opacity)
	ui.DrawTextLines(screen, g.face, q.frame.Title, int(x), int(y), clr)
}

// drawQuad maps the whole of src onto the screen quad q (top-left, top-right,
// bottom-right, bottom-left).
func drawQuad(screen, src *ebiten.Image, q [4][2]float64, tint color.RGBA, opacity float64) {
	b := src.Bounds()
	uv := [4][2]float32{
		{float32(b.Min.X), float32(b.Min.Y)},
		{float32(b.Max.X), float32(b.Min.Y)},
		{float32(b.Max.X), float32(b.Max.Y)},
		{float32(b.Min.X), float32(b.Max.Y)},
	}
	r, gr, bl := float32(tint.R)/0xff, float32(tint.G)/0xff, float32(tint.B)/0xff
	a := float32(opacity)
	vs := make([]ebiten.Vertex, 4)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX: float32(q[i][0]), DstY: float32(q[i][1]),
			SrcX: uv[i][0], SrcY: uv[i][1],
			ColorR: r, ColorG: gr, ColorB: bl, ColorA: a,
		}
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.Filter = ebiten.FilterLinear
	screen.DrawTriangles(vs, quadIndices, src, op)
}

// whitePixel is the source image for solid quads.
func (g *Game) whitePixel() *ebiten.Image {
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return g.white
}
