package ui

import (
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"corridor-gallery/camera"
	"corridor-gallery/gallery"
)

const (
	panelMaxWidth = 360
	panelMargin   = 24
	panelHeight   = 140
	hiddenEpsilon = 0.01
)

var (
	panelColor = color.RGBA{0x1a, 0x0e, 0x0c, 0xdd}
	titleColor = color.RGBA{0xFA, 0xE3, 0xCA, 0xff}
	hintColor  = color.RGBA{0xb0, 0x9a, 0x88, 0xff}
)

// Overlay is the info panel shown next to a focused frame. It slides in from the
// screen edge across from the frame.
type Overlay struct {
	spring harmonica.Spring
	pos    float64 // 0 off-screen, 1 fully in
	vel    float64
	target float64

	title   string
	side    camera.Side
	visible bool

	Close   *Button
	onClose func()
}

func NewOverlay(fps int, onClose func()) *Overlay {
	o := &Overlay{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.8),
		onClose: onClose,
	}
	o.Close = &Button{Label: "x", W: 28, H: 28, OnClick: o.close}
	return o
}

// FocusChanged follows the gallery's focus notifications.
func (o *Overlay) FocusChanged(c gallery.FocusChange) {
	if c.Visible {
		o.Show(c.Title, c.OverlaySide())
		return
	}
	o.Hide()
}

// Show slides the panel in on side.
func (o *Overlay) Show(title string, side camera.Side) {
	if !o.visible {
		o.pos, o.vel = 0, 0
	}
	o.title = title
	o.side = side
	o.visible = true
	o.target = 1
}

// Hide slides the panel out; it stays drawable until it has left the screen.
func (o *Overlay) Hide() {
	o.target = 0
}

func (o *Overlay) Visible() bool { return o.visible }
func (o *Overlay) Title() string { return o.title }
func (o *Overlay) Side() camera.Side { return o.side }
func (o *Overlay) Progress() float64 { return o.pos }

// Update steps the slide spring by one tick.
func (o *Overlay) Update() {
	if !o.visible {
		return
	}
	o.pos, o.vel = o.spring.Update(o.pos, o.vel, o.target)
	if o.target == 0 && o.pos < hiddenEpsilon {
		o.pos, o.vel = 0, 0
		o.visible = false
	}
}

// Rect is the panel's current screen rectangle.
func (o *Overlay) Rect(sw, sh int) (x, y, w, h float32) {
	w = float32(math.Min(panelMaxWidth, float64(sw)*0.4))
	h = panelHeight
	y = float32(sh) - h - panelMargin

	var in, out float32
	if o.side == camera.Left {
		in, out = panelMargin, -w
	} else {
		in, out = float32(sw)-w-panelMargin, float32(sw)
	}
	x = out + (in-out)*float32(o.pos)
	return x, y, w, h
}

func (o *Overlay) layout(sw, sh int) {
	x, y, w, _ := o.Rect(sw, sh)
	o.Close.X = x + w - o.Close.W - 8
	o.Close.Y = y + 8
}

// IsMouseOver reports whether the pointer is over the panel.
func (o *Overlay) IsMouseOver(mx, my, sw, sh int) bool {
	if !o.visible {
		return false
	}
	x, y, w, h := o.Rect(sw, sh)
	fx, fy := float32(mx), float32(my)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}

// HandleClick runs the close button and reports whether the panel consumed the click.
func (o *Overlay) HandleClick(mx, my, sw, sh int) bool {
	if !o.IsMouseOver(mx, my, sw, sh) {
		return false
	}
	o.layout(sw, sh)
	if o.target > 0 && o.Close.IsMouseOver(mx, my) && o.Close.OnClick != nil {
		o.Close.OnClick()
	}
	return true
}

func (o *Overlay) close() {
	if o.onClose != nil {
		o.onClose()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	if !o.visible {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	o.layout(sw, sh)
	x, y, w, h := o.Rect(sw, sh)

	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, titleColor, false)
	o.Close.Draw(screen, face, drawText)
	if face == nil || drawText == nil {
		return
	}
	drawText(screen, face, o.title, int(x)+16, int(y)+20, titleColor)
	drawText(screen, face, "Esc or click the frame to go back", int(x)+16, int(y+h)-36, hintColor)
}
