package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DebugPanel shows the last load error in the bottom-right corner.
type DebugPanel struct {
	Error string
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

func (d *DebugPanel) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	if d == nil || d.Error == "" {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	pw, ph := 340, 60
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)
	if face != nil && drawText != nil {
		drawText(screen, face, d.Error, x+8, y+8, color.RGBA{255, 200, 50, 255})
	}
}

// LoadingBar is drawn while pictures are still being fetched.
type LoadingBar struct {
	Done, Total int
}

// Fraction is the share of finished pictures; an empty batch counts as done.
func (l *LoadingBar) Fraction() float64 {
	if l.Total <= 0 {
		return 1
	}
	f := float64(l.Done) / float64(l.Total)
	if f > 1 {
		return 1
	}
	return f
}

func (l *LoadingBar) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := float32(w)*0.4, float32(6)
	x, y := (float32(w)-bw)/2, float32(h)/2
	vector.DrawFilledRect(screen, x, y, bw, bh, color.RGBA{60, 40, 35, 200}, false)
	vector.DrawFilledRect(screen, x, y, bw*float32(l.Fraction()), bh, titleColor, false)
	if face != nil && drawText != nil {
		drawText(screen, face, fmt.Sprintf("Loading %d / %d", l.Done, l.Total), int(x), int(y)-24, titleColor)
	}
}

// HUD is a toggleable block of diagnostic lines in the top-left corner.
type HUD struct {
	Visible bool
	Lines   func() []string
}

func (hd *HUD) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	if !hd.Visible || hd.Lines == nil || face == nil || drawText == nil {
		return
	}
	y := 10
	for _, line := range hd.Lines() {
		drawText(screen, face, line, 10, y, hintColor)
		y += 18
	}
}
