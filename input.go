package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"corridor-gallery/input"
)

// InputSystem polls ebiten and feeds the events into the gallery's input pump.
type InputSystem struct {
	game *Game

	lastMouseX int
	lastMouseY int
	moved      bool
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{game: g}
}

func (is *InputSystem) Update() {
	g := is.game
	mx, my := ebiten.CursorPosition()

	is.handleControlKeys()

	if !is.moved || mx != is.lastMouseX || my != is.lastMouseY {
		is.moved = true
		is.lastMouseX, is.lastMouseY = mx, my
		g.pump.Emit(input.Event{Kind: input.PointerMove, X: float64(mx), Y: float64(my)})
	}

	// ebiten reports wheel-up as positive; the gallery expects positive to scroll down
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.pump.Emit(input.Event{Kind: input.Wheel, DeltaY: -dy})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.ui.HandleClick(mx, my) {
		g.pump.Emit(input.Event{Kind: input.Click, X: float64(mx), Y: float64(my)})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pump.Emit(input.Event{Kind: input.KeyDown, Key: input.KeyEscape})
	}

	is.updateCursor(mx, my)
}

func (is *InputSystem) handleControlKeys() {
	g := is.game
	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}

	// --- Fullscreen ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.toggleFullscreen()
	}

	// --- HUD ---
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.toggleHUD()
	}
}

func (is *InputSystem) updateCursor(mx, my int) {
	g := is.game
	shape := ebiten.CursorShapeDefault
	if g.adapter.Hovered() != "" || g.ui.IsMouseOver(mx, my) {
		shape = ebiten.CursorShapePointer
	}
	ebiten.SetCursorShape(shape)
}
