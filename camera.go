package main

import (
	"corridor-gallery/canvas"
)

// projection builds the screen projection for the animator's current camera.
func (g *Game) projection() *canvas.Camera {
	w, h := g.screenWidth, g.screenHeight
	if w <= 0 || h <= 0 {
		w, h = g.cfg.Window.Width, g.cfg.Window.Height
	}
	s := g.ctrl.Animator().Camera()
	return canvas.NewCamera(s, g.cfg.Camera.FOV, NearPlane, FarPlane, float64(w), float64(h))
}
