package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"corridor-gallery/canvas"
)

// drawEnvironment renders sky, stars, ocean and fog behind the frames.
func (g *Game) drawEnvironment(screen *ebiten.Image, view *canvas.Camera) {
	canvas.DrawSky(screen, ColorSkyTop, ColorSkyHorizon)

	pos := g.ctrl.Animator().Camera().Position
	g.stars.Draw(view, screen, pos, g.ambient.StarRotation, ColorStar)
	canvas.DrawOcean(view, screen, g.ambient.Ocean, OceanGridSize, ColorOcean)
	for _, c := range g.ambient.Clouds {
		canvas.DrawCloud(view, screen, c, ColorCloud)
	}
}
