package main

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"corridor-gallery/camera"
	"corridor-gallery/canvas"
	"corridor-gallery/config"
	"corridor-gallery/gallery"
	"corridor-gallery/input"
	"corridor-gallery/settings"
	"corridor-gallery/ui"
	"corridor-gallery/visual"
)

type Game struct {
	cfg   config.Config
	prefs *settings.Manager

	ctrl     *gallery.Controller
	ambient  *visual.Ambient
	geometry *gallery.GeometryTable
	stars    *canvas.Stars

	assets  *assetLoader
	sprites map[string]*ebiten.Image
	white   *ebiten.Image

	pump    *input.Pump
	adapter *input.Adapter
	input   *InputSystem
	ui      *ui.UISystem
	face    font.Face

	view         *canvas.Camera // projection of the last update, used for picking
	screenWidth  int
	screenHeight int
	elapsed      float64

	screenshotRequested bool
}

// NewGame wires the gallery. Pictures start loading on the first update.
func NewGame(cfg config.Config, prefs *settings.Manager, frames []gallery.Frame) *Game {
	params := cfg.CameraParams()
	params.RotationSpeed *= prefs.Viewer().LookSensitivity

	g := &Game{
		cfg:          cfg,
		prefs:        prefs,
		ambient:      visual.NewAmbient(cfg.AmbientParams()),
		geometry:     gallery.NewGeometryTable(cfg.Frames.Width, gallery.GoldenRatio),
		stars:        canvas.NewStars(StarCount, StarRadius),
		sprites:      make(map[string]*ebiten.Image),
		pump:         input.NewPump(),
		face:         ui.LoadUIFont(cfg.Dataset.Font, 16),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
	}
	g.ui = ui.NewUISystem(
		func() font.Face { return g.face },
		func() (int, int) { return g.screenWidth, g.screenHeight },
		ui.DrawTextLines,
		cfg.Window.TPS,
		func() { g.ctrl.ReturnToOrigin(nil) },
	)
	g.ui.HUD.Visible = prefs.Viewer().ShowHUD
	g.ui.HUD.Lines = g.hudLines

	g.ctrl = gallery.NewController(camera.NewAnimator(params), cfg.FrameParams(), g.ui.Overlay)
	g.ctrl.SetFrames(frames)

	g.adapter = input.NewAdapter(g.ctrl, g)
	g.adapter.Attach(g.pump)
	g.input = NewInputSystem(g)
	g.assets = newAssetLoader(gallery.NewLoader(cfg.Dataset.AssetRoot, cfg.AspectBounds(), cfg.Dataset.Concurrency))
	return g
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	g.elapsed += dt

	g.assets.start(g.ctrl.Frames())
	g.pollAssets()

	g.view = g.projection()
	g.input.Update()

	g.ctrl.Tick(g.elapsed, dt)
	g.ambient.Update(g.ctrl.Animator().Camera().Position, g.elapsed, dt)
	g.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	view := g.projection()
	g.drawEnvironment(screen, view)
	g.drawFrames(screen, view)
	g.ui.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := saveScreenshot(screen, ScreenshotFile); err != nil {
			log.Println("screenshot error:", err)
		} else {
			log.Println("Screenshot saved as", ScreenshotFile)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.pump.SetSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) hudLines() []string {
	a := g.ctrl.Animator()
	s := a.Camera()
	lines := []string{
		fmt.Sprintf("Phase: %s", a.Phase()),
		fmt.Sprintf("Camera: (%.1f, %.1f, %.1f) target depth %.1f", s.Position.X(), s.Position.Y(), s.Position.Z(), a.TargetDepth()),
		fmt.Sprintf("Look: yaw %.3f pitch %.3f", s.Yaw, s.Pitch),
		fmt.Sprintf("Frames: %d  TPS: %.0f  FPS: %.0f", len(g.ctrl.Frames()), ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	if id := g.adapter.Hovered(); id != "" {
		if f, ok := g.ctrl.Frame(id); ok {
			lines = append(lines, "Hovering: "+f.Title)
		}
	}
	return lines
}

func (g *Game) toggleHUD() {
	on := !g.ui.HUD.Visible
	g.ui.HUD.Visible = on
	g.prefs.SetShowHUD(on)
	g.savePrefs()
}

func (g *Game) toggleFullscreen() {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	g.prefs.SetFullscreen(on)
	g.savePrefs()
}

func (g *Game) savePrefs() {
	if err := g.prefs.Save(); err != nil {
		log.Printf("[Settings] %v", err)
	}
}

func saveScreenshot(screen *ebiten.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, screen)
}
