package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

type UISystem struct {
	Overlay *Overlay
	Debug   *DebugPanel
	Loading *LoadingBar
	HUD     *HUD

	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      DrawTextFunc
	loading       bool
}

// NewUISystem wires the overlay close button to onClose.
func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText DrawTextFunc, fps int, onClose func()) *UISystem {
	return &UISystem{
		Overlay:       NewOverlay(fps, onClose),
		Debug:         &DebugPanel{},
		Loading:       &LoadingBar{},
		HUD:           &HUD{},
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		loading:       true,
	}
}

// SetLoading toggles the loading bar.
func (ui *UISystem) SetLoading(on bool) { ui.loading = on }

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	w, h := ui.getScreenSize()
	return ui.Overlay.IsMouseOver(mx, my, w, h)
}

// HandleClick reports whether the UI consumed the click.
func (ui *UISystem) HandleClick(mx, my int) bool {
	w, h := ui.getScreenSize()
	return ui.Overlay.HandleClick(mx, my, w, h)
}

func (ui *UISystem) Update() {
	ui.Overlay.Update()
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	var face font.Face
	if ui.getFontFace != nil {
		face = ui.getFontFace()
	}
	if ui.loading {
		ui.Loading.Draw(screen, face, ui.drawText)
	}
	ui.Overlay.Draw(screen, face, ui.drawText)
	ui.HUD.Draw(screen, face, ui.drawText)
	ui.Debug.Draw(screen, face, ui.drawText)
}
