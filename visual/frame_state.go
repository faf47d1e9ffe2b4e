package visual

import (
	"image/color"
	"math"

	"corridor-gallery/camera"
)

// Opacity maps a distance to [0, 1]: fully visible below show, fading linearly to
// zero at fade, invisible beyond.
func Opacity(distance, show, fade float64) float64 {
	distance = math.Abs(distance)
	var o float64
	switch {
	case distance < show:
		o = 1
	case distance < fade && fade > show:
		o = 1 - (distance-show)/(fade-show)
	}
	return math.Max(0, math.Min(1, o))
}

// FrameParams tunes the per-frame reaction to camera distance and hover.
type FrameParams struct {
	ShowThreshold float64
	FadeThreshold float64
	HoverRate     float64 // 1/s
	Scale         [2]float64
	HoverScale    [2]float64
	Color         color.RGBA
	HoverColor    color.RGBA
}

func DefaultFrameParams() FrameParams {
	return FrameParams{
		ShowThreshold: 120,
		FadeThreshold: 180,
		HoverRate:     10,
		Scale:         [2]float64{0.85, 0.9},
		HoverScale:    [2]float64{0.85 * 0.85, 0.9 * 0.905},
		Color:         color.RGBA{0xFA, 0xE3, 0xCA, 0xFF},
		HoverColor:    color.RGBA{0x4B, 0x04, 0x01, 0xFF},
	}
}

// FrameState is the transient look of one frame. It only reacts to the camera and
// the pointer; nothing here feeds back into camera motion.
type FrameState struct {
	params  FrameParams
	depth   float64
	hovered bool

	opacity float64
	scale   [2]float64
	color   [3]float64
}

func NewFrameState(depth float64, p FrameParams) *FrameState {
	return &FrameState{
		params: p,
		depth:  depth,
		scale:  p.Scale,
		color:  rgb(p.Color),
	}
}

// SetHovered records pointer enter (true) and leave (false).
func (s *FrameState) SetHovered(on bool) { s.hovered = on }

func (s *FrameState) Hovered() bool { return s.hovered }

// Opacity of the picture for the last update.
func (s *FrameState) Opacity() float64 { return s.opacity }

// Scale of the picture relative to the frame, x and y.
func (s *FrameState) Scale() [2]float64 { return s.scale }

// Color is the current frame border colour.
func (s *FrameState) Color() color.RGBA {
	return color.RGBA{
		R: channel(s.color[0]),
		G: channel(s.color[1]),
		B: channel(s.color[2]),
		A: 0xFF,
	}
}

// Update recomputes opacity from the camera depth and eases scale and colour toward
// their hover targets over dt seconds.
func (s *FrameState) Update(cameraDepth, dt float64) {
	p := s.params
	s.opacity = Opacity(cameraDepth-s.depth, p.ShowThreshold, p.FadeThreshold)

	scaleTarget, colorTarget := p.Scale, rgb(p.Color)
	if s.hovered {
		scaleTarget, colorTarget = p.HoverScale, rgb(p.HoverColor)
	}
	f := camera.DampFactor(p.HoverRate, dt)
	for i := range s.scale {
		s.scale[i] += (scaleTarget[i] - s.scale[i]) * f
	}
	for i := range s.color {
		s.color[i] += (colorTarget[i] - s.color[i]) * f
	}
}

func rgb(c color.RGBA) [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
