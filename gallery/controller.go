package gallery

import (
	"errors"
	"log"

	"corridor-gallery/camera"
	"corridor-gallery/visual"
)

var ErrUnknownFrame = errors.New("unknown frame")

// FocusChange tells the overlay what to show. Visible=false is sent once, after the
// camera has finished returning.
type FocusChange struct {
	FrameID string
	Title   string
	Side    camera.Side // wall the frame hangs on
	Visible bool
}

// OverlaySide is where the info panel goes: across from the frame.
func (c FocusChange) OverlaySide() camera.Side { return c.Side.Opposite() }

type FocusObserver interface {
	FocusChanged(FocusChange)
}

type ObserverFunc func(FocusChange)

func (f ObserverFunc) FocusChanged(c FocusChange) { f(c) }

// Controller routes user intents to the camera animator and keeps per-frame visual
// state in step with the camera.
type Controller struct {
	anim     *camera.Animator
	params   visual.FrameParams
	observer FocusObserver

	frames  []Frame
	index   map[string]int
	visuals []*visual.FrameState

	focused *Frame
}

func NewController(anim *camera.Animator, params visual.FrameParams, observer FocusObserver) *Controller {
	return &Controller{
		anim:     anim,
		params:   params,
		observer: observer,
		index:    make(map[string]int),
	}
}

// SetFrames replaces the dataset. Ignored while a focus is active.
func (c *Controller) SetFrames(frames []Frame) {
	if c.FocusActive() {
		log.Printf("[Gallery] frames not replaced: focus active")
		return
	}
	c.frames = frames
	c.index = make(map[string]int, len(frames))
	c.visuals = make([]*visual.FrameState, len(frames))
	for i, f := range frames {
		c.index[f.ID] = i
		c.visuals[i] = visual.NewFrameState(f.Position.Z(), c.params)
	}
}

func (c *Controller) Frames() []Frame { return c.frames }
func (c *Controller) Animator() *camera.Animator { return c.anim }

func (c *Controller) Frame(id string) (Frame, bool) {
	i, ok := c.index[id]
	if !ok {
		return Frame{}, false
	}
	return c.frames[i], true
}

// Visual returns the frame's opacity/hover state, or nil for an unknown id.
func (c *Controller) Visual(id string) *visual.FrameState {
	i, ok := c.index[id]
	if !ok {
		return nil
	}
	return c.visuals[i]
}

// Focused is the frame whose overlay is currently shown.
func (c *Controller) Focused() (Frame, bool) {
	if c.focused == nil {
		return Frame{}, false
	}
	return *c.focused, true
}

func (c *Controller) FocusActive() bool { return c.anim.Phase().FocusActive() }

func (c *Controller) SetPointer(x, y float64) { c.anim.SetPointer(x, y) }

func (c *Controller) Scroll(deltaY float64) bool { return c.anim.Scroll(deltaY) }

func (c *Controller) Hover(id string, on bool) {
	if v := c.Visual(id); v != nil {
		v.SetHovered(on)
	}
}

// Activate handles a click on a frame. From Idle it starts a focus; while a focus
// is active any frame click starts the return. Clicks during the intro or while
// returning are ignored.
func (c *Controller) Activate(id string) {
	f, ok := c.Frame(id)
	if !ok {
		log.Printf("[Gallery] activate %q: %v", id, ErrUnknownFrame)
		return
	}

	switch c.anim.Phase() {
	case camera.PhaseIntro, camera.PhaseReturning:
		return
	case camera.PhaseMovingToFocus, camera.PhaseFocused:
		c.Deactivate()
		return
	}

	req := camera.FocusRequest{FrameID: f.ID, Anchor: f.Position, Side: f.Side()}
	if err := c.anim.RequestFocus(req); err != nil {
		log.Printf("[Gallery] activate %q: %v", f.Title, err)
		return
	}
	c.focused = &f
	c.notify(FocusChange{FrameID: f.ID, Title: f.Title, Side: f.Side(), Visible: true})
}

// Deactivate starts the return to the pre-focus position (escape key, second click).
func (c *Controller) Deactivate() {
	c.ReturnToOrigin(nil)
}

// ReturnToOrigin starts the return. The overlay is hidden and onComplete runs once
// the camera is back. Reports false when no focus is active.
func (c *Controller) ReturnToOrigin(onComplete func()) bool {
	f := c.focused
	return c.anim.RequestReturn(func() {
		c.focused = nil
		if f != nil {
			c.notify(FocusChange{FrameID: f.ID, Title: f.Title, Side: f.Side(), Visible: false})
		}
		if onComplete != nil {
			onComplete()
		}
	})
}

// Tick advances the camera, then every frame's visual state against the new depth.
func (c *Controller) Tick(elapsed, dt float64) {
	c.anim.Tick(elapsed, dt)
	depth := c.anim.Camera().Depth()
	for _, v := range c.visuals {
		v.Update(depth, dt)
	}
}

func (c *Controller) notify(change FocusChange) {
	if c.observer != nil {
		c.observer.FocusChanged(change)
	}
}
