package gallery

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"corridor-gallery/camera"
	"corridor-gallery/visual"
)

const tick = 1.0 / 60

type recorder struct {
	changes []FocusChange
}

func (r *recorder) FocusChanged(c FocusChange) { r.changes = append(r.changes, c) }

func testFrames() []Frame {
	return []Frame{
		{ID: "left", Title: "Item 1", Position: mgl64.Vec3{-15, 7, 50}},
		{ID: "right", Title: "Item 2", Position: mgl64.Vec3{15, 7, 75}},
	}
}

// newIdleController finishes the intro so the camera sits idle at depth 1150.
func newIdleController(t *testing.T) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c := NewController(camera.NewAnimator(camera.DefaultParams()), visual.DefaultFrameParams(), rec)
	c.SetFrames(testFrames())
	c.Animator().SetReady()
	c.Tick(0, 0)
	c.Tick(8, tick)
	if got := c.Animator().Phase(); got != camera.PhaseIdle {
		t.Fatalf("Expected idle, got %s", got)
	}
	return c, rec
}

func tickWhile(t *testing.T, c *Controller, phase camera.Phase) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if c.Animator().Phase() != phase {
			return
		}
		c.Tick(0, tick)
	}
	t.Fatalf("Still in %s after 2000 ticks", phase)
}

func TestActivateLeftFrameAndReturn(t *testing.T) {
	c, rec := newIdleController(t)
	start := c.Animator().Camera().Position

	c.Activate("left")
	if got := c.Animator().Phase(); got != camera.PhaseMovingToFocus {
		t.Fatalf("Expected moving to focus, got %s", got)
	}
	if got := c.Animator().FocusTarget(); !got.ApproxEqual(mgl64.Vec3{-10, 7, 70}) {
		t.Errorf("Expected target (-10, 7, 70), got %v", got)
	}
	if len(rec.changes) != 1 {
		t.Fatalf("Expected one notification, got %d", len(rec.changes))
	}
	show := rec.changes[0]
	if !show.Visible || show.Title != "Item 1" || show.Side != camera.Left || show.OverlaySide() != camera.Right {
		t.Errorf("Unexpected show notification: %+v", show)
	}

	tickWhile(t, c, camera.PhaseMovingToFocus)
	if got := c.Animator().Camera().Position; got != (mgl64.Vec3{-10, 7, 70}) {
		t.Errorf("Expected camera to rest at target, got %v", got)
	}

	c.Activate("left")
	if got := c.Animator().Phase(); got != camera.PhaseReturning {
		t.Fatalf("Expected returning after second click, got %s", got)
	}
	if len(rec.changes) != 1 {
		t.Error("Expected overlay to stay until the camera is back")
	}

	tickWhile(t, c, camera.PhaseReturning)
	if got := c.Animator().Camera().Position; got != start {
		t.Errorf("Expected camera back at %v, got %v", start, got)
	}
	if len(rec.changes) != 2 || rec.changes[1].Visible || rec.changes[1].FrameID != "left" {
		t.Errorf("Expected one hide notification, got %+v", rec.changes)
	}
	if _, ok := c.Focused(); ok {
		t.Error("Expected no focused frame")
	}
}

func TestActivateRightFrame(t *testing.T) {
	c, rec := newIdleController(t)
	c.Activate("right")
	if got := c.Animator().FocusTarget(); !got.ApproxEqual(mgl64.Vec3{10, 7, 95}) {
		t.Errorf("Expected target (10, 7, 95), got %v", got)
	}
	if rec.changes[0].OverlaySide() != camera.Left {
		t.Errorf("Expected overlay on the left, got %s", rec.changes[0].OverlaySide())
	}
	if f, ok := c.Focused(); !ok || f.ID != "right" {
		t.Errorf("Expected right frame focused, got %+v", f)
	}
}

func TestDeactivateFromFlight(t *testing.T) {
	c, rec := newIdleController(t)
	start := c.Animator().Camera().Position
	c.Activate("right")
	c.Tick(0, tick)
	c.Deactivate()
	if got := c.Animator().Phase(); got != camera.PhaseReturning {
		t.Fatalf("Expected returning, got %s", got)
	}
	tickWhile(t, c, camera.PhaseReturning)
	if got := c.Animator().Camera().Position; got != start {
		t.Errorf("Expected camera back at %v, got %v", start, got)
	}
	if len(rec.changes) != 2 {
		t.Errorf("Expected show and hide, got %+v", rec.changes)
	}
}

func TestClicksIgnored(t *testing.T) {
	rec := &recorder{}
	c := NewController(camera.NewAnimator(camera.DefaultParams()), visual.DefaultFrameParams(), rec)
	c.SetFrames(testFrames())
	c.Activate("left")
	if c.Animator().Phase() != camera.PhaseIntro || len(rec.changes) != 0 {
		t.Error("Expected click during intro to be ignored")
	}

	c, rec = newIdleController(t)
	c.Activate("nope")
	if c.Animator().Phase() != camera.PhaseIdle || len(rec.changes) != 0 {
		t.Error("Expected unknown frame to be ignored")
	}

	c.Activate("left")
	c.Deactivate()
	c.Activate("right")
	c.Deactivate()
	if c.Animator().Phase() != camera.PhaseReturning {
		t.Errorf("Expected return to continue, got %s", c.Animator().Phase())
	}
	if len(rec.changes) != 1 {
		t.Errorf("Expected no extra notifications while returning, got %+v", rec.changes)
	}
}

func TestActivateOtherFrameWhileFocused(t *testing.T) {
	c, rec := newIdleController(t)
	c.Activate("left")
	tickWhile(t, c, camera.PhaseMovingToFocus)

	c.Activate("right")
	if c.Animator().Phase() != camera.PhaseReturning {
		t.Fatalf("Expected another frame click to start the return, got %s", c.Animator().Phase())
	}
	tickWhile(t, c, camera.PhaseReturning)
	if len(rec.changes) != 2 || rec.changes[1].FrameID != "left" {
		t.Errorf("Expected hide for the left frame, got %+v", rec.changes)
	}
}

func TestReturnToOriginCallback(t *testing.T) {
	c, rec := newIdleController(t)
	if c.ReturnToOrigin(func() { t.Error("Unexpected callback") }) {
		t.Error("Expected return without focus to be rejected")
	}

	c.Activate("left")
	var order []string
	calls := 0
	c.observer = ObserverFunc(func(fc FocusChange) {
		rec.FocusChanged(fc)
		order = append(order, "hide")
	})
	ok := c.ReturnToOrigin(func() {
		calls++
		order = append(order, "done")
	})
	if !ok {
		t.Fatal("Expected return to start")
	}
	tickWhile(t, c, camera.PhaseReturning)
	for i := 0; i < 10; i++ {
		c.Tick(0, tick)
	}
	if calls != 1 {
		t.Errorf("Expected callback once, got %d", calls)
	}
	if len(order) != 2 || order[0] != "hide" || order[1] != "done" {
		t.Errorf("Expected hide before completion, got %v", order)
	}
}

func TestVisualsFollowCamera(t *testing.T) {
	c, _ := newIdleController(t)
	// camera at 1150; frames at 50 and 75 are far beyond the fade threshold
	if got := c.Visual("left").Opacity(); got != 0 {
		t.Errorf("Expected hidden frame, got opacity %v", got)
	}

	c.Hover("right", true)
	for i := 0; i < 120; i++ {
		c.Tick(0, tick)
	}
	v := c.Visual("right")
	if !v.Hovered() {
		t.Error("Expected hovered state")
	}
	p := visual.DefaultFrameParams()
	if s := v.Scale(); s[0] > p.Scale[0]-0.1 {
		t.Errorf("Expected hover scale to shrink, got %v", s)
	}
	c.Hover("nope", true)
	if c.Visual("nope") != nil {
		t.Error("Expected nil visual for unknown frame")
	}
}

func TestSetFramesIgnoredWhileFocused(t *testing.T) {
	c, _ := newIdleController(t)
	c.Activate("left")
	c.SetFrames(nil)
	if len(c.Frames()) != 2 {
		t.Error("Expected dataset to be kept while focused")
	}
}
