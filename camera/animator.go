package camera

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Phase is the animator's state.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseIdle
	PhaseMovingToFocus
	PhaseFocused
	PhaseReturning
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseIdle:
		return "idle"
	case PhaseMovingToFocus:
		return "moving-to-focus"
	case PhaseFocused:
		return "focused"
	case PhaseReturning:
		return "returning"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// FocusActive reports whether a focus request is alive in this phase.
func (p Phase) FocusActive() bool {
	return p == PhaseMovingToFocus || p == PhaseFocused || p == PhaseReturning
}

var (
	ErrNotIdle = errors.New("camera: focus requires the idle phase")
)

// Params holds the tuning constants of the animator.
type Params struct {
	EyeHeight       float64
	IntroStartDepth float64
	IntroEndDepth   float64
	IntroDuration   float64 // seconds, counted from SetReady
	MinDepth        float64
	MaxDepth        float64
	ScrollStep      float64
	DepthDeadZone   float64
	TranslationRate float64 // 1/s, position easing
	RotationRate    float64 // 1/s, look easing
	RotationSpeed   float64 // radians of look per unit of normalised pointer offset
	SnapDistance    float64
	FocusOffset     mgl64.Vec3
}

// DefaultParams returns the reference tuning. The easing rates reproduce per-tick
// factors of 0.05 (translation) and 0.1 (rotation) at 60 ticks per second.
func DefaultParams() Params {
	return Params{
		EyeHeight:       7,
		IntroStartDepth: 1000,
		IntroEndDepth:   1150,
		IntroDuration:   8,
		MinDepth:        50,
		MaxDepth:        1150,
		ScrollStep:      10,
		DepthDeadZone:   0.1,
		TranslationRate: RateForFactor(0.05, ReferenceFPS),
		RotationRate:    RateForFactor(0.1, ReferenceFPS),
		RotationSpeed:   0.05,
		SnapDistance:    0.5,
		FocusOffset:     mgl64.Vec3{5, 0, 20},
	}
}

// Animator owns the camera transform. Intents (SetReady, SetPointer, Scroll,
// RequestFocus, RequestReturn) only record what should happen; Tick is the only code
// path that moves the camera. Not safe for concurrent use: intents and Tick are expected
// on the render loop goroutine.
type Animator struct {
	params Params
	phase  Phase
	cam    State

	// intents
	ready       bool
	pointer     mgl64.Vec2
	targetDepth float64
	focus       *FocusRequest
	onReturn    func()

	introStart   float64
	introStarted bool
	snapshot     mgl64.Vec3
	focusTarget  mgl64.Vec3
}

// NewAnimator starts in the intro phase, parked at the intro start depth.
func NewAnimator(p Params) *Animator {
	start := mgl64.Vec3{0, p.EyeHeight, p.IntroStartDepth}
	return &Animator{
		params:      p,
		phase:       PhaseIntro,
		cam:         State{Position: start},
		targetDepth: clamp(p.IntroEndDepth, p.MinDepth, p.MaxDepth),
		snapshot:    start,
	}
}

func (a *Animator) Params() Params { return a.params }

func (a *Animator) Phase() Phase { return a.phase }

// Camera returns a copy of the current transform.
func (a *Animator) Camera() State { return a.cam }

// Snapshot is the position a return transition eases back to.
func (a *Animator) Snapshot() mgl64.Vec3 { return a.snapshot }

func (a *Animator) TargetDepth() float64 { return a.targetDepth }

// Focus returns the live focus request, if any.
func (a *Animator) Focus() (FocusRequest, bool) {
	if a.focus == nil {
		return FocusRequest{}, false
	}
	return *a.focus, true
}

// FocusTarget is where the camera settles for the current focus request.
func (a *Animator) FocusTarget() mgl64.Vec3 { return a.focusTarget }

// SetReady marks assets as loaded. The intro clock starts at the next tick.
func (a *Animator) SetReady() {
	a.ready = true
}

func (a *Animator) Ready() bool { return a.ready }

// SetPointer records the pointer position normalised to [-1, 1] on both axes,
// y pointing up.
func (a *Animator) SetPointer(x, y float64) {
	a.pointer = mgl64.Vec2{clamp(x, -1, 1), clamp(y, -1, 1)}
}

// Scroll moves the depth target one step against the sign of deltaY. Only the
// direction is used. It returns false when the event is ignored.
func (a *Animator) Scroll(deltaY float64) bool {
	if a.phase != PhaseIdle || deltaY == 0 || math.IsNaN(deltaY) {
		return false
	}
	dir := math.Copysign(1, deltaY)
	a.targetDepth = clamp(a.targetDepth-dir*a.params.ScrollStep, a.params.MinDepth, a.params.MaxDepth)
	return true
}

// RequestFocus freezes the current position as the rollback snapshot and starts the
// flight toward the frame.
func (a *Animator) RequestFocus(req FocusRequest) error {
	if a.phase != PhaseIdle {
		return fmt.Errorf("%w (phase %s)", ErrNotIdle, a.phase)
	}
	a.snapshot = a.cam.Position
	a.focus = &req
	a.focusTarget = req.Target(a.params.FocusOffset)
	a.phase = PhaseMovingToFocus
	log.Printf("[Animator] focus %s, snapshot %v -> target %v", req.FrameID, a.snapshot, a.focusTarget)
	return nil
}

// RequestReturn starts the trip back to the snapshot. onComplete runs once the camera
// has arrived. A return already in flight is not interrupted and the call reports false.
func (a *Animator) RequestReturn(onComplete func()) bool {
	if a.phase != PhaseMovingToFocus && a.phase != PhaseFocused {
		return false
	}
	a.phase = PhaseReturning
	a.onReturn = onComplete
	return true
}

// Tick advances the state machine. elapsed is the scene time in seconds and dt the
// seconds since the previous tick.
func (a *Animator) Tick(elapsed, dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	switch a.phase {
	case PhaseIntro:
		a.tickIntro(elapsed)
	case PhaseIdle:
		a.tickIdle(dt)
	case PhaseMovingToFocus:
		if a.approach(a.focusTarget, dt) {
			a.phase = PhaseFocused
		}
	case PhaseFocused:
		// static
	case PhaseReturning:
		if a.approach(a.snapshot, dt) {
			a.finishReturn()
		}
	}
}

func (a *Animator) tickIntro(elapsed float64) {
	p := a.params
	if !a.ready {
		a.cam.Position = mgl64.Vec3{0, p.EyeHeight, p.IntroStartDepth}
		return
	}
	if !a.introStarted {
		a.introStart = elapsed
		a.introStarted = true
	}

	t := 1.0
	if p.IntroDuration > 0 {
		t = (elapsed - a.introStart) / p.IntroDuration
	}
	if t >= 1 {
		a.cam = State{Position: mgl64.Vec3{0, p.EyeHeight, p.IntroEndDepth}}
		a.targetDepth = clamp(p.IntroEndDepth, p.MinDepth, p.MaxDepth)
		a.snapshot = a.cam.Position
		a.phase = PhaseIdle
		log.Printf("[Animator] intro complete at depth %.1f", p.IntroEndDepth)
		return
	}
	a.cam.Position = mgl64.Vec3{0, p.EyeHeight, Lerp(p.IntroStartDepth, p.IntroEndDepth, math.Max(0, t))}
	a.cam.Pitch = 0
}

func (a *Animator) tickIdle(dt float64) {
	p := a.params
	pos := a.cam.Position
	pos[1] = p.EyeHeight

	if math.Abs(a.targetDepth-pos.Z()) > p.DepthDeadZone {
		pos[2] = Damp(pos.Z(), a.targetDepth, p.TranslationRate, dt)
	}
	a.cam.Position = pos

	targetYaw := -a.pointer.X() * p.RotationSpeed
	targetPitch := a.pointer.Y() * p.RotationSpeed
	a.cam.Yaw = Damp(a.cam.Yaw, targetYaw, p.RotationRate, dt)
	a.cam.Pitch = Damp(a.cam.Pitch, targetPitch, p.RotationRate, dt)

	a.snapshot = a.cam.Position
}

// approach eases toward target and snaps once within SnapDistance.
func (a *Animator) approach(target mgl64.Vec3, dt float64) bool {
	a.cam.Position = DampVec3(a.cam.Position, target, a.params.TranslationRate, dt)
	if a.cam.Position.Sub(target).Len() < a.params.SnapDistance {
		a.cam.Position = target
		return true
	}
	return false
}

func (a *Animator) finishReturn() {
	a.cam.Position = a.snapshot
	a.targetDepth = clamp(a.snapshot.Z(), a.params.MinDepth, a.params.MaxDepth)
	a.focus = nil
	a.phase = PhaseIdle

	cb := a.onReturn
	a.onReturn = nil
	log.Printf("[Animator] returned to %v", a.snapshot)
	if cb != nil {
		safeCall(cb)
	}
}

// safeCall keeps a panicking callback from unwinding through the render loop.
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Animator] return callback panicked: %v", r)
		}
	}()
	fn()
}
