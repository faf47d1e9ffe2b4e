package input

import "log"

type Kind int

const (
	PointerMove Kind = iota
	Wheel
	KeyDown
	Click
)

type Key int

const (
	KeyOther Key = iota
	KeyEscape
)

// Event is a raw surface event. X and Y are surface pixels; DeltaY is the wheel
// delta with positive values scrolling down.
type Event struct {
	Kind   Kind
	X, Y   float64
	DeltaY float64
	Key    Key
}

// Surface delivers events and reports its size in pixels.
type Surface interface {
	Subscribe(fn func(Event)) (unsubscribe func())
	Size() (w, h float64)
}

// Sink defines the callbacks the adapter needs from the gallery.
type Sink interface {
	SetPointer(x, y float64)
	Scroll(deltaY float64) bool
	Activate(frameID string)
	Deactivate()
	FocusActive() bool
	Hover(frameID string, on bool)
}

// Picker finds the frame under a surface point.
type Picker interface {
	FrameAt(sx, sy float64) (string, bool)
}

// Adapter translates surface events into gallery intents.
type Adapter struct {
	sink   Sink
	picker Picker

	surface     Surface
	unsubscribe func()

	hovered string
}

func NewAdapter(sink Sink, picker Picker) *Adapter {
	return &Adapter{sink: sink, picker: picker}
}

// Attach subscribes to s, releasing any previous surface first.
func (a *Adapter) Attach(s Surface) {
	a.Detach()
	a.surface = s
	a.unsubscribe = s.Subscribe(a.Handle)
}

// Detach releases the current surface. Safe to call more than once.
func (a *Adapter) Detach() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.unsubscribe = nil
	a.surface = nil
	a.setHovered("")
}

// Hovered is the frame currently under the pointer, or "".
func (a *Adapter) Hovered() string { return a.hovered }

func (a *Adapter) Handle(e Event) {
	switch e.Kind {
	case PointerMove:
		a.handlePointer(e.X, e.Y)
	case Wheel:
		a.sink.Scroll(e.DeltaY)
	case KeyDown:
		if e.Key == KeyEscape && a.sink.FocusActive() {
			a.sink.Deactivate()
		}
	case Click:
		if id, ok := a.pick(e.X, e.Y); ok {
			a.sink.Activate(id)
		}
	default:
		log.Printf("[Input] unknown event kind %d", e.Kind)
	}
}

func (a *Adapter) handlePointer(x, y float64) {
	if a.surface == nil {
		return
	}
	w, h := a.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	nx, ny := Normalize(x, y, w, h)
	a.sink.SetPointer(nx, ny)

	id, _ := a.pick(x, y)
	a.setHovered(id)
}

func (a *Adapter) pick(x, y float64) (string, bool) {
	if a.picker == nil {
		return "", false
	}
	return a.picker.FrameAt(x, y)
}

func (a *Adapter) setHovered(id string) {
	if id == a.hovered {
		return
	}
	if a.hovered != "" {
		a.sink.Hover(a.hovered, false)
	}
	if id != "" {
		a.sink.Hover(id, true)
	}
	a.hovered = id
}

// Normalize maps surface pixels to [-1, 1] with y pointing up.
func Normalize(x, y, w, h float64) (nx, ny float64) {
	return x/w*2 - 1, -(y/h*2 - 1)
}
