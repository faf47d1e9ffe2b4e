package input

import (
	"fmt"
	"reflect"
	"testing"
)

type fakeSink struct {
	calls  []string
	focus  bool
	px, py float64
}

func (s *fakeSink) SetPointer(x, y float64) { s.px, s.py = x, y }
func (s *fakeSink) Scroll(dy float64) bool {
	s.calls = append(s.calls, fmt.Sprintf("scroll %v", dy))
	return true
}
func (s *fakeSink) Activate(id string) { s.calls = append(s.calls, "activate "+id) }
func (s *fakeSink) Deactivate() { s.calls = append(s.calls, "deactivate") }
func (s *fakeSink) FocusActive() bool { return s.focus }
func (s *fakeSink) Hover(id string, on bool) {
	s.calls = append(s.calls, fmt.Sprintf("hover %s %v", id, on))
}

// stripPicker puts frame "a" on the left half of the surface and "b" on the right
// quarter.
type stripPicker struct{}

func (stripPicker) FrameAt(x, y float64) (string, bool) {
	switch {
	case x < 400:
		return "a", true
	case x >= 600:
		return "b", true
	}
	return "", false
}

func newTestAdapter() (*Adapter, *fakeSink, *Pump) {
	sink := &fakeSink{}
	a := NewAdapter(sink, stripPicker{})
	p := NewPump()
	p.SetSize(800, 600)
	a.Attach(p)
	return a, sink, p
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		x, y, nx, ny float64
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
		{600, 150, 0.5, 0.5},
	}
	for _, tt := range tests {
		nx, ny := Normalize(tt.x, tt.y, 800, 600)
		if nx != tt.nx || ny != tt.ny {
			t.Errorf("Normalize(%v, %v): expected (%v, %v), got (%v, %v)", tt.x, tt.y, tt.nx, tt.ny, nx, ny)
		}
	}
}

func TestPointerMoveAndHover(t *testing.T) {
	a, sink, p := newTestAdapter()

	p.Emit(Event{Kind: PointerMove, X: 600, Y: 150})
	if sink.px != 0.5 || sink.py != 0.5 {
		t.Errorf("Expected pointer (0.5, 0.5), got (%v, %v)", sink.px, sink.py)
	}
	p.Emit(Event{Kind: PointerMove, X: 100, Y: 100})
	p.Emit(Event{Kind: PointerMove, X: 120, Y: 100})
	p.Emit(Event{Kind: PointerMove, X: 500, Y: 100})

	want := []string{"hover b true", "hover b false", "hover a true", "hover a false"}
	if !reflect.DeepEqual(sink.calls, want) {
		t.Errorf("Expected %v, got %v", want, sink.calls)
	}
	if a.Hovered() != "" {
		t.Errorf("Expected nothing hovered, got %q", a.Hovered())
	}
}

func TestWheelClickEscape(t *testing.T) {
	_, sink, p := newTestAdapter()

	p.Emit(Event{Kind: Wheel, DeltaY: -3})
	p.Emit(Event{Kind: Click, X: 500, Y: 10}) // empty wall
	p.Emit(Event{Kind: Click, X: 10, Y: 10})
	p.Emit(Event{Kind: KeyDown, Key: KeyEscape}) // no focus yet
	sink.focus = true
	p.Emit(Event{Kind: KeyDown, Key: KeyOther})
	p.Emit(Event{Kind: KeyDown, Key: KeyEscape})

	want := []string{"scroll -3", "activate a", "deactivate"}
	if !reflect.DeepEqual(sink.calls, want) {
		t.Errorf("Expected %v, got %v", want, sink.calls)
	}
}

func TestDetachStopsDelivery(t *testing.T) {
	a, sink, p := newTestAdapter()
	p.Emit(Event{Kind: PointerMove, X: 10, Y: 10})

	a.Detach()
	a.Detach()
	if p.Subscribers() != 0 {
		t.Errorf("Expected no subscribers, got %d", p.Subscribers())
	}
	p.Emit(Event{Kind: Click, X: 10, Y: 10})

	want := []string{"hover a true", "hover a false"}
	if !reflect.DeepEqual(sink.calls, want) {
		t.Errorf("Expected %v, got %v", want, sink.calls)
	}
}

func TestAttachReplacesSurface(t *testing.T) {
	a, sink, first := newTestAdapter()
	second := NewPump()
	second.SetSize(100, 100)
	a.Attach(second)

	first.Emit(Event{Kind: Wheel, DeltaY: 1})
	second.Emit(Event{Kind: Wheel, DeltaY: 2})
	if !reflect.DeepEqual(sink.calls, []string{"scroll 2"}) {
		t.Errorf("Expected only the new surface to deliver, got %v", sink.calls)
	}
}

func TestZeroSizeSurfaceIgnoresPointer(t *testing.T) {
	_, sink, p := newTestAdapter()
	p.SetSize(0, 0)
	p.Emit(Event{Kind: PointerMove, X: 10, Y: 10})
	if len(sink.calls) != 0 || sink.px != 0 {
		t.Errorf("Expected pointer ignored, got %v", sink.calls)
	}
}
