package ui

import (
	"reflect"
	"testing"

	"golang.org/x/image/font/basicfont"

	"corridor-gallery/camera"
	"corridor-gallery/gallery"
)

func settle(o *Overlay, ticks int) {
	for i := 0; i < ticks; i++ {
		o.Update()
	}
}

func TestOverlaySlidesInAndOut(t *testing.T) {
	o := NewOverlay(60, nil)
	if o.Visible() {
		t.Fatal("Expected hidden overlay")
	}

	o.FocusChanged(gallery.FocusChange{FrameID: "a", Title: "Item 1", Side: camera.Left, Visible: true})
	if !o.Visible() || o.Title() != "Item 1" || o.Side() != camera.Right {
		t.Fatalf("Expected overlay on the right with title, got %q on %s", o.Title(), o.Side())
	}
	settle(o, 120)
	if p := o.Progress(); p < 0.99 || p > 1.01 {
		t.Errorf("Expected overlay fully in, got %v", p)
	}

	o.FocusChanged(gallery.FocusChange{FrameID: "a", Title: "Item 1", Side: camera.Left, Visible: false})
	if !o.Visible() {
		t.Error("Expected overlay to stay while sliding out")
	}
	settle(o, 240)
	if o.Visible() || o.Progress() != 0 {
		t.Errorf("Expected overlay gone, got visible=%v progress=%v", o.Visible(), o.Progress())
	}
}

func TestOverlayRectFollowsSide(t *testing.T) {
	o := NewOverlay(60, nil)
	o.Show("x", camera.Right)
	x, _, w, _ := o.Rect(1000, 800)
	if x != 1000 {
		t.Errorf("Expected right panel to start off-screen at 1000, got %v", x)
	}
	settle(o, 240)
	x, y, w, h := o.Rect(1000, 800)
	if x+w+panelMargin < 999 || x+w+panelMargin > 1001 {
		t.Errorf("Expected right panel flush with the margin, got x=%v w=%v", x, w)
	}
	if y+h+panelMargin != 800 {
		t.Errorf("Expected panel at the bottom, got y=%v h=%v", y, h)
	}

	left := NewOverlay(60, nil)
	left.Show("y", camera.Left)
	if x, _, w, _ := left.Rect(1000, 800); x != -w {
		t.Errorf("Expected left panel to start at -%v, got %v", w, x)
	}
}

func TestOverlayCloseButton(t *testing.T) {
	closed := 0
	o := NewOverlay(60, func() { closed++ })
	o.Show("x", camera.Left)
	settle(o, 240)

	o.layout(800, 600)
	cx, cy := int(o.Close.X+o.Close.W/2), int(o.Close.Y+o.Close.H/2)
	if !o.HandleClick(cx, cy, 800, 600) {
		t.Error("Expected click on close to be consumed")
	}
	if closed != 1 {
		t.Errorf("Expected close callback once, got %d", closed)
	}

	x, y, _, _ := o.Rect(800, 600)
	if !o.HandleClick(int(x)+2, int(y)+60, 800, 600) || closed != 1 {
		t.Error("Expected panel body click to be consumed without closing")
	}
	if o.HandleClick(790, 5, 800, 600) {
		t.Error("Expected click outside the panel to pass through")
	}

	o.Hide()
	o.HandleClick(cx, cy, 800, 600)
	if closed != 1 {
		t.Error("Expected close to be inert while sliding out")
	}
}

func TestLoadingBarFraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 1},
		{1, 4, 0.25},
		{5, 4, 1},
	}
	for _, tt := range tests {
		l := LoadingBar{Done: tt.done, Total: tt.total}
		if got := l.Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d): expected %v, got %v", tt.done, tt.total, tt.want, got)
		}
	}
}

func TestButtonIsMouseOver(t *testing.T) {
	b := &Button{X: 10, Y: 10, W: 20, H: 20}
	if !b.IsMouseOver(10, 30) || b.IsMouseOver(31, 15) {
		t.Error("Unexpected hit test result")
	}
}

func TestTextHelpers(t *testing.T) {
	if got := splitLines("a\nbc\n"); !reflect.DeepEqual(got, []string{"a", "bc", ""}) {
		t.Errorf("Unexpected split: %q", got)
	}
	if w := TextWidth(basicfont.Face7x13, "ab\nabcd"); w != 28 {
		t.Errorf("Expected width 28, got %d", w)
	}
	if f := LoadUIFont("", 16); f != basicfont.Face7x13 {
		t.Error("Expected basic font fallback")
	}
}
