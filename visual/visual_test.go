package visual

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestOpacityRamp(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		expected float64
	}{
		{"near", 0, 1},
		{"just inside", 119.9, 1},
		{"show edge", 120, 1},
		{"quarter", 135, 0.75},
		{"half", 150, 0.5},
		{"fade edge", 180, 0},
		{"far", 5000, 0},
		{"negative", -150, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Opacity(tt.distance, 120, 180)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Opacity(%v) = %v, expected %v", tt.distance, got, tt.expected)
			}
		})
	}
}

func TestOpacityAlwaysClamped(t *testing.T) {
	for d := -2000.0; d <= 2000; d += 0.37 {
		o := Opacity(d, 120, 180)
		if o < 0 || o > 1 {
			t.Fatalf("Opacity(%v) = %v out of [0,1]", d, o)
		}
	}
	if got := Opacity(250, 200, 100); got != 0 {
		t.Errorf("Expected 0 beyond an inverted ramp, got %v", got)
	}
}

func TestFrameStateOpacityFollowsDepth(t *testing.T) {
	s := NewFrameState(500, DefaultFrameParams())
	s.Update(550, 1.0/60)
	if s.Opacity() != 1 {
		t.Errorf("Expected full opacity at distance 50, got %v", s.Opacity())
	}
	s.Update(650, 1.0/60)
	if math.Abs(s.Opacity()-0.5) > 1e-9 {
		t.Errorf("Expected half opacity at distance 150, got %v", s.Opacity())
	}
	s.Update(900, 1.0/60)
	if s.Opacity() != 0 {
		t.Errorf("Expected zero opacity at distance 400, got %v", s.Opacity())
	}
}

func TestHoverEasesInsteadOfSnapping(t *testing.T) {
	p := DefaultFrameParams()
	s := NewFrameState(0, p)
	s.SetHovered(true)

	s.Update(0, 1.0/60)
	first := s.Scale()
	if first[0] == p.HoverScale[0] || first[0] == p.Scale[0] {
		t.Errorf("Expected scale between rest and hover after one tick, got %v", first[0])
	}

	for i := 0; i < 600; i++ {
		s.Update(0, 1.0/60)
	}
	if math.Abs(s.Scale()[0]-p.HoverScale[0]) > 1e-6 || math.Abs(s.Scale()[1]-p.HoverScale[1]) > 1e-6 {
		t.Errorf("Expected hover scale %v, got %v", p.HoverScale, s.Scale())
	}
	if s.Color() != p.HoverColor {
		t.Errorf("Expected hover colour %v, got %v", p.HoverColor, s.Color())
	}

	s.SetHovered(false)
	for i := 0; i < 600; i++ {
		s.Update(0, 1.0/60)
	}
	if s.Color() != p.Color {
		t.Errorf("Expected rest colour %v, got %v", p.Color, s.Color())
	}
}

func TestHoverEasingIsFramerateIndependent(t *testing.T) {
	run := func(fps int) [2]float64 {
		s := NewFrameState(0, DefaultFrameParams())
		s.SetHovered(true)
		for i := 0; i < fps/4; i++ {
			s.Update(0, 1/float64(fps))
		}
		return s.Scale()
	}
	a, b := run(40), run(240)
	if math.Abs(a[0]-b[0]) > 1e-9 || math.Abs(a[1]-b[1]) > 1e-9 {
		t.Errorf("Expected equal scale after 0.25s, got %v and %v", a, b)
	}
}

func TestCloudOpacityUsesFullDistance(t *testing.T) {
	a := NewAmbient(DefaultAmbientParams())
	a.Update(mgl64.Vec3{0, 300, -1000}, 0, 1.0/60)
	if got := a.Clouds[1].Opacity; got != 0.6 {
		t.Errorf("Expected capped opacity 0.6 at the cloud, got %v", got)
	}
	// 900 units away along x: halfway through the fade
	a.Update(mgl64.Vec3{900, 300, -1000}, 0, 1.0/60)
	if got := a.Clouds[1].Opacity; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 at distance 900, got %v", got)
	}
	a.Update(mgl64.Vec3{0, 7, 1150}, 0, 1.0/60)
	for i, c := range a.Clouds {
		if c.Opacity != 0 {
			t.Errorf("Expected cloud %d invisible from the corridor start, got %v", i, c.Opacity)
		}
	}
}

func TestOceanSpeedDependsOnDistance(t *testing.T) {
	a := NewAmbient(DefaultAmbientParams())
	a.Update(mgl64.Vec3{0, 7, 100}, 10, 1)
	if math.Abs(a.Ocean.Time-0.15) > 1e-9 {
		t.Errorf("Expected near speed 0.15, got %v", a.Ocean.Time)
	}
	want := mgl64.Vec2{math.Sin(0.3) * 0.05, math.Cos(0.3) * 0.05}
	if !a.Ocean.NormalOffset.ApproxEqual(want) {
		t.Errorf("Expected normal offset %v, got %v", want, a.Ocean.NormalOffset)
	}

	b := NewAmbient(DefaultAmbientParams())
	b.Update(mgl64.Vec3{0, 7, 1150}, 10, 1)
	if math.Abs(b.Ocean.Time-0.05) > 1e-9 {
		t.Errorf("Expected far speed 0.05, got %v", b.Ocean.Time)
	}
}

func TestStarsRotate(t *testing.T) {
	a := NewAmbient(DefaultAmbientParams())
	a.Update(mgl64.Vec3{}, 0, 2)
	if math.Abs(a.StarRotation-0.1) > 1e-9 {
		t.Errorf("Expected star rotation 0.1, got %v", a.StarRotation)
	}
}
