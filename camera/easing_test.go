package camera

import (
	"math"
	"testing"
)

func TestRateForFactorMatchesReferenceTick(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
	}{
		{"translation", 0.05},
		{"rotation", 0.1},
		{"half", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := RateForFactor(tt.factor, ReferenceFPS)
			got := DampFactor(rate, 1/ReferenceFPS)
			if math.Abs(got-tt.factor) > 1e-12 {
				t.Errorf("Expected factor %v, got %v", tt.factor, got)
			}
		})
	}
}

func TestDampIsFramerateIndependent(t *testing.T) {
	rate := RateForFactor(0.05, ReferenceFPS)

	run := func(fps int) float64 {
		v := 0.0
		for i := 0; i < fps; i++ {
			v = Damp(v, 100, rate, 1/float64(fps))
		}
		return v
	}

	at30, at60, at144 := run(30), run(60), run(144)
	if math.Abs(at30-at60) > 1e-9 || math.Abs(at60-at144) > 1e-9 {
		t.Errorf("Expected equal progress after one second, got %v / %v / %v", at30, at60, at144)
	}
}

func TestDampFactorEdges(t *testing.T) {
	if DampFactor(5, 0) != 0 {
		t.Error("Expected zero factor for zero dt")
	}
	if DampFactor(0, 1) != 0 {
		t.Error("Expected zero factor for zero rate")
	}
	if DampFactor(math.Inf(1), 0.01) != 1 {
		t.Error("Expected instant snap for infinite rate")
	}
	if !math.IsInf(RateForFactor(1, 60), 1) {
		t.Error("Expected infinite rate for factor 1")
	}
}
