package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ReferenceFPS is the tick rate the per-tick easing factors were tuned at.
const ReferenceFPS = 60.0

// RateForFactor converts a per-tick easing factor tuned at fps into a continuous decay
// rate (1/s), so that DampFactor(rate, 1/fps) == factor.
func RateForFactor(factor, fps float64) float64 {
	if factor <= 0 {
		return 0
	}
	if factor >= 1 {
		return math.Inf(1)
	}
	return -math.Log(1-factor) * fps
}

// DampFactor is the fraction of the remaining distance covered in dt seconds when
// decaying at rate per second: 1 - exp(-rate*dt).
func DampFactor(rate, dt float64) float64 {
	if dt <= 0 || rate <= 0 {
		return 0
	}
	if math.IsInf(rate, 1) {
		return 1
	}
	return 1 - math.Exp(-rate*dt)
}

// Damp moves current toward target by the time-based factor.
func Damp(current, target, rate, dt float64) float64 {
	return current + (target-current)*DampFactor(rate, dt)
}

// DampVec3 is Damp applied to every component.
func DampVec3(current, target mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	f := DampFactor(rate, dt)
	return current.Add(target.Sub(current).Mul(f))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
