package visual

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cloud is a fog billboard that fades with full 3D distance to the camera.
type Cloud struct {
	Position mgl64.Vec3
	Scale    float64
	Opacity  float64
}

// Ocean is the animated water plane.
type Ocean struct {
	Position     mgl64.Vec3
	Size         mgl64.Vec2
	Time         float64
	NormalOffset mgl64.Vec2
}

// AmbientParams tunes the environment props.
type AmbientParams struct {
	CloudShow       float64
	CloudFade       float64
	CloudMaxOpacity float64
	OceanNearRange  float64
	OceanNearSpeed  float64
	OceanFarSpeed   float64
	OceanDrift      float64
	OceanDriftFreq  float64
	StarSpin        float64 // rad/s about Y
}

func DefaultAmbientParams() AmbientParams {
	return AmbientParams{
		CloudShow:       800,
		CloudFade:       1000,
		CloudMaxOpacity: 0.6,
		OceanNearRange:  500,
		OceanNearSpeed:  0.15,
		OceanFarSpeed:   0.05,
		OceanDrift:      0.05,
		OceanDriftFreq:  0.03,
		StarSpin:        0.05,
	}
}

// Ambient holds the sky, fog and ocean state.
type Ambient struct {
	params       AmbientParams
	Clouds       []Cloud
	Ocean        Ocean
	StarRotation float64
}

func NewAmbient(p AmbientParams) *Ambient {
	return &Ambient{
		params: p,
		Clouds: []Cloud{
			{Position: mgl64.Vec3{500, 300, -1200}, Scale: 70},
			{Position: mgl64.Vec3{0, 300, -1000}, Scale: 70},
			{Position: mgl64.Vec3{-500, 300, -600}, Scale: 70},
		},
		Ocean: Ocean{
			Position: mgl64.Vec3{0, -2, 0},
			Size:     mgl64.Vec2{2000, 3000},
		},
	}
}

// Update advances the props for one tick.
func (a *Ambient) Update(cam mgl64.Vec3, elapsed, dt float64) {
	if dt < 0 {
		dt = 0
	}
	p := a.params

	for i := range a.Clouds {
		d := cam.Sub(a.Clouds[i].Position).Len()
		a.Clouds[i].Opacity = math.Min(p.CloudMaxOpacity, Opacity(d, p.CloudShow, p.CloudFade))
	}

	// the far water only ticks slowly; the surface drift is visible up close only
	if cam.Sub(a.Ocean.Position).Len() < p.OceanNearRange {
		a.Ocean.Time += dt * p.OceanNearSpeed
		a.Ocean.NormalOffset = mgl64.Vec2{
			math.Sin(elapsed*p.OceanDriftFreq) * p.OceanDrift,
			math.Cos(elapsed*p.OceanDriftFreq) * p.OceanDrift,
		}
	} else {
		a.Ocean.Time += dt * p.OceanFarSpeed
	}

	a.StarRotation = math.Mod(a.StarRotation+dt*p.StarSpin, 2*math.Pi)
}
