package gallery

import "math"

// GoldenRatio is the aspect ratio used when a picture could not be measured.
const GoldenRatio = 1.61803398875

// AspectBounds keeps extreme panoramas and strips from producing unusable frames.
type AspectBounds struct {
	Min, Max, Default float64
}

func DefaultAspectBounds() AspectBounds {
	return AspectBounds{Min: 0.5, Max: 2.6, Default: GoldenRatio}
}

// Clamp returns width/height bounded to [Min, Max], or Default when the size is
// degenerate.
func (b AspectBounds) Clamp(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return b.Default
	}
	r := float64(width) / float64(height)
	return math.Max(b.Min, math.Min(b.Max, r))
}

// Geometry is the world size of a frame.
type Geometry struct {
	Aspect float64
	Width  float64
	Height float64
}

// GeometryTable maps frame ids to their measured geometry. Frames that were never
// measured get the default aspect ratio.
type GeometryTable struct {
	width         float64
	defaultAspect float64
	aspects       map[string]float64
}

func NewGeometryTable(width, defaultAspect float64) *GeometryTable {
	if defaultAspect <= 0 {
		defaultAspect = GoldenRatio
	}
	return &GeometryTable{width: width, defaultAspect: defaultAspect, aspects: make(map[string]float64)}
}

func (t *GeometryTable) Set(id string, aspect float64) {
	if aspect > 0 {
		t.aspects[id] = aspect
	}
}

func (t *GeometryTable) Lookup(id string) Geometry {
	a, ok := t.aspects[id]
	if !ok {
		a = t.defaultAspect
	}
	return Geometry{Aspect: a, Width: t.width, Height: t.width / a}
}
