package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
)

//go:embed corridor.star
var DefaultScript string

// maxSteps bounds a single place() call so a runaway script cannot hang loading.
const maxSteps = 1_000_000

var ErrNoPlaceFunc = errors.New("layout script does not define place(index, count)")

// Placement is where a frame hangs in the world.
type Placement struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // euler angles, radians
}

// Layout evaluates a Starlark script's place(index, count) function.
type Layout struct {
	name  string
	place starlark.Callable
}

// NewLayout executes script and looks up its place function.
func NewLayout(name, script string) (*Layout, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { log.Printf("[Layout] %s: %s", name, msg) }}
	predeclared := starlark.StringDict{"math": starlarkmath.Module}

	globals, err := starlark.ExecFile(thread, name, script, predeclared)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", name, err)
	}
	fn, ok := globals["place"].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("layout %s: %w", name, ErrNoPlaceFunc)
	}
	return &Layout{name: name, place: fn}, nil
}

// DefaultLayout is the embedded corridor layout.
func DefaultLayout() *Layout {
	l, err := NewLayout("corridor.star", DefaultScript)
	if err != nil {
		panic(err)
	}
	return l
}

// LoadLayout reads a script from path. An empty path, an unreadable file or a broken
// script fall back to the default layout; the returned error explains why.
func LoadLayout(path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultLayout(), fmt.Errorf("read layout: %w", err)
	}
	l, err := NewLayout(path, string(data))
	if err != nil {
		return DefaultLayout(), err
	}
	return l, nil
}

func (l *Layout) Name() string { return l.name }

// Place returns the placement of frame index out of count.
func (l *Layout) Place(index, count int) (Placement, error) {
	thread := &starlark.Thread{Name: l.name}
	thread.SetMaxExecutionSteps(maxSteps)

	v, err := starlark.Call(thread, l.place, starlark.Tuple{starlark.MakeInt(index), starlark.MakeInt(count)}, nil)
	if err != nil {
		return Placement{}, fmt.Errorf("place(%d, %d): %w", index, count, err)
	}
	seq, ok := v.(starlark.Indexable)
	if !ok || seq.Len() != 2 {
		return Placement{}, fmt.Errorf("place(%d, %d): expected ([x, y, z], [rx, ry, rz]), got %s", index, count, v)
	}
	pos, err := toVec3(seq.Index(0))
	if err != nil {
		return Placement{}, fmt.Errorf("place(%d, %d) position: %w", index, count, err)
	}
	rot, err := toVec3(seq.Index(1))
	if err != nil {
		return Placement{}, fmt.Errorf("place(%d, %d) rotation: %w", index, count, err)
	}
	return Placement{Position: pos, Rotation: rot}, nil
}

func toVec3(v starlark.Value) (mgl64.Vec3, error) {
	fs, err := toFloats(v)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	if len(fs) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("expected 3 numbers, got %d", len(fs))
	}
	return mgl64.Vec3{fs[0], fs[1], fs[2]}, nil
}

// toFloats converts a list or tuple of numbers.
func toFloats(v starlark.Value) ([]float64, error) {
	seq, ok := v.(starlark.Indexable)
	if !ok {
		return nil, fmt.Errorf("expected a sequence, got %s", v.Type())
	}
	out := make([]float64, seq.Len())
	for i := range out {
		f, ok := starlark.AsFloat(seq.Index(i))
		if !ok {
			return nil, fmt.Errorf("element %d is %s, not a number", i, seq.Index(i).Type())
		}
		out[i] = f
	}
	return out, nil
}
