package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"corridor-gallery/camera"
	"corridor-gallery/gallery"
	"corridor-gallery/visual"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Dataset struct {
	Mapping     string `yaml:"mapping"`
	AssetRoot   string `yaml:"asset_root"`
	Layout      string `yaml:"layout"` // Starlark script; empty uses the built-in corridor
	Concurrency int    `yaml:"concurrency"`
	Font        string `yaml:"font"`
}

type Camera struct {
	EyeHeight         float64    `yaml:"eye_height"`
	IntroStartDepth   float64    `yaml:"intro_start_depth"`
	IntroEndDepth     float64    `yaml:"intro_end_depth"`
	IntroDuration     float64    `yaml:"intro_duration"`
	MinDepth          float64    `yaml:"min_depth"`
	MaxDepth          float64    `yaml:"max_depth"`
	ScrollStep        float64    `yaml:"scroll_step"`
	DepthDeadZone     float64    `yaml:"depth_dead_zone"`
	TranslationFactor float64    `yaml:"translation_factor"` // per tick at 60 fps
	RotationFactor    float64    `yaml:"rotation_factor"`
	RotationSpeed     float64    `yaml:"rotation_speed"`
	SnapDistance      float64    `yaml:"snap_distance"`
	FocusOffset       [3]float64 `yaml:"focus_offset"`
	FOV               float64    `yaml:"fov"` // degrees
}

type Frames struct {
	Width         float64 `yaml:"width"`
	MinAspect     float64 `yaml:"min_aspect"`
	MaxAspect     float64 `yaml:"max_aspect"`
	ShowThreshold float64 `yaml:"show_threshold"`
	FadeThreshold float64 `yaml:"fade_threshold"`
	HoverRate     float64 `yaml:"hover_rate"`
}

type Ambient struct {
	CloudShow       float64 `yaml:"cloud_show"`
	CloudFade       float64 `yaml:"cloud_fade"`
	CloudMaxOpacity float64 `yaml:"cloud_max_opacity"`
	OceanNearRange  float64 `yaml:"ocean_near_range"`
	OceanNearSpeed  float64 `yaml:"ocean_near_speed"`
	OceanFarSpeed   float64 `yaml:"ocean_far_speed"`
	StarSpin        float64 `yaml:"star_spin"`
}

type Config struct {
	Window  Window  `yaml:"window"`
	Dataset Dataset `yaml:"dataset"`
	Camera  Camera  `yaml:"camera"`
	Frames  Frames  `yaml:"frames"`
	Ambient Ambient `yaml:"ambient"`
}

func Default() Config {
	a := visual.DefaultAmbientParams()
	f := visual.DefaultFrameParams()
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "Corridor Gallery", TPS: 60},
		Dataset: Dataset{
			Mapping:     "public/downloaded_images/image_mapping.json",
			AssetRoot:   "public",
			Concurrency: 6,
			Font:        "fonts/Roboto-Regular.ttf",
		},
		Camera: Camera{
			EyeHeight:         7,
			IntroStartDepth:   1000,
			IntroEndDepth:     1150,
			IntroDuration:     8,
			MinDepth:          50,
			MaxDepth:          1150,
			ScrollStep:        10,
			DepthDeadZone:     0.1,
			TranslationFactor: 0.05,
			RotationFactor:    0.1,
			RotationSpeed:     0.05,
			SnapDistance:      0.5,
			FocusOffset:       [3]float64{5, 0, 20},
			FOV:               75,
		},
		Frames: Frames{
			Width:         15,
			MinAspect:     0.5,
			MaxAspect:     2.6,
			ShowThreshold: f.ShowThreshold,
			FadeThreshold: f.FadeThreshold,
			HoverRate:     f.HoverRate,
		},
		Ambient: Ambient{
			CloudShow:       a.CloudShow,
			CloudFade:       a.CloudFade,
			CloudMaxOpacity: a.CloudMaxOpacity,
			OceanNearRange:  a.OceanNearRange,
			OceanNearSpeed:  a.OceanNearSpeed,
			OceanFarSpeed:   a.OceanFarSpeed,
			StarSpin:        a.StarSpin,
		},
	}
}

// Load reads a YAML config from filename. Keys missing from the file keep their
// default values.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

func Save(filename string, cfg Config) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c Config) Validate() error {
	cam := c.Camera
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.TPS <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case cam.MinDepth > cam.MaxDepth:
		return fmt.Errorf("%w: min_depth %v above max_depth %v", ErrInvalid, cam.MinDepth, cam.MaxDepth)
	case !validFactor(cam.TranslationFactor) || !validFactor(cam.RotationFactor):
		return fmt.Errorf("%w: easing factors must be in (0, 1)", ErrInvalid)
	case cam.IntroDuration < 0 || cam.SnapDistance <= 0 || cam.ScrollStep <= 0:
		return fmt.Errorf("%w: camera timings must be positive", ErrInvalid)
	case c.Frames.Width <= 0 || c.Frames.MinAspect <= 0 || c.Frames.MinAspect > c.Frames.MaxAspect:
		return fmt.Errorf("%w: frame geometry", ErrInvalid)
	case c.Frames.ShowThreshold >= c.Frames.FadeThreshold || c.Ambient.CloudShow >= c.Ambient.CloudFade:
		return fmt.Errorf("%w: fade thresholds must satisfy show < fade", ErrInvalid)
	}
	return nil
}

func validFactor(f float64) bool { return f > 0 && f < 1 }

// CameraParams converts per-tick factors into frame-rate independent rates.
func (c Config) CameraParams() camera.Params {
	cam := c.Camera
	return camera.Params{
		EyeHeight:       cam.EyeHeight,
		IntroStartDepth: cam.IntroStartDepth,
		IntroEndDepth:   cam.IntroEndDepth,
		IntroDuration:   cam.IntroDuration,
		MinDepth:        cam.MinDepth,
		MaxDepth:        cam.MaxDepth,
		ScrollStep:      cam.ScrollStep,
		DepthDeadZone:   cam.DepthDeadZone,
		TranslationRate: camera.RateForFactor(cam.TranslationFactor, camera.ReferenceFPS),
		RotationRate:    camera.RateForFactor(cam.RotationFactor, camera.ReferenceFPS),
		RotationSpeed:   cam.RotationSpeed,
		SnapDistance:    cam.SnapDistance,
		FocusOffset:     mgl64.Vec3(cam.FocusOffset),
	}
}

func (c Config) FrameParams() visual.FrameParams {
	p := visual.DefaultFrameParams()
	p.ShowThreshold = c.Frames.ShowThreshold
	p.FadeThreshold = c.Frames.FadeThreshold
	p.HoverRate = c.Frames.HoverRate
	return p
}

func (c Config) AspectBounds() gallery.AspectBounds {
	return gallery.AspectBounds{Min: c.Frames.MinAspect, Max: c.Frames.MaxAspect, Default: gallery.GoldenRatio}
}

func (c Config) AmbientParams() visual.AmbientParams {
	p := visual.DefaultAmbientParams()
	a := c.Ambient
	p.CloudShow, p.CloudFade, p.CloudMaxOpacity = a.CloudShow, a.CloudFade, a.CloudMaxOpacity
	p.OceanNearRange, p.OceanNearSpeed, p.OceanFarSpeed = a.OceanNearRange, a.OceanNearSpeed, a.OceanFarSpeed
	p.StarSpin = a.StarSpin
	return p
}
