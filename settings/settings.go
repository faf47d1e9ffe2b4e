package settings

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Viewer holds per-user preferences. Camera position is never persisted: every
// session starts with the intro.
type Viewer struct {
	Fullscreen      bool    `yaml:"fullscreen"`
	ShowHUD         bool    `yaml:"showHUD"`
	LookSensitivity float64 `yaml:"lookSensitivity"` // multiplier on pointer look
}

func Defaults() *Viewer {
	return &Viewer{LookSensitivity: 1}
}

const (
	settingsObject   = "settings"
	settingsProperty = "viewer"

	minSensitivity = 0.25
	maxSensitivity = 2
)

// Manager loads and saves viewer preferences through gdata. A nil gdata manager
// keeps the preferences in memory only.
type Manager struct {
	store  *gdata.Manager
	viewer *Viewer
}

// Open creates the gdata store for appName. If the store cannot be opened the
// manager falls back to memory only.
func Open(appName string) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] storage unavailable, preferences will not persist: %v", err)
		store = nil
	}
	return NewManager(store)
}

func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, viewer: Defaults()}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return m
}

func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.viewer = Defaults()
		return nil
	}
	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.viewer = Defaults()
		return fmt.Errorf("load settings: %w", err)
	}
	v := Defaults()
	if err := yaml.Unmarshal(data, v); err != nil {
		m.viewer = Defaults()
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	v.LookSensitivity = clampSensitivity(v.LookSensitivity)
	m.viewer = v
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.viewer)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Persistent reports whether preferences survive a restart.
func (m *Manager) Persistent() bool { return m.store != nil }

func (m *Manager) Viewer() Viewer { return *m.viewer }

func (m *Manager) SetFullscreen(on bool) { m.viewer.Fullscreen = on }

func (m *Manager) SetShowHUD(on bool) { m.viewer.ShowHUD = on }

// SetLookSensitivity is clamped to [0.25, 2].
func (m *Manager) SetLookSensitivity(s float64) { m.viewer.LookSensitivity = clampSensitivity(s) }

func clampSensitivity(s float64) float64 {
	if math.IsNaN(s) || s <= 0 {
		return 1
	}
	if s < minSensitivity {
		return minSensitivity
	}
	if s > maxSensitivity {
		return maxSensitivity
	}
	return s
}
