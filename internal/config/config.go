package config

import (
	"fmt"
	"os"
	"path/filepath"

	"cubefall/internal/logger"
	"cubefall/internal/scene"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/cubefall.yaml"

// Window holds the host window settings.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// Tuning holds scene parameters. Zero values fall back to the scene defaults.
type Tuning struct {
	Gravity          float32 `yaml:"gravity"`
	Restitution      float32 `yaml:"restitution"`
	RestSpeed        float32 `yaml:"rest_speed"`
	RetireDistance   float32 `yaml:"retire_distance"`
	SpawnIntervalMin float32 `yaml:"spawn_interval_min"`
	SpawnIntervalMax float32 `yaml:"spawn_interval_max"`
	Sensitivity      float32 `yaml:"sensitivity"`
	SmoothingRate    float32 `yaml:"smoothing_rate"`
}

// Prefs holds everything the binary reads at startup.
type Prefs struct {
	Window       Window `yaml:"window"`
	DebugOverlay bool   `yaml:"debug_overlay"`
	Seed         uint64 `yaml:"seed"`
	LogPath      string `yaml:"log_path"`
	Scene        Tuning `yaml:"scene"`
}

// Default returns default preferences (1280x720 window at 60 FPS, overlay off, time-based seed).
func Default() Prefs {
	p := scene.DefaultParams()
	return Prefs{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Markofwitch",
			TargetFPS: 60,
		},
		LogPath: logger.DefaultPath,
		Scene: Tuning{
			Gravity:          p.Gravity,
			Restitution:      p.Restitution,
			RestSpeed:        p.RestSpeed,
			RetireDistance:   p.RetireDistance,
			SpawnIntervalMin: p.SpawnIntervalMin,
			SpawnIntervalMax: p.SpawnIntervalMax,
			Sensitivity:      p.Sensitivity,
			SmoothingRate:    p.SmoothingRate,
		},
	}
}

// Load reads preferences from path. Keys missing from the file keep their default value.
// A missing file returns Default() and no error. An unreadable or invalid file returns Default()
// together with the error so the caller can report it and carry on.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the parent directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the preferences into scene parameters. Non-positive tuning values (and an
// inverted spawn interval) fall back to the defaults; restitution may be any value.
func (p Prefs) Params() scene.Params {
	d := scene.DefaultParams()
	t := p.Scene
	out := d
	out.Seed = p.Seed
	out.Restitution = t.Restitution
	if t.Gravity > 0 {
		out.Gravity = t.Gravity
	}
	if t.RestSpeed > 0 {
		out.RestSpeed = t.RestSpeed
	}
	if t.RetireDistance > 0 {
		out.RetireDistance = t.RetireDistance
	}
	if t.SpawnIntervalMin >= 0 && t.SpawnIntervalMax >= t.SpawnIntervalMin && t.SpawnIntervalMax > 0 {
		out.SpawnIntervalMin = t.SpawnIntervalMin
		out.SpawnIntervalMax = t.SpawnIntervalMax
	}
	if t.Sensitivity > 0 {
		out.Sensitivity = t.Sensitivity
	}
	if t.SmoothingRate > 0 {
		out.SmoothingRate = t.SmoothingRate
	}
	return out
}
