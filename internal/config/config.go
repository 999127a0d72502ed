// Package config provides YAML-based configuration loading for colony
// sessions: map dimensions, terrain sampling, camera control and UI options.
package config

import (
	"errors"
	"fmt"
)

// ColonyConfig contains all configuration for a colony session.
type ColonyConfig struct {
	Map     MapConfig     `yaml:"map"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	UI      UIConfig      `yaml:"ui"`
}

// MapConfig defines the world size and grid resolution.
type MapConfig struct {
	Preset   string `yaml:"preset"`
	CellSize int    `yaml:"cell_size"` // world units per cell edge
	Width    int    `yaml:"width"`     // world units
	Height   int    `yaml:"height"`    // world units
}

// TerrainConfig defines how terrain noise is sampled.
type TerrainConfig struct {
	Seed      int64   `yaml:"seed"` // 0 = use the runtime seed
	Frequency float64 `yaml:"frequency"`
}

// CameraConfig defines smoothed key control and zoom limits.
type CameraConfig struct {
	Acceleration float64 `yaml:"acceleration"` // units/ms per frame
	Drag         float64 `yaml:"drag"`         // units/ms per ms
	MaxSpeed     float64 `yaml:"max_speed"`    // units/ms
	ZoomStep     float64 `yaml:"zoom_step"`
	MinZoom      float64 `yaml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom"`
}

// UIConfig defines front-end options.
type UIConfig struct {
	ShowHelp bool `yaml:"show_help"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks that the configuration describes a usable session.
func (c ColonyConfig) Validate() error {
	switch {
	case c.Map.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.Map.CellSize)
	case c.Map.Width <= 0 || c.Map.Height <= 0:
		return fmt.Errorf("%w: map must be positive, got %dx%d", ErrInvalid, c.Map.Width, c.Map.Height)
	case c.Terrain.Frequency < 0:
		return fmt.Errorf("%w: negative frequency %v", ErrInvalid, c.Terrain.Frequency)
	case c.Camera.MaxSpeed < 0 || c.Camera.Acceleration < 0 || c.Camera.Drag < 0:
		return fmt.Errorf("%w: camera speeds must not be negative", ErrInvalid)
	case c.Camera.MinZoom <= 0 || c.Camera.MinZoom > 1 || c.Camera.MaxZoom < 1:
		return fmt.Errorf("%w: zoom bounds [%v, %v] must contain 1", ErrInvalid, c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	return nil
}

// ApplyPreset overrides the map section with a preset's dimensions.
// A non-positive frequency keeps the configured one.
func ApplyPreset(cfg *ColonyConfig, m MapConfig, frequency float64) {
	cfg.Map = m
	if frequency > 0 {
		cfg.Terrain.Frequency = frequency
	}
}
