package config

import (
	_ "embed"
)

//go:embed defaults/colony.yaml
var defaultColonyYAML []byte

// DefaultColonyConfig returns the hardcoded colony configuration.
func DefaultColonyConfig() ColonyConfig {
	return ColonyConfig{
		Map: MapConfig{
			Preset:   "classic",
			CellSize: 64,
			Width:    4500,
			Height:   9020,
		},
		Terrain: TerrainConfig{
			Seed:      0,
			Frequency: 0.001,
		},
		Camera: CameraConfig{
			Acceleration: 0.06,
			Drag:         0.0005,
			MaxSpeed:     1.0,
			ZoomStep:     0.02,
			MinZoom:      0.25,
			MaxZoom:      4.0,
		},
		UI: UIConfig{
			ShowHelp: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultColonyYAML
}
