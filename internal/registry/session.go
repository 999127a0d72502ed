package registry

import (
	"github.com/vovakirdan/colony/internal/colony"
	"github.com/vovakirdan/colony/internal/config"
)

// CustomPreset labels sessions on a configured map that names no preset.
const CustomPreset = "custom"

// NewSession creates a colony session for the preset id on top of base.
// An empty id plays the map from base unchanged.
func NewSession(base config.ColonyConfig, id string, layout colony.Layout) (*colony.Session, error) {
	cfg := base
	if id == "" {
		if cfg.Map.Preset == "" {
			cfg.Map.Preset = CustomPreset
		}
		return colony.NewSession(cfg, layout), nil
	}

	p, err := Get(id)
	if err != nil {
		return nil, err
	}
	p.Apply(&cfg)
	return colony.NewSession(cfg, layout), nil
}
