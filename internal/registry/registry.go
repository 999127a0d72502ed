// Package registry provides a global registry of named map presets.
// Presets register themselves in init() functions, allowing the CLI and
// front-ends to discover map layouts without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/colony/internal/build"
	"github.com/vovakirdan/colony/internal/config"
)

// Preset describes a map layout a session can be started with.
type Preset struct {
	// ID is a unique identifier (e.g., "classic", "wide").
	// Used for CLI arguments and session history.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Width and Height are the world size in world units.
	Width  int
	Height int

	// CellSize is the grid cell edge in world units.
	CellSize int

	// Frequency is the terrain noise sampling frequency.
	Frequency float64
}

// Cols returns the grid width in cells, counting a partial edge cell.
func (p Preset) Cols() int {
	return build.CellsFor(p.Width, p.CellSize)
}

// Rows returns the grid height in cells, counting a partial edge cell.
func (p Preset) Rows() int {
	return build.CellsFor(p.Height, p.CellSize)
}

// Apply overrides the map settings of cfg with this preset.
func (p Preset) Apply(cfg *config.ColonyConfig) {
	config.ApplyPreset(cfg, config.MapConfig{
		Preset:   p.ID,
		CellSize: p.CellSize,
		Width:    p.Width,
		Height:   p.Height,
	}, p.Frequency)
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered or if the
// preset describes an empty map.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	if p.Width <= 0 || p.Height <= 0 || p.CellSize <= 0 {
		panic(fmt.Sprintf("registry: preset %q has empty dimensions", p.ID))
	}

	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a preset by its ID.
// Returns an error if the preset ID is not registered.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}

	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
