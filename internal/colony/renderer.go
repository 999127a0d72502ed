package colony

import (
	"github.com/vovakirdan/colony/internal/build"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/terrain"
)

// Renderer is the drawing collaborator a front-end implements.
// Session.Render calls BeginFrame once, then tiles, buildings, the grid
// overlay (only while placing), the build button and the status line,
// in that order. Rectangles passed to Draw methods are in screen units.
type Renderer interface {
	BeginFrame(v View)
	DrawTerrainTile(c build.GridCoord, b terrain.Biome, dst core.FRect)
	DrawBuildingSprite(c build.GridCoord, dst core.FRect)
	// DrawGridOverlay draws cell boundaries over the world-space viewport.
	DrawGridOverlay(cellSize int, viewport core.FRect)
	DrawBuildButtonUI(toggled bool, bounds core.FRect)
	DrawStatus(st Status)
}

// View is the camera projection for one frame.
type View struct {
	ScrollX, ScrollY float64 // world position of the screen origin
	UnitsX, UnitsY   float64 // world units per screen unit, zoom applied
	ScreenW, ScreenH float64
}

// ToScreen converts a world position to screen units.
func (v View) ToScreen(wx, wy float64) (sx, sy float64) {
	return (wx - v.ScrollX) / v.UnitsX, (wy - v.ScrollY) / v.UnitsY
}

// Status is the HUD summary of a session.
type Status struct {
	Preset    string
	Seed      int64
	Mode      build.Mode
	Cols      int
	Rows      int
	Buildings int
	Zoom      float64
	ScrollX   float64
	ScrollY   float64

	// Hover is the cell under the last pointer position.
	Hover      build.GridCoord
	HoverBiome terrain.Biome
	HoverValid bool

	// Message describes the most recent placement attempt.
	Message  string
	ShowHelp bool
}
