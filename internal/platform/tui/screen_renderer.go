package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/colony/internal/build"
	"github.com/vovakirdan/colony/internal/colony"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/terrain"
)

// Terrain and building glyphs.
var biomeGlyphs = map[terrain.Biome]core.Cell{
	terrain.Grass:    {Rune: '"', Color: core.ColorGreen},
	terrain.Badlands: {Rune: '%', Color: core.ColorBrown},
	terrain.Desert:   {Rune: '.', Color: core.ColorYellow},
}

const (
	houseGlyph  = '█'
	cornerGlyph = '+'
)

// ScreenRenderer draws a colony session into a character Screen.
// The last screen row is reserved for the status line.
type ScreenRenderer struct {
	screen *core.Screen
	view   colony.View
}

// NewScreenRenderer creates a renderer targeting screen.
func NewScreenRenderer(screen *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// BeginFrame clears the buffer for a new frame.
func (r *ScreenRenderer) BeginFrame(v colony.View) {
	r.view = v
	r.screen.Clear()
}

// DrawTerrainTile fills the tile's character span with its biome glyph.
func (r *ScreenRenderer) DrawTerrainTile(_ build.GridCoord, b terrain.Biome, dst core.FRect) {
	glyph, ok := biomeGlyphs[b]
	if !ok {
		glyph = core.Cell{Rune: '?', Color: core.ColorGray}
	}
	r.screen.FillRect(span(dst), glyph.Rune, glyph.Color)
}

// DrawBuildingSprite fills the cell with a house block.
func (r *ScreenRenderer) DrawBuildingSprite(_ build.GridCoord, dst core.FRect) {
	rect := span(dst)
	if rect.W == 0 || rect.H == 0 {
		// Zoomed far out: keep the house visible as a single character.
		rect = core.NewRect(int(math.Floor(dst.X)), int(math.Floor(dst.Y)), 1, 1)
	}
	r.screen.FillRect(rect, houseGlyph, core.ColorBrightWhite)
}

// DrawGridOverlay marks cell corners across the viewport.
func (r *ScreenRenderer) DrawGridOverlay(cellSize int, viewport core.FRect) {
	size := float64(cellSize)
	if size <= 0 || size/r.view.UnitsX < 2 {
		return // corners would cover every character
	}

	x0 := math.Floor(viewport.X/size) * size
	y0 := math.Floor(viewport.Y/size) * size
	for wy := y0; wy <= viewport.Bottom(); wy += size {
		for wx := x0; wx <= viewport.Right(); wx += size {
			sx, sy := r.view.ToScreen(wx, wy)
			r.screen.SetCell(int(math.Round(sx)), int(math.Round(sy)),
				core.Cell{Rune: cornerGlyph, Color: core.ColorCyan})
		}
	}
}

// DrawBuildButtonUI draws the build button box.
func (r *ScreenRenderer) DrawBuildButtonUI(toggled bool, bounds core.FRect) {
	rect := bounds.Rect()
	color := core.ColorWhite
	label := "Build"
	if toggled {
		color = core.ColorBrightYellow
		label = "Cancel"
	}

	r.screen.FillRect(rect, ' ', core.ColorDefault)
	r.screen.DrawBox(rect, color)

	x := rect.X + (rect.W-len(label))/2
	y := rect.Y + rect.H/2
	r.screen.DrawText(x, y, label, color)
}

// DrawStatus writes the status line on the bottom row.
func (r *ScreenRenderer) DrawStatus(st colony.Status) {
	y := r.screen.Height() - 1
	if y < 0 {
		return
	}
	r.screen.FillRect(core.NewRect(0, y, r.screen.Width(), 1), ' ', core.ColorDefault)

	modeColor := core.ColorGray
	if st.Mode == build.ModePlacing {
		modeColor = core.ColorBrightYellow
	}
	mode := fmt.Sprintf("[%s]", st.Mode)
	r.screen.DrawText(0, y, mode, modeColor)

	line := fmt.Sprintf(" %s %dx%d | houses %d | zoom %.2f", st.Preset, st.Cols, st.Rows, st.Buildings, st.Zoom)
	if st.HoverValid {
		line += fmt.Sprintf(" | %s %s", st.Hover, st.HoverBiome)
	}
	if st.Message != "" {
		line += " | " + st.Message
	}
	r.screen.DrawText(len([]rune(mode)), y, line, core.ColorWhite)
}

// span converts a screen-space rectangle to the character cells it covers.
// Edges are rounded so adjacent tiles partition the screen without overlap.
func span(r core.FRect) core.Rect {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.Right()))
	y1 := int(math.Round(r.Bottom()))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
