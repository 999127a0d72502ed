package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/colony/internal/build"
	"github.com/vovakirdan/colony/internal/colony"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/terrain"
)

var (
	backgroundColor = color.RGBA{20, 20, 24, 255}
	houseColor      = color.RGBA{200, 60, 50, 255}
	roofColor       = color.RGBA{120, 30, 25, 255}
	gridColor       = color.RGBA{255, 255, 255, 60}
	buttonColor     = color.RGBA{60, 60, 70, 230}
	buttonOnColor   = color.RGBA{180, 140, 40, 230}
	statusColor     = color.RGBA{0, 0, 0, 160}
)

// biomeColors is the fill for each terrain tile.
var biomeColors = map[terrain.Biome]color.RGBA{
	terrain.Grass:    {86, 160, 70, 255},
	terrain.Badlands: {120, 84, 52, 255},
	terrain.Desert:   {222, 196, 120, 255},
}

// BiomeColor returns the tile fill for b.
func BiomeColor(b terrain.Biome) color.RGBA {
	if c, ok := biomeColors[b]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255}
}

// statusHeight is the pixel height of the HUD strip at the bottom.
const statusHeight = 18

// ImageRenderer draws a colony session onto an ebiten image.
type ImageRenderer struct {
	target *ebiten.Image
	view   colony.View
	face   font.Face
}

// NewImageRenderer creates a renderer using the basic 7x13 font.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{face: basicfont.Face7x13}
}

// SetTarget sets the image drawn to by the next frame.
func (r *ImageRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// BeginFrame clears the target.
func (r *ImageRenderer) BeginFrame(v colony.View) {
	r.view = v
	r.target.Fill(backgroundColor)
}

// DrawTerrainTile fills the tile with its biome color.
func (r *ImageRenderer) DrawTerrainTile(_ build.GridCoord, b terrain.Biome, dst core.FRect) {
	// Overdraw by a pixel so fractional zoom leaves no seams.
	vector.DrawFilledRect(r.target, float32(dst.X), float32(dst.Y),
		float32(dst.W)+1, float32(dst.H)+1, BiomeColor(b), false)
}

// DrawBuildingSprite draws a house: a body with a darker roof band.
func (r *ImageRenderer) DrawBuildingSprite(_ build.GridCoord, dst core.FRect) {
	inset := dst.W * 0.15
	x := float32(dst.X + inset)
	y := float32(dst.Y + inset)
	w := float32(dst.W - 2*inset)
	h := float32(dst.H - 2*inset)
	if w < 1 || h < 1 {
		x, y, w, h = float32(dst.X), float32(dst.Y), 1, 1
	}
	vector.DrawFilledRect(r.target, x, y, w, h, houseColor, false)
	vector.DrawFilledRect(r.target, x, y, w, h/3, roofColor, false)
}

// DrawGridOverlay draws cell boundaries across the viewport.
func (r *ImageRenderer) DrawGridOverlay(cellSize int, viewport core.FRect) {
	size := float64(cellSize)
	if size <= 0 || size/r.view.UnitsX < 4 {
		return
	}

	x0 := math.Floor(viewport.X/size) * size
	y0 := math.Floor(viewport.Y/size) * size
	top, bottom := float32(0), float32(r.view.ScreenH)
	left, right := float32(0), float32(r.view.ScreenW)

	for wx := x0; wx <= viewport.Right(); wx += size {
		sx, _ := r.view.ToScreen(wx, 0)
		vector.StrokeLine(r.target, float32(sx), top, float32(sx), bottom, 1, gridColor, false)
	}
	for wy := y0; wy <= viewport.Bottom(); wy += size {
		_, sy := r.view.ToScreen(0, wy)
		vector.StrokeLine(r.target, left, float32(sy), right, float32(sy), 1, gridColor, false)
	}
}

// DrawBuildButtonUI draws the build button with a centred label.
func (r *ImageRenderer) DrawBuildButtonUI(toggled bool, bounds core.FRect) {
	fill, label := buttonColor, "Build"
	if toggled {
		fill, label = buttonOnColor, "Cancel"
	}

	x, y := float32(bounds.X), float32(bounds.Y)
	w, h := float32(bounds.W), float32(bounds.H)
	vector.DrawFilledRect(r.target, x, y, w, h, fill, false)
	vector.StrokeRect(r.target, x, y, w, h, 2, color.White, false)

	tb := text.BoundString(r.face, label)
	tx := int(bounds.X+bounds.W/2) - tb.Dx()/2
	ty := int(bounds.Y+bounds.H/2) + tb.Dy()/2
	text.Draw(r.target, label, r.face, tx, ty, color.White)
}

// DrawStatus draws the HUD strip and, when enabled, the key help.
func (r *ImageRenderer) DrawStatus(st colony.Status) {
	w, h := r.target.Bounds().Dx(), r.target.Bounds().Dy()
	vector.DrawFilledRect(r.target, 0, float32(h-statusHeight), float32(w), statusHeight, statusColor, false)
	ebitenutil.DebugPrintAt(r.target, StatusLine(st), 4, h-statusHeight+1)

	if st.ShowHelp {
		ebitenutil.DebugPrintAt(r.target, helpText, w-helpWidth, 20)
	}
}

const (
	helpText  = "WASD/arrows  pan\nQ/E, wheel   zoom\nB            build\nEsc          cancel\n/            help\nX            quit"
	helpWidth = 130
)

// StatusLine formats the HUD text.
func StatusLine(st colony.Status) string {
	line := fmt.Sprintf("[%s] %s %dx%d  houses %d  zoom %.2f", st.Mode, st.Preset, st.Cols, st.Rows, st.Buildings, st.Zoom)
	if st.HoverValid {
		line += fmt.Sprintf("  %s %s", st.Hover, st.HoverBiome)
	}
	if st.Message != "" {
		line += "  " + st.Message
	}
	return line
}
