package colony

import (
	"math"

	"github.com/vovakirdan/colony/internal/config"
	"github.com/vovakirdan/colony/internal/core"
)

// Camera maps between world units and screen units.
// Scroll is the world position of the viewport's top-left corner and is
// always clamped so the viewport stays inside the map.
type Camera struct {
	cfg config.CameraConfig

	unitsX, unitsY   float64 // world units per screen unit at zoom 1
	screenW, screenH float64
	worldW, worldH   float64

	scrollX, scrollY float64
	zoom             float64
	velX, velY       float64 // world units per millisecond
}

// NewCamera creates a camera at the map origin with zoom 1.
func NewCamera(cfg config.CameraConfig, layout Layout, worldW, worldH float64) *Camera {
	layout = layout.normalized()
	if cfg.MinZoom <= 0 {
		cfg.MinZoom = 1
	}
	if cfg.MaxZoom < cfg.MinZoom {
		cfg.MaxZoom = cfg.MinZoom
	}
	return &Camera{
		cfg:     cfg,
		unitsX:  layout.UnitsX,
		unitsY:  layout.UnitsY,
		worldW:  worldW,
		worldH:  worldH,
		zoom:    core.ClampF(1, cfg.MinZoom, cfg.MaxZoom),
		screenW: 1,
		screenH: 1,
	}
}

// SetScreen updates the viewport size in screen units.
func (c *Camera) SetScreen(w, h float64) {
	c.screenW = math.Max(w, 1)
	c.screenH = math.Max(h, 1)
	c.clamp()
}

// Zoom returns the current magnification.
func (c *Camera) Zoom() float64 { return c.zoom }

// Scroll returns the world position of the viewport's top-left corner.
func (c *Camera) Scroll() (x, y float64) { return c.scrollX, c.scrollY }

// Velocity returns the smoothed pan speed in world units per millisecond.
func (c *Camera) Velocity() (x, y float64) { return c.velX, c.velY }

// SetScroll moves the viewport, clamped to the map.
func (c *Camera) SetScroll(x, y float64) {
	c.scrollX, c.scrollY = x, y
	c.clamp()
}

// Viewport returns the visible world rectangle.
func (c *Camera) Viewport() core.FRect {
	return core.NewFRect(c.scrollX, c.scrollY,
		c.screenW*c.unitsX/c.zoom, c.screenH*c.unitsY/c.zoom)
}

// ScreenToWorld converts a screen position to world units.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return c.scrollX + sx*c.unitsX/c.zoom, c.scrollY + sy*c.unitsY/c.zoom
}

// WorldToScreen converts a world position to screen units.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return (wx - c.scrollX) * c.zoom / c.unitsX, (wy - c.scrollY) * c.zoom / c.unitsY
}

// WorldRectToScreen projects a world rectangle into screen units.
func (c *Camera) WorldRectToScreen(r core.FRect) core.FRect {
	x, y := c.WorldToScreen(r.X, r.Y)
	return core.NewFRect(x, y, r.W*c.zoom/c.unitsX, r.H*c.zoom/c.unitsY)
}

// View returns the projection for the current frame.
func (c *Camera) View() View {
	return View{
		ScrollX: c.scrollX,
		ScrollY: c.scrollY,
		UnitsX:  c.unitsX / c.zoom,
		UnitsY:  c.unitsY / c.zoom,
		ScreenW: c.screenW,
		ScreenH: c.screenH,
	}
}

// PanScreen scrolls the opposite way to a screen-space drag, so the world
// follows the pointer.
func (c *Camera) PanScreen(dx, dy float64) {
	c.scrollX -= dx * c.unitsX / c.zoom
	c.scrollY -= dy * c.unitsY / c.zoom
	c.clamp()
}

// ZoomBy changes magnification around the viewport centre.
func (c *Camera) ZoomBy(delta float64) {
	vp := c.Viewport()
	cx, cy := vp.X+vp.W/2, vp.Y+vp.H/2

	c.zoom = core.ClampF(c.zoom+delta, c.cfg.MinZoom, c.cfg.MaxZoom)

	vp = c.Viewport()
	c.scrollX = cx - vp.W/2
	c.scrollY = cy - vp.H/2
	c.clamp()
}

// Update advances smoothed key control by dtMillis.
// Drag decays the speed first, then held pan keys accelerate it up to the
// maximum speed. Scroll moves by whole world units.
func (c *Camera) Update(dtMillis float64, in core.InputFrame) {
	drag := c.cfg.Drag * dtMillis
	c.velX = decay(c.velX, drag)
	c.velY = decay(c.velY, drag)

	accel, maxSpeed := c.cfg.Acceleration, c.cfg.MaxSpeed
	if in.IsHeld(core.ActionPanLeft) {
		c.velX = math.Max(c.velX-accel, -maxSpeed)
	} else if in.IsHeld(core.ActionPanRight) {
		c.velX = math.Min(c.velX+accel, maxSpeed)
	}
	if in.IsHeld(core.ActionPanUp) {
		c.velY = math.Max(c.velY-accel, -maxSpeed)
	} else if in.IsHeld(core.ActionPanDown) {
		c.velY = math.Min(c.velY+accel, maxSpeed)
	}

	c.scrollX += math.Trunc(c.velX * dtMillis)
	c.scrollY += math.Trunc(c.velY * dtMillis)

	if in.IsHeld(core.ActionZoomIn) {
		c.ZoomBy(c.cfg.ZoomStep)
	} else if in.IsHeld(core.ActionZoomOut) {
		c.ZoomBy(-c.cfg.ZoomStep)
	}

	c.clamp()
}

// clamp keeps the viewport inside the map and stops motion into an edge.
func (c *Camera) clamp() {
	vp := c.Viewport()
	maxX := math.Max(0, c.worldW-vp.W)
	maxY := math.Max(0, c.worldH-vp.H)

	if x := core.ClampF(c.scrollX, 0, maxX); x != c.scrollX {
		c.scrollX = x
		c.velX = 0
	}
	if y := core.ClampF(c.scrollY, 0, maxY); y != c.scrollY {
		c.scrollY = y
		c.velY = 0
	}
}

func decay(v, amount float64) float64 {
	switch {
	case v > 0:
		return math.Max(v-amount, 0)
	case v < 0:
		return math.Min(v+amount, 0)
	}
	return 0
}
