// Package colony implements the colony session: it owns the terrain map,
// the build grid and the camera, translates engine callbacks into build
// operations and drives a Renderer each frame.
//
// The package has no UI dependencies. Front-ends feed it screen-space
// input and implement Renderer.
package colony

import "github.com/vovakirdan/colony/internal/core"

// Layout describes the screen-space geometry of a front-end.
type Layout struct {
	// Button is the build button in screen units. It is not scrolled
	// or zoomed by the camera.
	Button core.FRect

	// UnitsX and UnitsY are world units per screen unit at zoom 1.
	UnitsX, UnitsY float64
}

// TerminalLayout is the layout for character-cell front-ends.
// A terminal cell is about twice as tall as wide, so one cell covers
// 16x32 world units and a 64-unit grid cell spans 4x2 characters.
func TerminalLayout() Layout {
	return Layout{
		Button: core.NewFRect(0, 0, 10, 3),
		UnitsX: 16,
		UnitsY: 32,
	}
}

// WindowLayout is the layout for pixel front-ends, one pixel per world unit.
func WindowLayout() Layout {
	return Layout{
		Button: core.NewFRect(20, 20, 150, 60),
		UnitsX: 1,
		UnitsY: 1,
	}
}

func (l Layout) normalized() Layout {
	if l.UnitsX <= 0 {
		l.UnitsX = 1
	}
	if l.UnitsY <= 0 {
		l.UnitsY = 1
	}
	return l
}
