// Package window runs a colony session in a desktop window with ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/colony/internal/core"
)

// binding maps a key to a session action. Continuous actions apply every
// frame the key is held; the rest trigger once per press.
type binding struct {
	key        ebiten.Key
	action     core.Action
	continuous bool
}

// bindings mirrors the terminal key map.
var bindings = []binding{
	{ebiten.KeyArrowUp, core.ActionPanUp, true},
	{ebiten.KeyW, core.ActionPanUp, true},
	{ebiten.KeyArrowDown, core.ActionPanDown, true},
	{ebiten.KeyS, core.ActionPanDown, true},
	{ebiten.KeyArrowLeft, core.ActionPanLeft, true},
	{ebiten.KeyA, core.ActionPanLeft, true},
	{ebiten.KeyArrowRight, core.ActionPanRight, true},
	{ebiten.KeyD, core.ActionPanRight, true},
	{ebiten.KeyQ, core.ActionZoomIn, true},
	{ebiten.KeyEqual, core.ActionZoomIn, true},
	{ebiten.KeyE, core.ActionZoomOut, true},
	{ebiten.KeyMinus, core.ActionZoomOut, true},
	{ebiten.KeyB, core.ActionBuild, false},
	{ebiten.KeyEscape, core.ActionCancel, false},
	{ebiten.KeySlash, core.ActionToggleHelp, false},
	{ebiten.KeyX, core.ActionQuit, false},
}

// keyState reports whether a key is held and whether it went down this frame.
type keyState func(k ebiten.Key) (held, justPressed bool)

// readKeys fills frame from the key state.
func readKeys(frame *core.InputFrame, state keyState) {
	for _, b := range bindings {
		held, pressed := state(b.key)
		switch {
		case b.continuous && held:
			frame.Hold(b.action)
		case !b.continuous && pressed:
			frame.Set(b.action)
		}
	}
}
