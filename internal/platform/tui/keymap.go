package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colony/internal/core"
)

// KeyMap defines the key bindings for a colony session.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Build      key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Menu       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.ZoomIn, k.ZoomOut, k.Build, k.Cancel, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ZoomIn, k.ZoomOut},
		{k.Build, k.Cancel},
		{k.Help, k.Screenshot, k.Menu, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("arrows/wasd", "pan"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "pan down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "pan right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("q", "+"),
			key.WithHelp("q", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("e", "-"),
			key.WithHelp("e", "zoom out"),
		),
		Build: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "build"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("x", "ctrl+c"),
			key.WithHelp("x", "quit"),
		),
	}
}

// Action translates a key message to a session action.
// Continuous reports whether the action is held (pan, zoom) rather than
// triggered once.
func (k KeyMap) Action(msg tea.KeyMsg) (action core.Action, continuous bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, false
	case key.Matches(msg, k.Up):
		return core.ActionPanUp, true
	case key.Matches(msg, k.Down):
		return core.ActionPanDown, true
	case key.Matches(msg, k.Left):
		return core.ActionPanLeft, true
	case key.Matches(msg, k.Right):
		return core.ActionPanRight, true
	case key.Matches(msg, k.ZoomIn):
		return core.ActionZoomIn, true
	case key.Matches(msg, k.ZoomOut):
		return core.ActionZoomOut, true
	case key.Matches(msg, k.Build):
		return core.ActionBuild, false
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel, false
	case key.Matches(msg, k.Help):
		return core.ActionToggleHelp, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "x":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "h":
		return MenuActionHistory
	}
	return MenuActionNone
}
