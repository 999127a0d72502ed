package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colony/internal/config"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/registry"
	"github.com/vovakirdan/colony/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// MenuModel is the Bubble Tea model for the preset picker menu.
type MenuModel struct {
	items       []registry.Preset
	cursor      int
	width       int
	height      int
	store       *storage.Store
	config      core.RuntimeConfig
	quitting    bool
	selected    *registry.Preset // Set when user selects a preset
	openHistory bool             // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
	}
}

// WithConfiguredMap adds the map from the loaded config as the first entry,
// unless it is one of the registered presets unchanged. Selecting it
// yields an empty preset ID.
func (m MenuModel) WithConfiguredMap(mc config.MapConfig) MenuModel {
	for _, p := range m.items {
		if p.ID == mc.Preset && p.Width == mc.Width && p.Height == mc.Height && p.CellSize == mc.CellSize {
			return m
		}
	}

	title := "Configured map"
	if mc.Preset != "" {
		title = "Config: " + mc.Preset
	}
	entry := registry.Preset{
		Title:    title,
		Width:    mc.Width,
		Height:   mc.Height,
		CellSize: mc.CellSize,
	}
	m.items = append([]registry.Preset{entry}, m.items...)
	m.cursor = 0
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the session
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  C O L O N Y  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a map", m.width))
	b.WriteString("\n\n")

	for i, p := range m.items {
		line := fmt.Sprintf("  %-16s %4dx%-4d cells", p.Title, p.Cols(), p.Rows())
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected preset, or nil if none selected.
func (m MenuModel) Selected() *registry.Preset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the session history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PresetID     string
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result. configured is
// offered alongside the registered presets.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, configured config.MapConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg).WithConfiguredMap(configured)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.PresetID = m.Selected().ID
	}

	return result, nil
}
