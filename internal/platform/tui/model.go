package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colony/internal/colony"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/storage"
)

// holdWindow is how long a pan or zoom key counts as held after its last
// press. Terminals report key repeats, not releases.
const holdWindow = 150 * time.Millisecond

// wheelSteps is the zoom applied per mouse wheel notch.
const wheelSteps = 5

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a colony session.
type Model struct {
	session    *colony.Session
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	held       map[core.Action]time.Time
	now        time.Time
	quitting   bool
	backToMenu bool
	recorded   bool
}

// NewModel creates a model for the session and resets it to the terminal
// size in cfg. store and logger may be nil.
func NewModel(session *colony.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	mapW, mapH := mapSize(cfg.ScreenW, cfg.ScreenH)
	rt := cfg
	rt.ScreenW, rt.ScreenH = mapW, mapH

	session.SetLogger(logger)
	if err := session.Reset(rt); err != nil {
		return Model{}, err
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:    session,
		screen:     screen,
		renderer:   NewScreenRenderer(screen),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]time.Time),
	}, nil
}

// mapSize returns the map viewport for a terminal: the bottom two rows
// hold the status line and the help bar.
func mapSize(w, h int) (int, int) {
	return max(w, 1), max(h-2, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m.finish()
		m.backToMenu = true
		return m, tea.Quit
	}

	action, continuous := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
	case continuous:
		m.held[action] = m.now
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse forwards presses, drags and releases on the map area to the
// session as pointer events at the centre of the character cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	_, mapH := mapSize(m.config.ScreenW, m.config.ScreenH)
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.session.OnZoom(wheelSteps)
	case msg.Button == tea.MouseButtonWheelDown:
		m.session.OnZoom(-wheelSteps)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y < mapH {
			m.inputFrame.AddPointer(core.PointerDown, x, y)
		}
	case msg.Action == tea.MouseActionMotion:
		m.inputFrame.AddPointer(core.PointerMove, x, y)
	case msg.Action == tea.MouseActionRelease:
		m.inputFrame.AddPointer(core.PointerUp, x, y)
	}

	return m, nil
}

// handleResize keeps the session running at the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.session.Resize(mapSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one session frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.now.IsZero() {
		// First tick: keys pressed before it count from now.
		for a := range m.held {
			m.held[a] = now
		}
	}
	m.now = now

	for action, last := range m.held {
		if now.Sub(last) <= holdWindow {
			m.inputFrame.Hold(action)
		} else {
			delete(m.held, action)
		}
	}

	result := m.session.Step(m.inputFrame)
	for _, e := range result.Events {
		m.logger.Debug("session event", "event", e.String())
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finish records the session once.
func (m *Model) finish() {
	if m.recorded {
		return
	}
	m.recorded = true

	stats := m.session.Stats()
	m.logger.Info("session finished",
		"preset", m.session.Preset(),
		"seed", m.session.Seed(),
		"placed", stats.Placed,
		"rejected", stats.Rejected,
		"out_of_bounds", stats.OutOfBounds,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.Record(m.session); err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.renderer)

	dir := filepath.Join(os.Getenv("HOME"), ".colony", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Preset(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.session.Render(m.renderer)
	out := RenderScreen(m.screen)
	if m.session.ShowHelp() {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Session returns the running session.
func (m Model) Session() *colony.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for the session.
// Returns true if user wants to go back to menu, false if quitting.
func Run(session *colony.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (goBack bool, err error) {
	model, err := NewModel(session, store, cfg, logger)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
