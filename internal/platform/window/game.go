package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/colony/internal/colony"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/storage"
)

// Default window size in pixels.
const (
	DefaultWidth  = 1280
	DefaultHeight = 768
)

// wheelSteps is the zoom applied per wheel notch.
const wheelSteps = 5

// Game adapts a colony session to ebiten's game loop.
type Game struct {
	session  *colony.Session
	renderer *ImageRenderer
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig

	width, height int
	cursorX       int
	cursorY       int
	recorded      bool
}

// NewGame resets session to the window size in cfg and wraps it.
// store and logger may be nil.
func NewGame(session *colony.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = DefaultWidth, DefaultHeight
	}

	rt := cfg
	rt.ScreenH = mapHeight(cfg.ScreenH)
	session.SetLogger(logger)
	if err := session.Reset(rt); err != nil {
		return nil, err
	}

	return &Game{
		session:  session,
		renderer: NewImageRenderer(),
		store:    store,
		logger:   logger,
		config:   cfg,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		cursorX:  -1,
		cursorY:  -1,
	}, nil
}

// mapHeight is the window height left for the map above the HUD strip.
func mapHeight(h int) int {
	return max(h-statusHeight, 1)
}

// Update reads input and runs one session frame.
func (g *Game) Update() error {
	frame := core.NewInputFrame()
	readKeys(&frame, func(k ebiten.Key) (bool, bool) {
		return ebiten.IsKeyPressed(k), inpututil.IsKeyJustPressed(k)
	})
	if frame.Has(core.ActionQuit) {
		g.finish()
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if mx != g.cursorX || my != g.cursorY {
		frame.AddPointer(core.PointerMove, x, y)
		g.cursorX, g.cursorY = mx, my
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && my < mapHeight(g.height) {
		frame.AddPointer(core.PointerDown, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		frame.AddPointer(core.PointerUp, x, y)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.session.OnZoom(dy * wheelSteps)
	}

	result := g.session.Step(frame)
	for _, e := range result.Events {
		g.logger.Debug("session event", "event", e.String())
	}
	return nil
}

// Draw renders the session.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.session.Render(g.renderer)
}

// Layout tracks the window size one-to-one with screen pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(outsideWidth, mapHeight(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Session returns the running session.
func (g *Game) Session() *colony.Session {
	return g.session
}

// finish records the session once.
func (g *Game) finish() {
	if g.recorded {
		return
	}
	g.recorded = true

	stats := g.session.Stats()
	g.logger.Info("session finished",
		"preset", g.session.Preset(),
		"seed", g.session.Seed(),
		"placed", stats.Placed,
		"rejected", stats.Rejected,
		"out_of_bounds", stats.OutOfBounds,
	)
	if g.store == nil {
		return
	}
	if _, err := g.store.Record(g.session); err != nil {
		g.logger.Warn("could not save session", "error", err)
	}
}

// Run opens a window and plays session until the window closes or the
// quit key is pressed.
func Run(session *colony.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	g, err := NewGame(session, store, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Colony - " + session.Preset())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	err = ebiten.RunGame(g)
	// Closing the window ends the loop without passing through Update.
	g.finish()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
