package colony

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colony/internal/build"
	"github.com/vovakirdan/colony/internal/config"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/terrain"
)

// Session is one colony play session. It is not safe for concurrent use;
// each front-end owns exactly one Session.
type Session struct {
	cfg    config.ColonyConfig
	layout Layout
	logger *log.Logger

	rt      core.RuntimeConfig
	seed    int64
	terrain *terrain.Map
	grid    *build.Grid
	placer  *build.Placer
	camera  *Camera

	dragging     bool
	lastX, lastY float64

	hover      build.GridCoord
	hoverValid bool
	showHelp   bool
	message    string

	stats   Stats
	ticks   int
	elapsed float64 // milliseconds
	events  []Event
}

// NewSession creates a session for the given configuration and screen
// layout. Call Reset before use.
func NewSession(cfg config.ColonyConfig, layout Layout) *Session {
	return &Session{
		cfg:      cfg,
		layout:   layout.normalized(),
		logger:   log.New(io.Discard),
		showHelp: cfg.UI.ShowHelp,
	}
}

// SetLogger sets the logger used for session events.
func (s *Session) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Reset starts a new session: it generates terrain, empties the grid and
// recentres the camera. A seed pinned in the configuration wins over the
// runtime seed; if neither is set the current time is used.
func (s *Session) Reset(rt core.RuntimeConfig) error {
	grid, err := build.GridForMap(s.cfg.Map.Width, s.cfg.Map.Height, s.cfg.Map.CellSize)
	if err != nil {
		return fmt.Errorf("colony: %w", err)
	}

	seed := s.cfg.Terrain.Seed
	if seed == 0 {
		seed = rt.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	classifier := terrain.NewClassifier(terrain.NewPerlin(seed), s.cfg.Terrain.Frequency)

	s.rt = rt
	s.seed = seed
	s.grid = grid
	s.placer = build.NewPlacer(grid)
	s.terrain = terrain.NewMap(classifier, grid.Cols(), grid.Rows(), grid.CellSize())

	worldW := float64(grid.Cols() * grid.CellSize())
	worldH := float64(grid.Rows() * grid.CellSize())
	s.camera = NewCamera(s.cfg.Camera, s.layout, worldW, worldH)
	s.camera.SetScreen(float64(rt.ScreenW), float64(rt.ScreenH))

	s.dragging = false
	s.hoverValid = false
	s.message = ""
	s.stats = Stats{}
	s.ticks = 0
	s.elapsed = 0
	s.events = s.events[:0]

	s.logger.Info("session reset",
		"preset", s.cfg.Map.Preset,
		"seed", seed,
		"cols", grid.Cols(),
		"rows", grid.Rows(),
	)
	return nil
}

// Resize updates the viewport size in screen units.
func (s *Session) Resize(w, h int) {
	s.rt.ScreenW, s.rt.ScreenH = w, h
	s.camera.SetScreen(float64(w), float64(h))
}

// Step applies one frame of input: discrete actions first, then pointer
// events in arrival order, then a frame update of one tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	if in.Has(core.ActionBuild) {
		s.OnBuildActionActivated()
	}
	if in.Has(core.ActionCancel) {
		s.OnCancel()
	}
	if in.Has(core.ActionToggleHelp) {
		s.showHelp = !s.showHelp
	}

	for _, p := range in.Pointer {
		switch p.Kind {
		case core.PointerDown:
			s.OnPointerDown(p.X, p.Y)
		case core.PointerMove:
			s.OnPointerMove(p.X, p.Y)
		case core.PointerUp:
			s.OnPointerUp(p.X, p.Y)
		}
	}

	s.OnFrameUpdate(s.rt.FrameMillis(), in)

	return StepResult{Events: s.DrainEvents(), Mode: s.Mode()}
}

// OnBuildActionActivated toggles build mode.
func (s *Session) OnBuildActionActivated() {
	mode := s.placer.ToggleBuildMode()
	s.stats.Toggles++
	s.dragging = false
	s.emit(Event{Kind: EventModeChanged, Mode: mode})
}

// OnCancel leaves build mode without placing.
func (s *Session) OnCancel() {
	if s.placer.Mode() != build.ModePlacing {
		return
	}
	s.placer.Cancel()
	s.emit(Event{Kind: EventModeChanged, Mode: build.ModeIdle})
}

// OnPointerDown handles a press in screen units. A press on the build
// button toggles build mode. Otherwise a press while placing attempts a
// placement and a press while idle starts a camera drag.
func (s *Session) OnPointerDown(sx, sy float64) {
	s.setHover(sx, sy)

	if s.layout.Button.Contains(sx, sy) {
		s.OnBuildActionActivated()
		return
	}

	if s.placer.Mode() == build.ModePlacing {
		s.PlaceAt(s.camera.ScreenToWorld(sx, sy))
		return
	}

	s.dragging = true
	s.lastX, s.lastY = sx, sy
}

// OnPointerMove tracks the hovered cell and pans the camera while dragging.
func (s *Session) OnPointerMove(sx, sy float64) {
	s.setHover(sx, sy)
	if !s.dragging {
		return
	}
	s.camera.PanScreen(sx-s.lastX, sy-s.lastY)
	s.lastX, s.lastY = sx, sy
}

// OnPointerUp ends a camera drag.
func (s *Session) OnPointerUp(sx, sy float64) {
	s.setHover(sx, sy)
	s.dragging = false
}

// OnZoom zooms by a number of configured zoom steps; positive zooms in.
// Front-ends call it for mouse wheel input.
func (s *Session) OnZoom(steps float64) {
	s.camera.ZoomBy(steps * s.cfg.Camera.ZoomStep)
}

// OnFrameUpdate advances camera control by dtMillis. The grid overlay
// needs no request here: Render draws it on every frame while placing.
func (s *Session) OnFrameUpdate(dtMillis float64, in core.InputFrame) {
	s.camera.Update(dtMillis, in)
	s.ticks++
	s.elapsed += dtMillis
}

// PlaceAt attempts a placement at a world position. It is ignored while
// idle.
func (s *Session) PlaceAt(wx, wy float64) {
	p, err := s.placer.HandlePointerDown(wx, wy)
	if errors.Is(err, build.ErrNotPlacing) {
		s.logger.Debug("press ignored outside build mode", "x", wx, "y", wy)
		return
	}
	if err != nil {
		s.logger.Debug("placement failed", "coord", p.Coord, "err", err)
		s.emit(Event{Kind: EventModeChanged, Mode: s.placer.Mode()})
		return
	}

	switch p.Outcome {
	case build.OutcomePlaced:
		s.stats.Placed++
		s.message = fmt.Sprintf("placed house at %s", p.Coord)
		s.emit(Event{Kind: EventPlaced, Coord: p.Coord, Mode: s.placer.Mode()})
		s.logger.Debug("building placed", "coord", p.Coord, "count", s.grid.Count())
	case build.OutcomeOccupied:
		s.stats.Rejected++
		s.message = fmt.Sprintf("cell %s is occupied", p.Coord)
		s.emit(Event{Kind: EventRejected, Coord: p.Coord, Mode: s.placer.Mode()})
		s.logger.Debug("placement rejected", "coord", p.Coord)
	case build.OutcomeOutOfBounds:
		s.stats.OutOfBounds++
		s.message = fmt.Sprintf("cell %s is outside the map", p.Coord)
		s.emit(Event{Kind: EventOutOfBounds, Coord: p.Coord, Mode: s.placer.Mode()})
		s.logger.Debug("placement out of bounds", "coord", p.Coord)
	}
	s.emit(Event{Kind: EventModeChanged, Mode: s.placer.Mode()})
}

// Render draws the visible part of the session.
func (s *Session) Render(r Renderer) {
	r.BeginFrame(s.camera.View())

	vp := s.camera.Viewport()
	col0, row0, col1, row1 := s.visibleCells(vp)

	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			b, _ := s.terrain.At(col, row)
			c := build.C(col, row)
			r.DrawTerrainTile(c, b, s.cellRect(c))
		}
	}

	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			c := build.C(col, row)
			if occupied, _ := s.grid.IsOccupied(c); occupied {
				r.DrawBuildingSprite(c, s.cellRect(c))
			}
		}
	}

	placing := s.placer.Mode() == build.ModePlacing
	if placing {
		r.DrawGridOverlay(s.grid.CellSize(), vp)
	}

	r.DrawBuildButtonUI(placing, s.layout.Button)
	r.DrawStatus(s.Status())
}

// visibleCells returns the half-open cell range covering the viewport.
func (s *Session) visibleCells(vp core.FRect) (col0, row0, col1, row1 int) {
	size := float64(s.grid.CellSize())
	col0 = max(int(math.Floor(vp.X/size)), 0)
	row0 = max(int(math.Floor(vp.Y/size)), 0)
	col1 = min(int(math.Ceil(vp.Right()/size)), s.grid.Cols())
	row1 = min(int(math.Ceil(vp.Bottom()/size)), s.grid.Rows())
	return col0, row0, col1, row1
}

func (s *Session) cellRect(c build.GridCoord) core.FRect {
	x, y := s.grid.CellOrigin(c)
	size := float64(s.grid.CellSize())
	return s.camera.WorldRectToScreen(core.NewFRect(x, y, size, size))
}

func (s *Session) setHover(sx, sy float64) {
	if s.layout.Button.Contains(sx, sy) {
		s.hoverValid = false
		return
	}
	s.hover = s.grid.CellAt(s.camera.ScreenToWorld(sx, sy))
	s.hoverValid = s.grid.InBounds(s.hover)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns and clears events emitted since the last call.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// Status returns the HUD summary.
func (s *Session) Status() Status {
	scrollX, scrollY := s.camera.Scroll()
	st := Status{
		Preset:    s.cfg.Map.Preset,
		Seed:      s.seed,
		Mode:      s.placer.Mode(),
		Cols:      s.grid.Cols(),
		Rows:      s.grid.Rows(),
		Buildings: s.grid.Count(),
		Zoom:      s.camera.Zoom(),
		ScrollX:   scrollX,
		ScrollY:   scrollY,
		Message:   s.message,
		ShowHelp:  s.showHelp,
	}
	if s.hoverValid {
		st.Hover = s.hover
		st.HoverBiome, st.HoverValid = s.terrain.At(s.hover.Col, s.hover.Row)
	}
	return st
}

// Mode returns the current build mode.
func (s *Session) Mode() build.Mode { return s.placer.Mode() }

// Seed returns the terrain seed in use.
func (s *Session) Seed() int64 { return s.seed }

// Preset returns the configured preset name.
func (s *Session) Preset() string { return s.cfg.Map.Preset }

// Grid returns the occupancy map.
func (s *Session) Grid() *build.Grid { return s.grid }

// Terrain returns the per-cell terrain map.
func (s *Session) Terrain() *terrain.Map { return s.terrain }

// Camera returns the session camera.
func (s *Session) Camera() *Camera { return s.camera }

// Layout returns the screen layout.
func (s *Session) Layout() Layout { return s.layout }

// Stats returns placement counters.
func (s *Session) Stats() Stats { return s.stats }

// ShowHelp reports whether the help overlay is enabled.
func (s *Session) ShowHelp() bool { return s.showHelp }

// Elapsed returns simulated session time.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.elapsed * float64(time.Millisecond))
}

// Snapshot is a comparable view of session state.
type Snapshot struct {
	Seed      int64
	Mode      build.Mode
	Buildings []build.GridCoord
	ScrollX   float64
	ScrollY   float64
	Zoom      float64
	Stats     Stats
	Ticks     int
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	x, y := s.camera.Scroll()
	return Snapshot{
		Seed:      s.seed,
		Mode:      s.placer.Mode(),
		Buildings: s.grid.Buildings(),
		ScrollX:   x,
		ScrollY:   y,
		Zoom:      s.camera.Zoom(),
		Stats:     s.stats,
		Ticks:     s.ticks,
	}
}
