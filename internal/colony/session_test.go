package colony

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/colony/internal/build"
	"github.com/vovakirdan/colony/internal/config"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/terrain"
)

// recorder is a Renderer that records draw calls.
type recorder struct {
	frames    int
	tiles     map[build.GridCoord]terrain.Biome
	buildings []build.GridCoord
	overlays  int
	toggled   []bool
	button    core.FRect
	status    Status
}

func newRecorder() *recorder {
	return &recorder{tiles: make(map[build.GridCoord]terrain.Biome)}
}

func (r *recorder) BeginFrame(View) { r.frames++ }

func (r *recorder) DrawTerrainTile(c build.GridCoord, b terrain.Biome, _ core.FRect) {
	r.tiles[c] = b
}

func (r *recorder) DrawBuildingSprite(c build.GridCoord, _ core.FRect) {
	r.buildings = append(r.buildings, c)
}

func (r *recorder) DrawGridOverlay(int, core.FRect) { r.overlays++ }

func (r *recorder) DrawBuildButtonUI(toggled bool, bounds core.FRect) {
	r.toggled = append(r.toggled, toggled)
	r.button = bounds
}

func (r *recorder) DrawStatus(st Status) { r.status = st }

func smallConfig() config.ColonyConfig {
	cfg := config.DefaultColonyConfig()
	cfg.Map = config.MapConfig{Preset: "small", CellSize: 64, Width: 1280, Height: 1280}
	cfg.Terrain.Seed = 42
	return cfg
}

func newTestSession(t *testing.T, layout Layout, w, h int) *Session {
	t.Helper()
	s := NewSession(smallConfig(), layout)
	if err := s.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return s
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)

	if s.Grid().Cols() != 20 || s.Grid().Rows() != 20 {
		t.Errorf("grid = %dx%d, expected 20x20", s.Grid().Cols(), s.Grid().Rows())
	}
	if s.Seed() != 42 {
		t.Errorf("Seed() = %d, expected pinned 42", s.Seed())
	}
	if s.Mode() != build.ModeIdle {
		t.Errorf("Mode() = %v, expected idle", s.Mode())
	}
	if s.Terrain().Cols() != 20 || s.Terrain().Rows() != 20 {
		t.Error("terrain map should match the grid")
	}
}

func TestSessionResetInvalidMap(t *testing.T) {
	cfg := smallConfig()
	cfg.Map.CellSize = 0
	s := NewSession(cfg, WindowLayout())
	if err := s.Reset(core.DefaultConfig()); err == nil {
		t.Error("expected error for zero cell size")
	}
}

func TestSessionRuntimeSeed(t *testing.T) {
	cfg := smallConfig()
	cfg.Terrain.Seed = 0
	s := NewSession(cfg, WindowLayout())
	if err := s.Reset(core.RuntimeConfig{ScreenW: 640, ScreenH: 640, Seed: 7}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if s.Seed() != 7 {
		t.Errorf("Seed() = %d, expected runtime seed 7", s.Seed())
	}
}

func TestSessionButtonToggles(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		x, y   float64
	}{
		{"terminal", TerminalLayout(), 1, 1},
		{"window", WindowLayout(), 95, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, tc.layout, 640, 640)

			s.OnPointerDown(tc.x, tc.y)
			if s.Mode() != build.ModePlacing {
				t.Fatalf("button press: mode = %v, expected placing", s.Mode())
			}

			// A second press on the button toggles back without placing.
			s.OnPointerDown(tc.x, tc.y)
			if s.Mode() != build.ModeIdle {
				t.Errorf("second press: mode = %v, expected idle", s.Mode())
			}
			if s.Grid().Count() != 0 || s.Stats().Attempts() != 0 {
				t.Error("button presses must not attempt placements")
			}
		})
	}
}

func TestSessionEndToEndPlacement(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 1280, 1280)

	s.OnBuildActionActivated()
	s.PlaceAt(130, 70)

	occupied, err := s.Grid().IsOccupied(build.C(2, 1))
	if err != nil || !occupied {
		t.Errorf("IsOccupied((2,1)) = %v, %v; expected true", occupied, err)
	}
	if s.Mode() != build.ModeIdle {
		t.Errorf("Mode() = %v, expected idle", s.Mode())
	}
	if s.Stats().Placed != 1 {
		t.Errorf("Placed = %d, expected 1", s.Stats().Placed)
	}
}

func TestSessionPlaceAtIgnoredWhileIdle(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)

	s.PlaceAt(130, 70)

	if s.Grid().Count() != 0 {
		t.Error("idle PlaceAt must not mutate the grid")
	}
	if events := s.DrainEvents(); len(events) != 0 {
		t.Errorf("idle PlaceAt emitted %v", events)
	}
}

func TestSessionStepEvents(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)

	// Toggle by key, then press cell (5, 7) in the same frame.
	in := core.NewInputFrame()
	in.Set(core.ActionBuild)
	in.AddPointer(core.PointerDown, 5*64+10, 7*64+22)
	res := s.Step(in)

	expected := []Event{
		{Kind: EventModeChanged, Mode: build.ModePlacing},
		{Kind: EventPlaced, Coord: build.C(5, 7), Mode: build.ModeIdle},
		{Kind: EventModeChanged, Mode: build.ModeIdle},
	}
	if !reflect.DeepEqual(res.Events, expected) {
		t.Errorf("events = %v\nexpected %v", res.Events, expected)
	}
	if res.Mode != build.ModeIdle {
		t.Errorf("result mode = %v, expected idle", res.Mode)
	}

	// Same cell again is rejected and still returns to idle.
	in.Clear()
	in.Set(core.ActionBuild)
	in.AddPointer(core.PointerDown, 5*64+1, 7*64+1)
	res = s.Step(in)

	if len(res.Events) != 3 || res.Events[1].Kind != EventRejected {
		t.Errorf("events = %v, expected a rejection", res.Events)
	}
	if s.Grid().Count() != 1 {
		t.Errorf("Count() = %d, expected 1", s.Grid().Count())
	}
	if s.Mode() != build.ModeIdle {
		t.Errorf("Mode() = %v, expected idle", s.Mode())
	}
}

func TestSessionOutOfBoundsPress(t *testing.T) {
	// The window is wider than the map, so presses past x=1280 miss the grid.
	s := newTestSession(t, WindowLayout(), 1600, 800)

	s.OnBuildActionActivated()
	s.OnPointerDown(1400, 400)

	if s.Stats().OutOfBounds != 1 {
		t.Errorf("OutOfBounds = %d, expected 1", s.Stats().OutOfBounds)
	}
	if s.Grid().Count() != 0 {
		t.Error("out-of-bounds press must not mutate the grid")
	}
	if s.Mode() != build.ModeIdle {
		t.Errorf("Mode() = %v, expected idle", s.Mode())
	}
}

func TestSessionCancel(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)

	in := core.NewInputFrame()
	in.Set(core.ActionBuild)
	s.Step(in)

	in.Clear()
	in.Set(core.ActionCancel)
	res := s.Step(in)

	if s.Mode() != build.ModeIdle {
		t.Errorf("Mode() = %v after cancel", s.Mode())
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventModeChanged {
		t.Errorf("events = %v, expected one mode change", res.Events)
	}

	// Cancelling while idle is silent.
	res = s.Step(in)
	if len(res.Events) != 0 {
		t.Errorf("idle cancel emitted %v", res.Events)
	}
}

func TestSessionDragPan(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)

	s.OnPointerDown(400, 400)
	s.OnPointerMove(300, 300)
	s.OnPointerUp(300, 300)

	x, y := s.Camera().Scroll()
	if x != 100 || y != 100 {
		t.Errorf("Scroll() = (%v, %v), expected (100, 100)", x, y)
	}

	// Moves after release do not pan.
	s.OnPointerMove(200, 200)
	x, y = s.Camera().Scroll()
	if x != 100 || y != 100 {
		t.Errorf("Scroll() = (%v, %v) after release, expected unchanged", x, y)
	}
	if s.Grid().Count() != 0 {
		t.Error("idle presses must not place")
	}
}

func TestSessionPlaceAfterPan(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)
	s.Camera().SetScroll(128, 64)

	s.OnBuildActionActivated()
	s.OnPointerDown(300, 300) // world (428, 364)

	occupied, _ := s.Grid().IsOccupied(build.C(6, 5))
	if !occupied {
		t.Errorf("expected placement at (6,5), buildings = %v", s.Grid().Buildings())
	}
}

func TestSessionRender(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)
	if _, err := s.Grid().Place(build.C(1, 1), build.KindHouse); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if _, err := s.Grid().Place(build.C(15, 15), build.KindHouse); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	r := newRecorder()
	s.Render(r)

	if r.frames != 1 {
		t.Errorf("BeginFrame called %d times", r.frames)
	}
	if len(r.tiles) != 100 {
		t.Errorf("drew %d tiles, expected the 10x10 visible cells", len(r.tiles))
	}
	for c, b := range r.tiles {
		want, _ := s.Terrain().At(c.Col, c.Row)
		if b != want {
			t.Errorf("tile %v drawn as %v, map says %v", c, b, want)
		}
	}
	if !reflect.DeepEqual(r.buildings, []build.GridCoord{build.C(1, 1)}) {
		t.Errorf("buildings drawn = %v, expected only the visible (1,1)", r.buildings)
	}
	if r.overlays != 0 {
		t.Error("grid overlay must not be drawn while idle")
	}
	if len(r.toggled) != 1 || r.toggled[0] {
		t.Errorf("button toggled = %v, expected [false]", r.toggled)
	}
	if r.button != WindowLayout().Button {
		t.Errorf("button bounds = %v", r.button)
	}
	if r.status.Buildings != 2 || r.status.Mode != build.ModeIdle {
		t.Errorf("status = %+v", r.status)
	}

	s.OnBuildActionActivated()
	r = newRecorder()
	s.Render(r)
	if r.overlays != 1 {
		t.Errorf("overlay drawn %d times while placing, expected 1", r.overlays)
	}
	if len(r.toggled) != 1 || !r.toggled[0] {
		t.Errorf("button toggled = %v, expected [true]", r.toggled)
	}
}

func TestSessionHoverStatus(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)

	s.OnPointerMove(200, 300)
	st := s.Status()
	if !st.HoverValid || st.Hover != build.C(3, 4) {
		t.Errorf("hover = %v valid=%v, expected (3,4)", st.Hover, st.HoverValid)
	}
	want, _ := s.Terrain().At(3, 4)
	if st.HoverBiome != want {
		t.Errorf("hover biome = %v, expected %v", st.HoverBiome, want)
	}

	s.OnPointerMove(30, 30) // over the button
	if s.Status().HoverValid {
		t.Error("hover over the button should not report a cell")
	}
}

func TestSessionToggleHelp(t *testing.T) {
	s := newTestSession(t, TerminalLayout(), 80, 24)
	initial := s.ShowHelp()

	in := core.NewInputFrame()
	in.Set(core.ActionToggleHelp)
	s.Step(in)

	if s.ShowHelp() == initial {
		t.Error("ToggleHelp should flip help visibility")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() (Snapshot, map[terrain.Biome]int) {
		s := newTestSession(t, TerminalLayout(), 80, 24)
		in := core.NewInputFrame()
		for i := 0; i < 120; i++ {
			in.Clear()
			switch {
			case i%40 == 0:
				in.Set(core.ActionBuild)
			case i%40 == 1:
				in.AddPointer(core.PointerDown, float64(20+i%30), float64(5+i%10))
			default:
				in.Hold(core.ActionPanDown)
				in.Hold(core.ActionPanRight)
			}
			s.Step(in)
		}
		return s.Snapshot(), s.Terrain().Counts()
	}

	snap1, counts1 := run()
	snap2, counts2 := run()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if !reflect.DeepEqual(counts1, counts2) {
		t.Errorf("terrain differs: %v vs %v", counts1, counts2)
	}
	if snap1.Stats.Attempts() != 3 {
		t.Errorf("attempts = %d, expected 3", snap1.Stats.Attempts())
	}
}

func TestSessionElapsed(t *testing.T) {
	s := newTestSession(t, WindowLayout(), 640, 640)
	in := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		s.Step(in)
	}
	if got := s.Elapsed().Milliseconds(); got < 999 || got > 1000 {
		t.Errorf("Elapsed() = %v, expected one second at 60 ticks", s.Elapsed())
	}
}
