package build

// Mode is the build-mode state.
type Mode uint8

const (
	// ModeIdle: camera navigation is active, presses pan the view.
	ModeIdle Mode = iota
	// ModePlacing: the next press attempts a placement.
	ModePlacing
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlacing:
		return "placing"
	default:
		return "unknown"
	}
}

// Outcome is the result of a placement attempt.
type Outcome uint8

const (
	OutcomePlaced      Outcome = iota // building added
	OutcomeOccupied                   // cell already held a building, nothing changed
	OutcomeOutOfBounds                // press landed outside the grid, nothing changed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaced:
		return "placed"
	case OutcomeOccupied:
		return "occupied"
	case OutcomeOutOfBounds:
		return "out-of-bounds"
	default:
		return "unknown"
	}
}

// Placement reports where a placement attempt landed and what happened.
type Placement struct {
	Coord   GridCoord
	Outcome Outcome
}

// Placer is the build-mode state machine. Each activation allows exactly
// one placement attempt: any press while placing returns it to idle,
// whatever the outcome.
type Placer struct {
	grid *Grid
	mode Mode
	kind BuildingKind
}

// NewPlacer creates an idle placer that places houses on grid.
func NewPlacer(grid *Grid) *Placer {
	return &Placer{grid: grid, mode: ModeIdle, kind: KindHouse}
}

// Grid returns the occupancy map the placer mutates.
func (p *Placer) Grid() *Grid {
	return p.grid
}

// Mode returns the current build mode.
func (p *Placer) Mode() Mode {
	return p.mode
}

// ToggleBuildMode flips between idle and placing.
func (p *Placer) ToggleBuildMode() Mode {
	if p.mode == ModePlacing {
		p.mode = ModeIdle
	} else {
		p.mode = ModePlacing
	}
	return p.mode
}

// Cancel leaves build mode without attempting a placement.
func (p *Placer) Cancel() {
	p.mode = ModeIdle
}

// HandlePointerDown attempts a placement at a world position.
// While idle it returns ErrNotPlacing and changes nothing. While placing it
// always returns to idle; occupied and out-of-bounds presses are reported
// through the outcome, not as errors.
func (p *Placer) HandlePointerDown(worldX, worldY float64) (Placement, error) {
	if p.mode != ModePlacing {
		return Placement{}, ErrNotPlacing
	}
	defer func() { p.mode = ModeIdle }()

	c := p.grid.CellAt(worldX, worldY)
	if !p.grid.InBounds(c) {
		return Placement{Coord: c, Outcome: OutcomeOutOfBounds}, nil
	}

	placed, err := p.grid.Place(c, p.kind)
	if err != nil {
		return Placement{Coord: c}, err
	}
	if !placed {
		return Placement{Coord: c, Outcome: OutcomeOccupied}, nil
	}
	return Placement{Coord: c, Outcome: OutcomePlaced}, nil
}
