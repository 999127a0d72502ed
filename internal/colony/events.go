package colony

import (
	"fmt"

	"github.com/vovakirdan/colony/internal/build"
)

// EventKind classifies session events.
type EventKind int

const (
	EventModeChanged EventKind = iota
	EventPlaced
	EventRejected    // target cell already occupied
	EventOutOfBounds // press landed outside the grid
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventModeChanged:
		return "mode-changed"
	case EventPlaced:
		return "placed"
	case EventRejected:
		return "rejected"
	case EventOutOfBounds:
		return "out-of-bounds"
	default:
		return "unknown"
	}
}

// Event is something observable that happened during a step.
type Event struct {
	Kind  EventKind
	Coord build.GridCoord // placement target, zero for mode changes
	Mode  build.Mode      // mode after the event
}

func (e Event) String() string {
	if e.Kind == EventModeChanged {
		return fmt.Sprintf("%s to %s", e.Kind, e.Mode)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Coord)
}

// StepResult contains the outcome of one Step.
type StepResult struct {
	Events []Event
	Mode   build.Mode
}

// Stats counts placement attempts over a session.
type Stats struct {
	Placed      int
	Rejected    int
	OutOfBounds int
	Toggles     int
}

// Attempts returns the total number of placement attempts.
func (s Stats) Attempts() int {
	return s.Placed + s.Rejected + s.OutOfBounds
}
