package build

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for queries or mutations on a coordinate
	// outside the grid. Coordinates are never clamped or wrapped.
	ErrOutOfRange = errors.New("build: coordinate out of range")

	// ErrNotPlacing is returned when a placement is attempted while build
	// mode is idle. Callers treat it as a no-op.
	ErrNotPlacing = errors.New("build: not in build mode")

	// ErrInvalidDimensions is returned when a grid would have no cells.
	ErrInvalidDimensions = errors.New("build: invalid grid dimensions")
)

// OutOfRangeError describes a rejected coordinate.
// It matches ErrOutOfRange with errors.Is.
type OutOfRangeError struct {
	Coord GridCoord
	Cols  int
	Rows  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("build: coordinate %v out of range (grid %dx%d)", e.Coord, e.Cols, e.Rows)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
