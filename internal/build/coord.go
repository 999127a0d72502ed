// Package build tracks building occupancy on the colony grid and the
// build-mode state machine that turns pointer presses into placements.
// This package is UI-agnostic and deterministic.
package build

import "fmt"

// GridCoord identifies a grid cell by column and row.
type GridCoord struct {
	Col int
	Row int
}

// C is a convenience constructor for GridCoord.
func C(col, row int) GridCoord {
	return GridCoord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c GridCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// BuildingKind identifies what occupies a cell.
type BuildingKind uint8

const (
	KindNone  BuildingKind = iota // empty cell
	KindHouse                     // the only building the colony can place
)

// String returns the kind's label.
func (k BuildingKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindHouse:
		return "house"
	default:
		return "unknown"
	}
}

// Occupant is the content of a cell. The zero value is an empty cell.
type Occupant struct {
	Kind BuildingKind
}

// Empty reports whether no building occupies the cell.
func (o Occupant) Empty() bool {
	return o.Kind == KindNone
}
