package build

import (
	"fmt"
	"math"
)

// Grid is the occupancy map over a fixed-size grid of square cells.
// Cells are stored in row-major order: index = row*Cols + col.
// Every in-range cell has a defined occupant, empty by default.
type Grid struct {
	cols     int
	rows     int
	cellSize int
	cells    []Occupant
	count    int
}

// NewGrid creates an empty grid of cols x rows cells of cellSize world units.
func NewGrid(cols, rows, cellSize int) (*Grid, error) {
	if cols <= 0 || rows <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells of size %d", ErrInvalidDimensions, cols, rows, cellSize)
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		cells:    make([]Occupant, cols*rows),
	}, nil
}

// CellsFor returns how many cells of cellSize are needed to cover units.
func CellsFor(units, cellSize int) int {
	if cellSize <= 0 {
		return 0
	}
	return (units + cellSize - 1) / cellSize
}

// GridForMap creates a grid covering a map of the given world size.
// A partial cell at the far edge counts as a full cell.
func GridForMap(widthUnits, heightUnits, cellSize int) (*Grid, error) {
	return NewGrid(CellsFor(widthUnits, cellSize), CellsFor(heightUnits, cellSize), cellSize)
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the edge length of a cell in world units.
func (g *Grid) CellSize() int { return g.cellSize }

// CellAt converts a world position into the coordinate of the cell
// containing it. The result may be out of range.
func (g *Grid) CellAt(worldX, worldY float64) GridCoord {
	size := float64(g.cellSize)
	return GridCoord{
		Col: int(math.Floor(worldX / size)),
		Row: int(math.Floor(worldY / size)),
	}
}

// CellOrigin returns the world position of a cell's top-left corner.
func (g *Grid) CellOrigin(c GridCoord) (x, y float64) {
	return float64(c.Col * g.cellSize), float64(c.Row * g.cellSize)
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c GridCoord) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// index converts an in-range coordinate to a flat array index.
func (g *Grid) index(c GridCoord) int {
	return c.Row*g.cols + c.Col
}

func (g *Grid) check(c GridCoord) error {
	if !g.InBounds(c) {
		return &OutOfRangeError{Coord: c, Cols: g.cols, Rows: g.rows}
	}
	return nil
}

// Occupant returns the content of the cell.
func (g *Grid) Occupant(c GridCoord) (Occupant, error) {
	if err := g.check(c); err != nil {
		return Occupant{}, err
	}
	return g.cells[g.index(c)], nil
}

// IsOccupied reports whether a building occupies the cell.
func (g *Grid) IsOccupied(c GridCoord) (bool, error) {
	o, err := g.Occupant(c)
	if err != nil {
		return false, err
	}
	return !o.Empty(), nil
}

// Place puts a building of the given kind on an empty cell.
// It returns false without mutation if the cell is already occupied.
func (g *Grid) Place(c GridCoord, kind BuildingKind) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	if kind == KindNone {
		return false, fmt.Errorf("build: cannot place %v", kind)
	}
	i := g.index(c)
	if !g.cells[i].Empty() {
		return false, nil
	}
	g.cells[i] = Occupant{Kind: kind}
	g.count++
	return true, nil
}

// RemoveBuilding clears the cell. Removing from an empty cell is a no-op.
func (g *Grid) RemoveBuilding(c GridCoord) error {
	if err := g.check(c); err != nil {
		return err
	}
	i := g.index(c)
	if !g.cells[i].Empty() {
		g.cells[i] = Occupant{}
		g.count--
	}
	return nil
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	return g.count
}

// Buildings returns the coordinates of all occupied cells in row-major order.
func (g *Grid) Buildings() []GridCoord {
	coords := make([]GridCoord, 0, g.count)
	for i, o := range g.cells {
		if !o.Empty() {
			coords = append(coords, GridCoord{Col: i % g.cols, Row: i / g.cols})
		}
	}
	return coords
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
	g.count = 0
}
