package terrain

// Map holds the biome of every grid cell, classified once at the cell's
// world-space origin. Cells are stored row-major: index = row*cols + col.
type Map struct {
	cols     int
	rows     int
	cellSize int
	cells    []Biome
}

// NewMap classifies a cols x rows grid of square cells.
func NewMap(c *Classifier, cols, rows, cellSize int) *Map {
	cols = max(cols, 0)
	rows = max(rows, 0)
	m := &Map{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		cells:    make([]Biome, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := float64(col * cellSize)
			y := float64(row * cellSize)
			m.cells[row*cols+col] = c.Classify(x, y)
		}
	}
	return m
}

// Cols returns the map width in cells.
func (m *Map) Cols() int { return m.cols }

// Rows returns the map height in cells.
func (m *Map) Rows() int { return m.rows }

// At returns the biome of cell (col, row). ok is false out of range.
func (m *Map) At(col, row int) (b Biome, ok bool) {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return Grass, false
	}
	return m.cells[row*m.cols+col], true
}

// Counts returns the number of cells per biome.
func (m *Map) Counts() map[Biome]int {
	counts := make(map[Biome]int, len(Biomes()))
	for _, b := range m.cells {
		counts[b]++
	}
	return counts
}
