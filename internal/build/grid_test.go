package build_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/colony/internal/build"
)

func newGrid(t *testing.T, cols, rows int) *build.Grid {
	t.Helper()
	g, err := build.NewGrid(cols, rows, 64)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d, 64) failed: %v", cols, rows, err)
	}
	return g
}

func TestNewGridInvalidDimensions(t *testing.T) {
	tests := []struct {
		name             string
		cols, rows, size int
	}{
		{"zero cols", 0, 10, 64},
		{"zero rows", 10, 0, 64},
		{"negative cols", -1, 10, 64},
		{"zero cell size", 10, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := build.NewGrid(tc.cols, tc.rows, tc.size)
			if !errors.Is(err, build.ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestGridForMap(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cols, rows    int
	}{
		{"classic draft", 4500, 9020, 71, 141},
		{"wide draft", 18040, 9000, 282, 141},
		{"exact multiple", 1280, 1280, 20, 20},
		{"partial cell", 65, 1, 2, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := build.GridForMap(tc.width, tc.height, 64)
			if err != nil {
				t.Fatalf("GridForMap failed: %v", err)
			}
			if g.Cols() != tc.cols || g.Rows() != tc.rows {
				t.Errorf("grid = %dx%d, expected %dx%d", g.Cols(), g.Rows(), tc.cols, tc.rows)
			}
		})
	}
}

func TestGridCellAt(t *testing.T) {
	g := newGrid(t, 20, 20)

	tests := []struct {
		x, y     float64
		expected build.GridCoord
	}{
		{0, 0, build.C(0, 0)},
		{63.9, 63.9, build.C(0, 0)},
		{64, 0, build.C(1, 0)},
		{130, 70, build.C(2, 1)},
		{-0.5, 10, build.C(-1, 0)},
		{1280, 0, build.C(20, 0)},
	}

	for _, tc := range tests {
		if got := g.CellAt(tc.x, tc.y); got != tc.expected {
			t.Errorf("CellAt(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestGridIsOccupiedOutOfRange(t *testing.T) {
	g := newGrid(t, 20, 20)

	for _, c := range []build.GridCoord{
		build.C(-1, 0),
		build.C(g.Cols(), 0),
		build.C(0, -1),
		build.C(0, g.Rows()),
	} {
		_, err := g.IsOccupied(c)
		if !errors.Is(err, build.ErrOutOfRange) {
			t.Errorf("IsOccupied(%v) error = %v, expected ErrOutOfRange", c, err)
		}
		var rangeErr *build.OutOfRangeError
		if !errors.As(err, &rangeErr) || rangeErr.Coord != c {
			t.Errorf("IsOccupied(%v) should carry the rejected coordinate, got %v", c, err)
		}
	}
}

func TestGridDefaultsEmpty(t *testing.T) {
	g := newGrid(t, 4, 3)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			occupied, err := g.IsOccupied(build.C(col, row))
			if err != nil {
				t.Fatalf("IsOccupied(%d, %d) failed: %v", col, row, err)
			}
			if occupied {
				t.Errorf("cell (%d, %d) should start empty", col, row)
			}
		}
	}
}

func TestGridPlaceNoDuplicate(t *testing.T) {
	g := newGrid(t, 20, 20)
	c := build.C(3, 5)

	placed, err := g.Place(c, build.KindHouse)
	if err != nil || !placed {
		t.Fatalf("first Place() = %v, %v; expected true, nil", placed, err)
	}

	placed, err = g.Place(c, build.KindHouse)
	if err != nil || placed {
		t.Fatalf("second Place() = %v, %v; expected false, nil", placed, err)
	}

	if g.Count() != 1 {
		t.Errorf("Count() = %d, expected exactly one building", g.Count())
	}
	if got := g.Buildings(); len(got) != 1 || got[0] != c {
		t.Errorf("Buildings() = %v, expected [%v]", got, c)
	}
}

func TestGridPlaceRejectsNoneKind(t *testing.T) {
	g := newGrid(t, 2, 2)

	if _, err := g.Place(build.C(0, 0), build.KindNone); err == nil {
		t.Error("placing KindNone should fail")
	}
	if g.Count() != 0 {
		t.Errorf("Count() = %d after rejected Place", g.Count())
	}
}

func TestGridRemoveBuilding(t *testing.T) {
	g := newGrid(t, 5, 5)
	c := build.C(1, 2)

	// Removing from an empty cell is a no-op
	if err := g.RemoveBuilding(c); err != nil {
		t.Fatalf("RemoveBuilding on empty cell failed: %v", err)
	}

	if _, err := g.Place(c, build.KindHouse); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if err := g.RemoveBuilding(c); err != nil {
		t.Fatalf("RemoveBuilding failed: %v", err)
	}

	occupied, _ := g.IsOccupied(c)
	if occupied {
		t.Error("cell should be empty after RemoveBuilding")
	}
	if g.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", g.Count())
	}

	if err := g.RemoveBuilding(build.C(5, 0)); !errors.Is(err, build.ErrOutOfRange) {
		t.Errorf("RemoveBuilding out of range error = %v, expected ErrOutOfRange", err)
	}
}

func TestGridBuildingsRowMajor(t *testing.T) {
	g := newGrid(t, 4, 4)
	for _, c := range []build.GridCoord{build.C(3, 2), build.C(0, 1), build.C(2, 1)} {
		if _, err := g.Place(c, build.KindHouse); err != nil {
			t.Fatalf("Place(%v) failed: %v", c, err)
		}
	}

	got := g.Buildings()
	expected := []build.GridCoord{build.C(0, 1), build.C(2, 1), build.C(3, 2)}
	if len(got) != len(expected) {
		t.Fatalf("Buildings() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Buildings()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	g.Reset()
	if g.Count() != 0 || len(g.Buildings()) != 0 {
		t.Error("Reset should empty the grid")
	}
}

func TestGridCellOrigin(t *testing.T) {
	g := newGrid(t, 10, 10)
	x, y := g.CellOrigin(build.C(2, 1))
	if x != 128 || y != 64 {
		t.Errorf("CellOrigin(2, 1) = (%v, %v), expected (128, 64)", x, y)
	}
}
