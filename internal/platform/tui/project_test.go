package tui

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

var world = core.NewViewport(1600, 900)

func TestProjectionRoundTrip(t *testing.T) {
	p := NewProjection(80, 20, world)

	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Cols; col++ {
			x, y := p.ToWorld(col, row)
			if c, r := p.ToCell(x, y); c != col || r != row {
				t.Fatalf("ToCell(ToWorld(%d,%d)) = (%d,%d)", col, row, c, r)
			}
		}
	}

	if x, y := p.ToWorld(0, 0); x != 10 || y != 22.5 {
		t.Errorf("center of first cell = (%v,%v), expected (10,22.5)", x, y)
	}
}

func TestProjectionClamps(t *testing.T) {
	p := NewProjection(80, 20, world)

	if c, r := p.ToCell(-50, -50); c != 0 || r != 0 {
		t.Errorf("negative position -> (%d,%d), expected (0,0)", c, r)
	}
	if c, r := p.ToCell(5000, 5000); c != 79 || r != 19 {
		t.Errorf("far position -> (%d,%d), expected (79,19)", c, r)
	}
	if p.InGrid(80, 0) || p.InGrid(0, 20) || p.InGrid(-1, 0) {
		t.Error("InGrid accepted an off-grid cell")
	}

	tiny := NewProjection(0, -3, world)
	if tiny.Cols != 1 || tiny.Rows != 1 {
		t.Errorf("degenerate grid = %dx%d, expected 1x1", tiny.Cols, tiny.Rows)
	}
}

func TestProjectionCellsAreClickable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	size := core.Size{W: 64, H: 64}

	for _, grid := range [][2]int{{80, 23}, {120, 39}, {200, 60}} {
		p := NewProjection(grid[0], grid[1], world)
		for i := 0; i < 200; i++ {
			r := core.NewRect(float64(rng.Intn(1537)), float64(rng.Intn(837)), size.W, size.H)
			cells := p.Cells(r)
			if len(cells) == 0 {
				t.Fatalf("%v: no cells for %+v", grid, r)
			}
			for _, c := range cells {
				x, y := p.ToWorld(c.Col, c.Row)
				if !r.ContainsStrict(x, y) {
					t.Fatalf("%v: cell %+v center (%v,%v) not inside %+v", grid, c, x, y, r)
				}
			}
		}
	}
}

func TestProjectionCellsFallback(t *testing.T) {
	p := NewProjection(10, 10, world)
	r := core.NewRect(161, 91, 2, 2) // inside cell (1,1) but off its center

	cells := p.Cells(r)
	if len(cells) != 1 || cells[0] != (CellPos{Col: 1, Row: 1}) {
		t.Errorf("cells = %v, expected the single cell holding the center", cells)
	}
}

func TestProjectionAimHitsEveryDrawnCell(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	size := core.Size{W: 64, H: 64}

	// Narrow grids have cells wider than the fish.
	for _, grid := range [][2]int{{10, 5}, {4, 3}, {1, 1}, {80, 23}} {
		p := NewProjection(grid[0], grid[1], world)
		rects := []core.Rect{core.NewRect(0, 0, size.W, size.H), core.NewRect(1536, 836, size.W, size.H)}
		for i := 0; i < 100; i++ {
			rects = append(rects, core.NewRect(float64(rng.Intn(1537)), float64(rng.Intn(837)), size.W, size.H))
		}

		for _, r := range rects {
			for _, c := range p.Cells(r) {
				x, y := p.Aim(c.Col, c.Row, r)
				if !r.ContainsStrict(x, y) {
					t.Fatalf("%v: drawn cell %+v aims at (%v,%v), outside %+v", grid, c, x, y, r)
				}
			}
		}
	}
}

func TestProjectionAimMissUsesCellCenter(t *testing.T) {
	p := NewProjection(10, 5, world)
	r := core.NewRect(0, 0, 64, 64)

	x, y := p.Aim(9, 4, r)
	cx, cy := p.ToWorld(9, 4)
	if x != cx || y != cy {
		t.Errorf("Aim on a cell away from the target = (%v,%v), expected center (%v,%v)", x, y, cx, cy)
	}

	if got := p.CellRect(1, 2); got != core.NewRect(160, 360, 160, 180) {
		t.Errorf("CellRect(1,2) = %+v", got)
	}
}
