package tui

import (
	"math"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

// CellPos is a terminal cell position.
type CellPos struct {
	Col, Row int
}

// Projection maps world coordinates onto a Cols x Rows terminal grid.
// Each cell stands for the world rectangle it covers; a click on a cell
// lands on that rectangle's center.
type Projection struct {
	Cols, Rows int
	World      core.Viewport
}

// NewProjection creates a projection. The grid is at least 1x1.
func NewProjection(cols, rows int, world core.Viewport) Projection {
	return Projection{
		Cols:  core.Max(cols, 1),
		Rows:  core.Max(rows, 1),
		World: world,
	}
}

func (p Projection) cellW() float64 { return p.World.W / float64(p.Cols) }
func (p Projection) cellH() float64 { return p.World.H / float64(p.Rows) }

// ToWorld returns the world position at the center of a cell.
func (p Projection) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * p.cellW(), (float64(row) + 0.5) * p.cellH()
}

// ToCell returns the cell containing a world position, clamped to the grid.
func (p Projection) ToCell(x, y float64) (col, row int) {
	col = core.Clamp(int(math.Floor(x/p.cellW())), 0, p.Cols-1)
	row = core.Clamp(int(math.Floor(y/p.cellH())), 0, p.Rows-1)
	return col, row
}

// InGrid reports whether a cell lies on the grid.
func (p Projection) InGrid(col, row int) bool {
	return col >= 0 && col < p.Cols && row >= 0 && row < p.Rows
}

// CellRect returns the world rectangle a cell stands for.
func (p Projection) CellRect(col, row int) core.Rect {
	w, h := p.cellW(), p.cellH()
	return core.NewRect(float64(col)*w, float64(row)*h, w, h)
}

// Aim returns the world point a click on a cell lands on: the center of the
// part of target the cell covers, or the cell center if it covers none.
// A point it returns for an overlapping cell is strictly inside target.
func (p Projection) Aim(col, row int, target core.Rect) (x, y float64) {
	c := p.CellRect(col, row)
	x0, x1 := math.Max(c.X, target.X), math.Min(c.Right(), target.Right())
	y0, y1 := math.Max(c.Y, target.Y), math.Min(c.Bottom(), target.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return p.ToWorld(col, row)
	}
	return (x0 + x1) / 2, (y0 + y1) / 2
}

// Cells returns the cells whose centers lie strictly inside r, row by row.
// If r is smaller than a cell, the cell containing r's center is returned
// instead. Every returned cell overlaps r, so Aim on it hits r.
func (p Projection) Cells(r core.Rect) []CellPos {
	c0, r0 := p.ToCell(r.X, r.Y)
	c1, r1 := p.ToCell(r.Right(), r.Bottom())

	var cells []CellPos
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := p.ToWorld(col, row)
			if r.ContainsStrict(x, y) {
				cells = append(cells, CellPos{Col: col, Row: row})
			}
		}
	}
	if len(cells) == 0 {
		c := r.Center()
		col, row := p.ToCell(c.X, c.Y)
		cells = append(cells, CellPos{Col: col, Row: row})
	}
	return cells
}
