package align

import (
	"fmt"
	"math"
)

// Grid owns the (m+1)×(n+1) scoring cells of one alignment, stored
// row-major. Once filled it is read-only.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates the grid for sequences of lengths m and n and seeds the
// origin (0,0) with cost 0 and no predecessor. Every other cell carries its
// coordinates and NoPredecessor until the filler scores it.
//
// Returns ErrBadShape for negative lengths and ErrAllocation when
// (m+1)·(n+1) overflows or exceeds maxCells.
// Complexity: O(m·n) time and memory.
func NewGrid(m, n, maxCells int) (*Grid, error) {
	if m < 0 || n < 0 {
		return nil, fmt.Errorf("%d×%d: %w", m, n, ErrBadShape)
	}
	rows, cols := m+1, n+1
	if rows > math.MaxInt/cols || rows*cols > maxCells {
		return nil, fmt.Errorf("%d×%d cells, budget %d: %w", rows, cols, maxCells, ErrAllocation)
	}

	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = Cell{Row: r, Col: c, Prev: NoPredecessor}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns m+1.
func (g *Grid) Rows() int { return g.rows }

// Cols returns n+1.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Index maps (r,c) to its row-major index: r*Cols + c.
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the cell at (r,c). The caller must check InBounds first.
func (g *Grid) At(r, c int) Cell {
	return g.cells[g.Index(r, c)]
}

// Origin returns the (0,0) cell.
func (g *Grid) Origin() Cell { return g.cells[0] }

// Sink returns the (m,n) cell.
func (g *Grid) Sink() Cell { return g.cells[len(g.cells)-1] }

// Direction classifies how cell x was reached: Left when its predecessor
// sits on the same row, Top when on the same column, Diagonal otherwise,
// None for a cell without predecessor.
func (g *Grid) Direction(x Cell) Move {
	if x.Prev == NoPredecessor {
		return None
	}
	p := g.Coordinate(x.Prev)
	switch {
	case p.Row == x.Row:
		return Left
	case p.Col == x.Col:
		return Top
	default:
		return Diagonal
	}
}

// Costs returns a copy of the cost table, one slice per row.
func (g *Grid) Costs() [][]float64 {
	out := make([][]float64, g.rows)
	for r := range out {
		out[r] = make([]float64, g.cols)
		for c := range out[r] {
			out[r][c] = g.cells[g.Index(r, c)].Cost
		}
	}

	return out
}

// set stores a finalized cell.
func (g *Grid) set(cell Cell) {
	g.cells[g.Index(cell.Row, cell.Col)] = cell
}
