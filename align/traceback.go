package align

import "fmt"

// Traceback walks predecessor links from the sink (m,n) back to the origin
// and returns the visited coordinates ordered origin → sink, both ends
// included.
//
// A chain that has not reached the origin after m+n+1 cells, or that points
// outside the grid, yields ErrInvalidState.
// Complexity: O(m+n).
func Traceback(g *Grid) ([]Coord, error) {
	limit := g.rows + g.cols - 1 // m+n+1
	path := make([]Coord, 0, limit)

	idx := len(g.cells) - 1
	for {
		if len(path) == limit {
			return nil, fmt.Errorf("chain longer than %d cells: %w", limit, ErrInvalidState)
		}
		if idx < 0 || idx >= len(g.cells) {
			return nil, fmt.Errorf("predecessor index %d outside grid: %w", idx, ErrInvalidState)
		}
		cell := g.cells[idx]
		path = append(path, Coord{Row: cell.Row, Col: cell.Col})
		if cell.Prev == NoPredecessor {
			break
		}
		idx = cell.Prev
	}
	if last := path[len(path)-1]; last != (Coord{}) {
		return nil, fmt.Errorf("chain ends at (%d,%d), not the origin: %w", last.Row, last.Col, ErrInvalidState)
	}

	// reverse in place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}
