package align

import (
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest run of diagonal cells handed to one goroutine.
const minChunk = 64

// fillBorders scores row 0 left-to-right (left candidates only) and then
// column 0 top-to-bottom (top candidates only).
func fillBorders(g *Grid, a, b []rune) {
	for c := 1; c < g.cols; c++ {
		g.set(scoreCell(g, a, b, 0, c))
	}
	for r := 1; r < g.rows; r++ {
		g.set(scoreCell(g, a, b, r, 0))
	}
}

// fillSequential scores every non-origin cell exactly once: borders first,
// then the interior in increasing row order and, within a row, increasing
// column order.
func fillSequential(g *Grid, a, b []rune) {
	fillBorders(g, a, b)
	for r := 1; r < g.rows; r++ {
		for c := 1; c < g.cols; c++ {
			g.set(scoreCell(g, a, b, r, c))
		}
	}
}

// fillWavefront scores the borders like fillSequential and then sweeps the
// interior one anti-diagonal (r+c = d) at a time. Cells on one diagonal
// depend only on earlier diagonals, so they are scored concurrently; the
// Wait between diagonals orders every write before the next diagonal's reads.
func fillWavefront(g *Grid, a, b []rune, workers int) {
	fillBorders(g, a, b)
	m, n := g.rows-1, g.cols-1
	for d := 2; d <= m+n; d++ {
		lo, hi := max(1, d-n), min(m, d-1)
		size := hi - lo + 1
		if size <= 0 {
			continue
		}
		if workers <= 1 || size <= minChunk {
			for r := lo; r <= hi; r++ {
				g.set(scoreCell(g, a, b, r, d-r))
			}
			continue
		}

		chunk := max(minChunk, (size+workers-1)/workers)
		var eg errgroup.Group
		eg.SetLimit(workers)
		for start := lo; start <= hi; start += chunk {
			from, to := start, min(hi, start+chunk-1)
			eg.Go(func() error {
				for r := from; r <= to; r++ {
					g.set(scoreCell(g, a, b, r, d-r))
				}
				return nil
			})
		}
		// workers never fail; Wait is the barrier between diagonals
		_ = eg.Wait()
	}
}
