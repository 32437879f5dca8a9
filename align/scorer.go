package align

import "math"

// absent is the candidate score of a neighbour outside the grid.
var absent = math.Inf(-1)

// candidate is one scored way of reaching a cell.
type candidate struct {
	score float64
	from  int
}

// scoreCell computes the finalized cell (r,c) from its left, top and
// diagonal neighbours, all of which must already be finalized.
// (r,c) must not be the origin.
//
// Selection is max(left, top, diagonal) with ties resolved
// left > top > diagonal: a later candidate replaces the current best only
// when strictly greater.
func scoreCell(g *Grid, a, b []rune, r, c int) Cell {
	best := gapCandidate(g, r, c-1, Left)
	if top := gapCandidate(g, r-1, c, Top); top.score > best.score {
		best = top
	}
	if diag := diagonalCandidate(g, a, b, r, c); diag.score > best.score {
		best = diag
	}

	return Cell{Cost: best.score, Row: r, Col: c, Prev: best.from}
}

// gapCandidate scores a gap move from neighbour (nr,nc). The gap extends
// when the neighbour was itself reached by a move of the same kind and
// opens otherwise; the origin always opens.
func gapCandidate(g *Grid, nr, nc int, kind Move) candidate {
	if !g.InBounds(nr, nc) {
		return candidate{score: absent, from: NoPredecessor}
	}
	idx := g.Index(nr, nc)
	n := g.cells[idx]
	if g.Direction(n) == kind {
		return candidate{score: n.Cost + GapExtend, from: idx}
	}

	return candidate{score: n.Cost + GapOpen, from: idx}
}

// diagonalCandidate scores a match or mismatch from (r-1,c-1). It exists
// only when both r and c are positive.
func diagonalCandidate(g *Grid, a, b []rune, r, c int) candidate {
	if r == 0 || c == 0 {
		return candidate{score: absent, from: NoPredecessor}
	}
	idx := g.Index(r-1, c-1)
	n := g.cells[idx]
	if a[r-1] == b[c-1] {
		return candidate{score: n.Cost + MatchScore, from: idx}
	}

	return candidate{score: n.Cost + MismatchScore, from: idx}
}
