package align

import "fmt"

// Scoring constants of the gap model.
const (
	// MatchScore is added on a diagonal move over equal runes.
	MatchScore = 2.0
	// MismatchScore is added on a diagonal move over different runes.
	MismatchScore = -1.0
	// GapOpen is added on a gap move whose source cell was not reached by
	// the same kind of move.
	GapOpen = -1.0
	// GapExtend is added on a gap move continuing a gap of the same kind.
	GapExtend = -0.5
)

// NoPredecessor marks the origin cell's Prev.
const NoPredecessor = -1

// Move classifies how a cell was reached from its predecessor.
type Move int

const (
	// None is the origin's classification: it has no predecessor.
	None Move = iota
	// Left: predecessor on the same row, a rune of B against a gap.
	Left
	// Top: predecessor on the same column, a rune of A against a gap.
	Top
	// Diagonal: predecessor one row and one column back.
	Diagonal
)

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case None:
		return "none"
	case Left:
		return "left"
	case Top:
		return "top"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Coord is a (row, column) grid position. Row indexes sequence A, Col
// indexes sequence B; both are offset by one from the rune indices.
type Coord struct {
	Row, Col int
}

// Cell is one scored grid position.
//
// Prev is the flat row-major index of the predecessor in the owning Grid,
// or NoPredecessor for the origin. It is a lookup edge only.
type Cell struct {
	Cost     float64
	Row, Col int
	Prev     int
}

// Alignment is a pair of equal-length rendered sequences.
type Alignment struct {
	First  string
	Second string
}

// Result is the outcome of Align.
type Result struct {
	// Score is the sink cell's cost.
	Score float64
	// Alignment holds the two rendered rows.
	Alignment Alignment
	// Path runs from the origin (0,0) to the sink (m,n), both inclusive.
	Path []Coord
	// Grid is the filled scoring grid; nil unless WithKeepGrid was given.
	Grid *Grid
}
