package align

import "fmt"

// ColumnKind classifies one column of a rendered alignment.
type ColumnKind int

const (
	// Match: both runes present and equal.
	Match ColumnKind = iota
	// Mismatch: both runes present and different.
	Mismatch
	// Gap: one side is the gap marker.
	Gap
)

// String implements fmt.Stringer.
func (k ColumnKind) String() string {
	switch k {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case Gap:
		return "gap"
	default:
		return fmt.Sprintf("ColumnKind(%d)", int(k))
	}
}

// Classify returns the kind of every column of al. Rows of different rune
// length are compared up to the shorter one.
func Classify(al Alignment, gap rune) []ColumnKind {
	first, second := []rune(al.First), []rune(al.Second)
	n := min(len(first), len(second))
	kinds := make([]ColumnKind, n)
	for i := 0; i < n; i++ {
		switch {
		case first[i] == gap || second[i] == gap:
			kinds[i] = Gap
		case first[i] == second[i]:
			kinds[i] = Match
		default:
			kinds[i] = Mismatch
		}
	}

	return kinds
}

// Summary aggregates column kinds of an alignment.
type Summary struct {
	Length     int     `json:"length" yaml:"length"`
	Matches    int     `json:"matches" yaml:"matches"`
	Mismatches int     `json:"mismatches" yaml:"mismatches"`
	Gaps       int     `json:"gaps" yaml:"gaps"`
	Identity   float64 `json:"identity" yaml:"identity"` // Matches / Length, 0 for an empty alignment
}

// Summarize counts matches, mismatches and gap columns of al.
func Summarize(al Alignment, gap rune) Summary {
	var s Summary
	for _, k := range Classify(al, gap) {
		s.Length++
		switch k {
		case Match:
			s.Matches++
		case Mismatch:
			s.Mismatches++
		case Gap:
			s.Gaps++
		}
	}
	if s.Length > 0 {
		s.Identity = float64(s.Matches) / float64(s.Length)
	}

	return s
}
