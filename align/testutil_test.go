package align_test

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapalign/align"
)

const (
	// seedDet is the deterministic PCG seed shared by property tests.
	seedDet = uint64(42)

	// propertyRounds is the number of random pairs per property test.
	propertyRounds = 200

	// maxRandomLen bounds random sequence length in property tests.
	maxRandomLen = 24
)

func randomSeq(rng *rand.Rand, alphabet string, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
	}

	return sb.String()
}

func randomDNA(rng *rand.Rand, n int) string {
	return randomSeq(rng, "ACGT", n)
}

// gapRun is the cost of k consecutive gap moves of one kind.
func gapRun(k int) float64 {
	if k == 0 {
		return 0
	}

	return align.GapOpen + align.GapExtend*float64(k-1)
}

// allGapScore aligns A entirely against gaps, then B entirely against gaps.
func allGapScore(m, n int) float64 {
	return gapRun(m) + gapRun(n)
}

func stripGap(s string, gap rune) string {
	return strings.ReplaceAll(s, string(gap), "")
}

// rescore prices a rendered alignment column by column under the gap model.
func rescore(t *testing.T, al align.Alignment, gap rune) float64 {
	t.Helper()
	first, second := []rune(al.First), []rune(al.Second)
	require.Len(t, second, len(first))

	score := 0.0
	prev := align.None
	for i := range first {
		var mv align.Move
		switch {
		case first[i] == gap:
			mv = align.Left
		case second[i] == gap:
			mv = align.Top
		default:
			mv = align.Diagonal
		}
		switch {
		case mv == align.Diagonal && first[i] == second[i]:
			score += align.MatchScore
		case mv == align.Diagonal:
			score += align.MismatchScore
		case mv == prev:
			score += align.GapExtend
		default:
			score += align.GapOpen
		}
		prev = mv
	}

	return score
}

// assertTieBreak recomputes each non-origin cell's candidates from g.
func assertTieBreak(t *testing.T, g *align.Grid, a, b []rune) {
	t.Helper()
	origin := g.Origin()
	assert.Equal(t, 0.0, origin.Cost)
	assert.Equal(t, align.NoPredecessor, origin.Prev)

	gapFrom := func(n align.Cell, kind align.Move) float64 {
		if g.Direction(n) == kind {
			return n.Cost + align.GapExtend
		}
		return n.Cost + align.GapOpen
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if r == 0 && c == 0 {
				continue
			}
			type cand struct {
				ok    bool
				score float64
				at    align.Coord
			}
			var cands [3]cand
			if c > 0 {
				cands[0] = cand{true, gapFrom(g.At(r, c-1), align.Left), align.Coord{Row: r, Col: c - 1}}
			}
			if r > 0 {
				cands[1] = cand{true, gapFrom(g.At(r-1, c), align.Top), align.Coord{Row: r - 1, Col: c}}
			}
			if r > 0 && c > 0 {
				s := g.At(r-1, c-1).Cost + align.MismatchScore
				if a[r-1] == b[c-1] {
					s = g.At(r-1, c-1).Cost + align.MatchScore
				}
				cands[2] = cand{true, s, align.Coord{Row: r - 1, Col: c - 1}}
			}

			best := math.Inf(-1)
			for _, cd := range cands {
				if cd.ok && cd.score > best {
					best = cd.score
				}
			}
			var want align.Coord
			for _, cd := range cands {
				if cd.ok && cd.score == best {
					want = cd.at
					break
				}
			}

			cell := g.At(r, c)
			assert.Equal(t, best, cell.Cost, "cost at (%d,%d)", r, c)
			assert.Equal(t, g.Index(want.Row, want.Col), cell.Prev, "predecessor at (%d,%d)", r, c)
		}
	}
}

func assertSameGrid(t *testing.T, want, got *align.Grid) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for r := 0; r < want.Rows(); r++ {
		for c := 0; c < want.Cols(); c++ {
			if !assert.Equal(t, want.At(r, c), got.At(r, c), "cell (%d,%d)", r, c) {
				return
			}
		}
	}
}
