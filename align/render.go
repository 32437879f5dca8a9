package align

import (
	"fmt"
	"strings"
)

// Render maps each step of path onto a pair of aligned runes and returns
// the two concatenated rows:
//
//	left     → (gap,     b[col-1])
//	top      → (a[row-1], gap)
//	diagonal → (a[row-1], b[col-1])
//
// The origin emits nothing. A step that is not a single left, top or
// diagonal move, or that leaves the sequences' bounds, yields ErrInvalidState.
func Render(path []Coord, a, b string, gap rune) (Alignment, error) {
	return render(path, []rune(a), []rune(b), gap)
}

func render(path []Coord, a, b []rune, gap rune) (Alignment, error) {
	var first, second strings.Builder
	if len(path) > 1 {
		first.Grow(len(path) - 1)
		second.Grow(len(path) - 1)
	}

	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if cur.Row < 0 || cur.Row > len(a) || cur.Col < 0 || cur.Col > len(b) {
			return Alignment{}, fmt.Errorf("step %d at (%d,%d) outside %d×%d: %w",
				i, cur.Row, cur.Col, len(a), len(b), ErrInvalidState)
		}
		switch stepMove(prev, cur) {
		case Left:
			first.WriteRune(gap)
			second.WriteRune(b[cur.Col-1])
		case Top:
			first.WriteRune(a[cur.Row-1])
			second.WriteRune(gap)
		case Diagonal:
			first.WriteRune(a[cur.Row-1])
			second.WriteRune(b[cur.Col-1])
		default:
			return Alignment{}, fmt.Errorf("step %d (%d,%d)→(%d,%d) is not a single move: %w",
				i, prev.Row, prev.Col, cur.Row, cur.Col, ErrInvalidState)
		}
	}

	return Alignment{First: first.String(), Second: second.String()}, nil
}

// stepMove classifies the move prev → cur, or None when it is not one of
// the three legal moves.
func stepMove(prev, cur Coord) Move {
	dr, dc := cur.Row-prev.Row, cur.Col-prev.Col
	switch {
	case dr == 0 && dc == 1:
		return Left
	case dr == 1 && dc == 0:
		return Top
	case dr == 1 && dc == 1:
		return Diagonal
	default:
		return None
	}
}
