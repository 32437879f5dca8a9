package align

import (
	"fmt"
	"log/slog"
	"slices"
)

// Align computes one optimal alignment of a and b.
//
// Algorithm Outline:
//  1. Let m = len(A), n = len(B) in runes. Allocate the (m+1)×(n+1) grid,
//     origin (0,0) = 0.
//  2. Row 0 from left candidates, column 0 from top candidates.
//  3. For r = 1..m, c = 1..n:
//     left = G[r][c-1] + (-0.5 if G[r][c-1] came from its left else -1)
//     top  = G[r-1][c] + (-0.5 if G[r-1][c] came from its top  else -1)
//     diag = G[r-1][c-1] + (2 if A[r-1] == B[c-1] else -1)
//     G[r][c] = max(left, top, diag), ties left > top > diag.
//  4. Follow predecessors from (m,n) to (0,0), reverse.
//  5. Render each step into a pair of runes; Score = G[m][n].
//
// Both sequences empty is not an error: Score 0 and an empty Alignment.
// The gap rune is reserved: an input containing it fails with ErrBadOption.
//
// Errors are wrapped with the failing stage (see Stage) and match
// ErrAllocation, ErrInvalidState, ErrBadShape or ErrBadOption via errors.Is.
//
// Complexity: O(m·n) time and memory.
func Align(a, b string, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return Result{}, err
	}

	ra, rb := []rune(a), []rune(b)
	if slices.Contains(ra, o.gap) || slices.Contains(rb, o.gap) {
		return Result{}, fmt.Errorf("gap %q occurs in input: %w", o.gap, ErrBadOption)
	}
	log := o.logger.With(slog.Int("m", len(ra)), slog.Int("n", len(rb)))

	g, err := NewGrid(len(ra), len(rb), o.maxCells)
	if err != nil {
		return Result{}, wrapStage(StageAllocate, err)
	}
	log.Debug("grid allocated", slog.Int("cells", g.rows*g.cols))

	if o.workers > 0 {
		fillWavefront(g, ra, rb, o.workers)
	} else {
		fillSequential(g, ra, rb)
	}
	log.Debug("grid filled", slog.Int("workers", o.workers), slog.Float64("score", g.Sink().Cost))

	path, err := Traceback(g)
	if err != nil {
		return Result{}, wrapStage(StageTraceback, err)
	}
	log.Debug("traceback done", slog.Int("path", len(path)))

	al, err := render(path, ra, rb, o.gap)
	if err != nil {
		return Result{}, wrapStage(StageRender, err)
	}

	res := Result{
		Score:     g.Sink().Cost,
		Alignment: al,
		Path:      path,
	}
	if o.keepGrid {
		res.Grid = g
	}

	return res, nil
}

// MustAlign is like Align but panics on error. Intended for tests and
// examples over inputs known to fit the default budget.
func MustAlign(a, b string, opts ...Option) Result {
	res, err := Align(a, b, opts...)
	if err != nil {
		panic(fmt.Sprintf("align.MustAlign: %v", err))
	}

	return res
}
