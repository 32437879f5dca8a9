// Package align computes an optimal pairwise alignment of two character
// sequences on a dynamic-programming scoring grid and reconstructs one
// optimal alignment through back-pointer traceback.
//
// 🚀 What is scored?
//
//	Every grid cell (r, c) holds the best score of aligning the first r
//	runes of A with the first c runes of B. A cell is reached from one of
//	three neighbours:
//	  • left     (r, c-1)   : a rune of B against a gap
//	  • top      (r-1, c)   : a rune of A against a gap
//	  • diagonal (r-1, c-1) : a rune of A against a rune of B
//
//	Moves are priced as follows:
//	  • match     +2
//	  • mismatch  -1
//	  • gap open  -1
//	  • gap extend -0.5 (the neighbour was itself reached by the same gap move)
//
// ✨ Key properties:
//   - deterministic tie-break: left > top > diagonal
//   - predecessors stored as flat grid indices, no pointers
//   - absent neighbours score -Inf and are never selected
//   - optional anti-diagonal wavefront fill, bit-identical to the sequential fill
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gapalign/align"
//
//	res, err := align.Align("GATTACA", "GCATGCU", align.WithKeepGrid())
//	if err != nil {
//	  // errors.Is(err, align.ErrAllocation) / align.ErrInvalidState
//	}
//	fmt.Println(res.Alignment.First)
//	fmt.Println(res.Alignment.Second)
//	fmt.Println("score:", res.Score)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M); the whole grid is retained because traceback walks
//     predecessor links across it.
package align
