package align

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message carries the "align:" prefix; callers match
// them with errors.Is even after stage wrapping.
var (
	// ErrAllocation indicates the requested grid exceeds the cell budget
	// or its size overflows int.
	ErrAllocation = errors.New("align: grid allocation exceeds available budget")

	// ErrInvalidState indicates a corrupted grid: a predecessor chain that
	// does not reach the origin, or a path step that is not a single move.
	ErrInvalidState = errors.New("align: invalid grid state")

	// ErrBadShape indicates negative grid dimensions.
	ErrBadShape = errors.New("align: invalid grid shape")

	// ErrBadOption indicates an option value that cannot be honoured.
	ErrBadOption = errors.New("align: invalid option")
)

// Pipeline stages reported by Stage.
const (
	StageAllocate  = "allocate"
	StageTraceback = "traceback"
	StageRender    = "render"
)

// stageError tags an error with the pipeline stage that produced it.
type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string {
	return fmt.Sprintf("align: %s: %v", e.stage, e.err)
}

func (e *stageError) Unwrap() error { return e.err }

func wrapStage(stage string, err error) error {
	if err == nil {
		return nil
	}

	return &stageError{stage: stage, err: err}
}

// Stage returns the pipeline stage that produced err, or "" when err was
// not produced by Align.
func Stage(err error) string {
	var se *stageError
	if errors.As(err, &se) {
		return se.stage
	}

	return ""
}
