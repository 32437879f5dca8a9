package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gapalign/align"
)

// Exit codes.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error (usage, output).
	ExitError = 1
	// ExitInputError indicates the sequences could not be read.
	ExitInputError = 2
	// ExitAllocationError indicates the grid did not fit the cell budget.
	ExitAllocationError = 3
	// ExitInternalError indicates a corrupted grid during traceback or rendering.
	ExitInternalError = 4
	// ExitCancelled indicates the run was interrupted.
	ExitCancelled = 5
	// ExitConfigError indicates invalid configuration.
	ExitConfigError = 10
)

// CLIError carries an exit code and a user-facing message.
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WrapError creates a CLIError around err.
func WrapError(code int, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Cause: err}
}

// alignError classifies an align failure by the stage that produced it.
// The message names the stage only; cell state stays in the cause, which
// is printed in verbose mode.
func alignError(err error) *CLIError {
	stage := align.Stage(err)
	switch {
	case errors.Is(err, align.ErrAllocation):
		return WrapError(ExitAllocationError, "alignment failed at the allocation stage: sequences too long for the cell budget", err)
	case errors.Is(err, align.ErrBadOption):
		return WrapError(ExitConfigError, "invalid alignment option: the gap marker must be a rune absent from both sequences", err)
	case stage != "":
		return WrapError(ExitInternalError, fmt.Sprintf("alignment failed at the %s stage", stage), err)
	default:
		return WrapError(ExitError, "alignment failed", err)
	}
}

// HandleError prints err to w and returns the exit code for it.
func HandleError(w io.Writer, err error, verbose bool) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "Operation cancelled")
		return ExitCancelled
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		fmt.Fprintln(w, "Error:", cliErr.Message)
		if verbose && cliErr.Cause != nil {
			fmt.Fprintln(w, "Cause:", cliErr.Cause)
		}
		return cliErr.Code
	}

	fmt.Fprintln(w, "Error:", err)
	return ExitError
}
