package engine

import (
	"errors"
	"fmt"

	"github.com/cameel/solc-seqbench/internal/solc"
)

// ConvergenceError means a loop body failed to compile on two consecutive
// iterations. Textually equal "no output" states would otherwise be declared
// a fixed point, which is meaningless, so the run aborts instead.
type ConvergenceError struct {
	// Position is the scan position of the ']' where convergence was
	// about to be declared.
	Position int
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("compilation failed at the end of a repeated sequence (position %d)", e.Position)
}

// BaselineError means the compilation of the unmodified input did not
// succeed. Nothing can be benchmarked against a baseline that does not
// compile, so the whole run fails before any step is applied.
type BaselineError struct {
	Status solc.Status
}

// Error implements the error interface.
func (e *BaselineError) Error() string {
	return fmt.Sprintf("unoptimized compilation failed (status %q)", e.Status)
}

// IsConvergenceError reports whether err is, or wraps, a ConvergenceError.
func IsConvergenceError(err error) bool {
	var ce *ConvergenceError
	return errors.As(err, &ce)
}
