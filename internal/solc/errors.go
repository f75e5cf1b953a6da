package solc

import (
	"errors"
	"fmt"
	"strings"
)

// CompileError aggregates the fatal diagnostics of one compiler response.
// Warnings and informational notes are never included.
type CompileError struct {
	Messages []string
}

// Error implements the error interface. All diagnostics are listed, indented
// under a single header line.
func (e *CompileError) Error() string {
	return strings.Join(append([]string{"compilation failed"}, e.Messages...), "\n    ")
}

// AmbiguousOutputError means a successful response named more than one source
// file or contract, so there is no single artifact to snapshot.
type AmbiguousOutputError struct {
	Sources   int
	Contracts int
}

// Error implements the error interface.
func (e *AmbiguousOutputError) Error() string {
	return fmt.Sprintf("more than one file or contract found in compiler output (%d sources, %d contracts)", e.Sources, e.Contracts)
}

// IsCompileError reports whether err is, or wraps, a CompileError.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}
