// Package sequence defines the optimizer-sequence DSL: static validation of
// the sequence grammar and the step-letter registry.
//
// A sequence is a one-line string over step letters, '[', ']', ':' and
// whitespace. Brackets delimit repeated sub-sequences, ':' separates the main
// steps from the cleanup part.
package sequence

import (
	"fmt"
	"strings"
)

// SyntaxError reports a malformed sequence. Position is the zero-based byte
// offset of the offending character, or -1 when the error concerns the
// sequence as a whole.
type SyntaxError struct {
	Position int
	Message  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("position %d: %s", e.Position, e.Message)
	}
	return e.Message
}

// Validate checks a sequence string without executing anything.
//
// Rules:
//   - bracket depth must never go negative (unmatched ']');
//   - bracket depth must be zero at the end of the scan (unmatched '[');
//   - the cleanup marker ':' must be present, so that sequences are
//     unambiguous about where the cleanup part starts;
//   - when brackets are used, the cleanup part must come after all of them:
//     the trimmed sequence must end with ':' at top level.
//
// The last two rules are the strict variant of the cleanup-marker grammar.
// Step letters themselves are not checked against the registry; an unknown
// letter is left for the compiler to reject.
func Validate(seq string) error {
	depth := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case '[':
			depth++
		case ']':
			depth--
		}
		if depth < 0 {
			return &SyntaxError{Position: i, Message: "unmatched ']'"}
		}
	}
	if depth != 0 {
		return &SyntaxError{Position: -1, Message: "unmatched '[' in the sequence"}
	}

	if !strings.ContainsRune(seq, ':') {
		return &SyntaxError{Position: -1, Message: "cleanup marker ':' not present in the sequence"}
	}
	if strings.ContainsRune(seq, '[') {
		trimmed := strings.TrimSpace(seq)
		if trimmed != "" && !strings.HasSuffix(trimmed, ":") {
			return &SyntaxError{Position: -1, Message: "cleanup part is supported only after all repeated sub-sequences (sequence must end with ':')"}
		}
	}
	return nil
}
