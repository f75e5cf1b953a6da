package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	valid := []string{
		":",
		"dhfoDgvulfnTUtnIf:",
		"abc:def",
		"a b c :",
		"[a]:",
		"[[a][b]]u:",
		"  [ xa rul ] : ",
	}

	for _, seq := range valid {
		t.Run(seq, func(t *testing.T) {
			assert.NoError(t, Validate(seq))
		})
	}
}

func TestValidate_UnmatchedClosingBracket_ReportsPosition(t *testing.T) {
	tests := []struct {
		seq      string
		position int
	}{
		{"]", 0},
		{"a]:", 1},
		{"[a]]b:", 3},
		{"[]]:", 2},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			err := Validate(tt.seq)
			require.Error(t, err)

			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr))
			assert.Equal(t, tt.position, synErr.Position)
			assert.Contains(t, synErr.Message, "unmatched ']'")
		})
	}
}

func TestValidate_UnmatchedOpeningBracket(t *testing.T) {
	for _, seq := range []string{"[:", "[a:", "[[a]b:"} {
		t.Run(seq, func(t *testing.T) {
			err := Validate(seq)
			require.Error(t, err)

			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr))
			assert.Contains(t, synErr.Message, "unmatched '['")
		})
	}
}

func TestValidate_MissingCleanupMarker(t *testing.T) {
	err := Validate("abc")
	require.Error(t, err)

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, -1, synErr.Position)
	assert.Contains(t, synErr.Message, "cleanup marker")
}

func TestValidate_CleanupMustTrailWhenBracketsPresent(t *testing.T) {
	// With brackets the cleanup part has to come last at top level.
	for _, seq := range []string{"[a]:u", "a:[b]", "[a:]"} {
		t.Run(seq, func(t *testing.T) {
			err := Validate(seq)
			require.Error(t, err)

			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr))
			assert.Contains(t, synErr.Message, "cleanup part")
		})
	}

	// Trailing whitespace after the marker is fine.
	assert.NoError(t, Validate("[a]:  "))
}

func TestSyntaxError_Message(t *testing.T) {
	withPos := &SyntaxError{Position: 4, Message: "unmatched ']'"}
	assert.Equal(t, "position 4: unmatched ']'", withPos.Error())

	wholeSequence := &SyntaxError{Position: -1, Message: "cleanup marker ':' not present in the sequence"}
	assert.Equal(t, "cleanup marker ':' not present in the sequence", wholeSequence.Error())
}
