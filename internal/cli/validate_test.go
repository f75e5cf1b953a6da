package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	stdout, _, err := executeCommand(t, "validate", "dhfo[xa[r]E]:")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sequence is valid")
}

func TestValidateCommand_Invalid(t *testing.T) {
	stdout, _, err := executeCommand(t, "validate", "a[b:")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Error:")
}

func TestValidateCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "--format", "json", "validate", "ab]:")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var response struct {
		Status string `json:"status"`
		Data   struct {
			Valid    bool   `json:"valid"`
			Position *int   `json:"position"`
			Message  string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &response))
	assert.Equal(t, "ok", response.Status)
	assert.False(t, response.Data.Valid)
	require.NotNil(t, response.Data.Position)
	assert.Equal(t, 2, *response.Data.Position)
	assert.NotEmpty(t, response.Data.Message)
}

func TestValidateCommand_JSONValid(t *testing.T) {
	stdout, _, err := executeCommand(t, "--format", "json", "validate", "ab:")
	require.NoError(t, err)

	var response struct {
		Data struct {
			Valid bool `json:"valid"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &response))
	assert.True(t, response.Data.Valid)
}
