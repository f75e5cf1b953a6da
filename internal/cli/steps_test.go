package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsCommand_Text(t *testing.T) {
	stdout, _, err := executeCommand(t, "steps")
	require.NoError(t, err)

	assert.Contains(t, stdout, "a  SSATransform")
	assert.Contains(t, stdout, "u  UnusedPruner")
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 33)
}

func TestStepsCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "--format", "json", "steps")
	require.NoError(t, err)

	var response struct {
		Status string     `json:"status"`
		Data   []StepInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Len(t, response.Data, 33)
	assert.Equal(t, StepInfo{Letter: "C", Pass: "ConditionalSimplifier"}, response.Data[0])
}
