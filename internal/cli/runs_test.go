package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameel/solc-seqbench/internal/store"
)

func seedRun(t *testing.T, dbPath string) store.Run {
	t.Helper()

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	run := store.Run{
		ID:            store.NewRunID(),
		YulFile:       "counter.yul",
		Sequence:      "ab:",
		CreatedAt:     time.Now(),
		SnapshotCount: 3,
	}
	require.NoError(t, s.RecordRun(context.Background(), run, []store.SnapshotRow{
		{Index: 0, Status: "success", Prefix: ""},
		{Index: 1, Step: "a", Status: "success", Prefix: "a"},
		{Index: 2, Step: "b", Status: "success", Prefix: "ab"},
	}))
	return run
}

func TestRunsCommand_Text(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	run := seedRun(t, dbPath)

	stdout, _, err := executeCommand(t, "runs", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, run.ID)
	assert.Contains(t, stdout, "counter.yul")
	assert.Contains(t, stdout, "3 snapshots")
}

func TestRunsCommand_JSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	run := seedRun(t, dbPath)

	stdout, _, err := executeCommand(t, "--format", "json", "runs", "--db", dbPath)
	require.NoError(t, err)

	var response struct {
		Status string       `json:"status"`
		Data   []RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &response))
	assert.Equal(t, "ok", response.Status)
	require.Len(t, response.Data, 1)
	assert.Equal(t, run.ID, response.Data[0].ID)
	assert.Equal(t, "ab:", response.Data[0].Sequence)
	assert.Equal(t, 3, response.Data[0].SnapshotCount)
}

func TestRunsCommand_EmptyHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	stdout, _, err := executeCommand(t, "runs", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No runs recorded")
}

func TestRunsCommand_RequiresDatabase(t *testing.T) {
	_, _, err := executeCommand(t, "runs")
	assert.Error(t, err)
}
