package cast

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCast writes a shell script standing in for the cast binary. It prints
// a canned receipt, except when the call signature is "fail()", where it
// reproduces the node's execution-reverted stderr signature.
func fakeCast(t *testing.T) string {
	t.Helper()

	script := `#!/bin/sh
for arg in "$@"; do
	if [ "$arg" = "fail()" ]; then
		echo 'server returned an error response: (code: 3, message: execution reverted, data: Some(String("0x")))' >&2
		exit 1
	fi
done
echo '{"contractAddress":"0x1111111111111111111111111111111111111111","cumulativeGasUsed":"0x5208"}'
`
	path := filepath.Join(t.TempDir(), "fake-cast")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func writeBin(t *testing.T, dir, name, bytecode string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(bytecode), 0o644))
}

func readRecord(t *testing.T, path string) ExecutionRecord {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var record ExecutionRecord
	require.NoError(t, json.Unmarshal(raw, &record))
	return record
}

func TestExecuteDir_Success(t *testing.T) {
	binDir := t.TempDir()
	outDir := t.TempDir()
	writeBin(t, binDir, "counter-step-00000.bin", "60806040")
	writeBin(t, binDir, "counter-step-00001-u.bin", "608060")

	client := NewClient(fakeCast(t), "0xkey")
	calls := []Call{{Sig: "increment()"}, {Sig: "increment()"}}

	require.NoError(t, ExecuteDir(context.Background(), client, binDir, calls, outDir))

	record := readRecord(t, filepath.Join(outDir, "counter-step-00000.json"))
	assert.Equal(t, "counter-step-00000.bin", record.File)
	assert.Equal(t, 4, record.BytecodeSize)
	assert.Equal(t, int64(21000), record.CreationGas)
	require.NotNil(t, record.RuntimeGas)
	assert.Equal(t, int64(42000), *record.RuntimeGas)
	assert.Equal(t, StatusSuccess, record.ExecutionStatus)

	assert.FileExists(t, filepath.Join(outDir, "counter-step-00001-u.json"))
}

func TestExecuteDir_RevertStopsCallLoop(t *testing.T) {
	binDir := t.TempDir()
	outDir := t.TempDir()
	writeBin(t, binDir, "counter-step-00000.bin", "60806040")

	client := NewClient(fakeCast(t), "0xkey")
	calls := []Call{{Sig: "fail()"}, {Sig: "increment()"}}

	require.NoError(t, ExecuteDir(context.Background(), client, binDir, calls, outDir))

	record := readRecord(t, filepath.Join(outDir, "counter-step-00000.json"))
	assert.Equal(t, StatusExecutionReverted, record.ExecutionStatus)
	assert.Nil(t, record.RuntimeGas)
}

func TestExecuteDir_RejectsBadBytecode(t *testing.T) {
	client := NewClient(fakeCast(t), "0xkey")

	t.Run("odd digit count", func(t *testing.T) {
		binDir := t.TempDir()
		writeBin(t, binDir, "counter-step-00000.bin", "608")

		err := ExecuteDir(context.Background(), client, binDir, []Call{{Sig: "f()"}}, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "odd number")
	})

	t.Run("0x prefix", func(t *testing.T) {
		binDir := t.TempDir()
		writeBin(t, binDir, "counter-step-00000.bin", "0x6080")

		err := ExecuteDir(context.Background(), client, binDir, []Call{{Sig: "f()"}}, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0x prefix")
	})
}

func TestExecuteDir_IgnoresOtherFiles(t *testing.T) {
	binDir := t.TempDir()
	outDir := t.TempDir()
	writeBin(t, binDir, "counter-step-00000.yul", "object { }")
	writeBin(t, binDir, "counter-step-00000.json", "{}")

	client := NewClient(fakeCast(t), "0xkey")
	require.NoError(t, ExecuteDir(context.Background(), client, binDir, []Call{{Sig: "f()"}}, outDir))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReceipt_GasUsed(t *testing.T) {
	gas, err := Receipt{CumulativeGasUsed: "0x5208"}.GasUsed()
	require.NoError(t, err)
	assert.Equal(t, int64(21000), gas)

	_, err = Receipt{CumulativeGasUsed: "bogus"}.GasUsed()
	assert.Error(t, err)
}
