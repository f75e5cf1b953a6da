package cast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExecutionRecord is the on-disk JSON result of executing one snapshot's
// bytecode. RuntimeGas is null when any call reverted.
type ExecutionRecord struct {
	File            string `json:"file"`
	BytecodeSize    int    `json:"bytecode_size"`
	CreationGas     int64  `json:"creation_gas"`
	RuntimeGas      *int64 `json:"runtime_gas"`
	ExecutionStatus string `json:"execution_status"`
}

// ExecuteDir deploys every .bin snapshot in binDir (in name order, which is
// index order) and runs the call list against each, writing one
// <stem>.json record per snapshot into outDir.
//
// Calls run in definition order and their gas is summed; the first revert
// stops the call loop for that snapshot and leaves runtime gas unset.
func ExecuteDir(ctx context.Context, client *Client, binDir string, calls []Call, outDir string) error {
	entries, err := os.ReadDir(binDir)
	if err != nil {
		return fmt.Errorf("read bytecode directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".bin" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := executeOne(ctx, client, filepath.Join(binDir, name), calls)
		if err != nil {
			return fmt.Errorf("execute %s: %w", name, err)
		}

		outFile := filepath.Join(outDir, strings.TrimSuffix(name, ".bin")+".json")
		encoded, err := json.MarshalIndent(record, "", "    ")
		if err != nil {
			return fmt.Errorf("encode execution record: %w", err)
		}
		if err := os.WriteFile(outFile, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("write execution record: %w", err)
		}
		slog.Info("snapshot executed", "file", name, "status", record.ExecutionStatus)
	}
	return nil
}

func executeOne(ctx context.Context, client *Client, binFile string, calls []Call) (ExecutionRecord, error) {
	raw, err := os.ReadFile(binFile)
	if err != nil {
		return ExecutionRecord{}, err
	}
	bytecode := strings.TrimSpace(string(raw))
	if len(bytecode)%2 != 0 {
		return ExecutionRecord{}, fmt.Errorf("invalid bytecode: odd number of hexadecimal digits")
	}
	if strings.HasPrefix(bytecode, "0x") {
		return ExecutionRecord{}, fmt.Errorf("expected hex-encoded bytecode without 0x prefix")
	}

	creation, err := client.Deploy(ctx, bytecode)
	if err != nil {
		return ExecutionRecord{}, err
	}
	creationGas, err := creation.GasUsed()
	if err != nil {
		return ExecutionRecord{}, err
	}

	record := ExecutionRecord{
		File:            filepath.Base(binFile),
		BytecodeSize:    len(bytecode) / 2,
		CreationGas:     creationGas,
		ExecutionStatus: StatusSuccess,
	}

	var runtimeGas int64
	for _, call := range calls {
		receipt, revert, err := client.Call(ctx, creation.ContractAddress, call)
		if err != nil {
			return ExecutionRecord{}, err
		}
		if revert != "" {
			record.ExecutionStatus = revert
			record.RuntimeGas = nil
			return record, nil
		}
		gas, err := receipt.GasUsed()
		if err != nil {
			return ExecutionRecord{}, err
		}
		runtimeGas += gas
	}
	record.RuntimeGas = &runtimeGas
	return record, nil
}
