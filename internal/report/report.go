// Package report joins snapshot metadata with execution records into one
// table, keyed by snapshot index, and renders it for humans or machines.
package report

import (
	"fmt"

	"github.com/cameel/solc-seqbench/internal/cast"
	"github.com/cameel/solc-seqbench/internal/sequence"
	"github.com/cameel/solc-seqbench/internal/snapshot"
)

// Row is one line of the comparison table. Pointer fields are absent when
// the snapshot has no execution record, which happens for steps whose
// compilation overflowed or when execution stopped early.
type Row struct {
	Index           int     `json:"index"`
	Step            string  `json:"step,omitempty"`
	PassName        string  `json:"pass_name,omitempty"`
	Prefix          string  `json:"prefix"`
	Status          string  `json:"status"`
	CompilationTime float64 `json:"compilation_time"`
	BytecodeSize    *int    `json:"bytecode_size,omitempty"`
	CreationGas     *int64  `json:"creation_gas,omitempty"`
	RuntimeGas      *int64  `json:"runtime_gas,omitempty"`
	ExecutionStatus string  `json:"execution_status,omitempty"`
}

// Build joins snapshot metadata with execution records. The execution
// record's snapshot index is re-derived from its file name; records whose
// names do not follow the snapshot naming scheme are an error, since the
// join would silently drop them otherwise.
func Build(snapshots []snapshot.Metadata, executions []cast.ExecutionRecord) ([]Row, error) {
	byIndex := make(map[int]cast.ExecutionRecord, len(executions))
	for _, execution := range executions {
		parts, ok := snapshot.ParseBinName(execution.File)
		if !ok {
			return nil, fmt.Errorf("unrecognized execution record file name %q", execution.File)
		}
		byIndex[parts.Index] = execution
	}

	rows := make([]Row, 0, len(snapshots))
	for _, meta := range snapshots {
		row := Row{
			Index:           meta.Index,
			Prefix:          meta.Prefix,
			Status:          meta.Status,
			CompilationTime: meta.CompilationTime,
		}
		if meta.Step != nil {
			row.Step = *meta.Step
			if name, ok := sequence.PassName((*meta.Step)[0]); ok {
				row.PassName = name
			}
		}

		if execution, ok := byIndex[meta.Index]; ok {
			size := execution.BytecodeSize
			creation := execution.CreationGas
			row.BytecodeSize = &size
			row.CreationGas = &creation
			row.RuntimeGas = execution.RuntimeGas
			row.ExecutionStatus = execution.ExecutionStatus
		}
		rows = append(rows, row)
	}
	return rows, nil
}
