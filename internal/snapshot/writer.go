package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cameel/solc-seqbench/internal/engine"
)

// Metadata is the on-disk JSON record of one snapshot.
type Metadata struct {
	Status string `json:"status"`
	Prefix string `json:"prefix"`

	// Step is the last applied step letter, null for the baseline.
	Step *string `json:"step"`

	Index           int     `json:"index"`
	CompilationTime float64 `json:"compilation_time"`
}

// Writer persists snapshots into one output directory, append-only by
// monotonically increasing index. It never rewrites a snapshot: the engine
// emits each index exactly once and the writer trusts that.
type Writer struct {
	dir  string
	base string
}

// NewWriter creates the output directory if needed and returns a writer
// naming its files after base.
func NewWriter(dir, base string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Writer{dir: dir, base: base}, nil
}

// Write persists one snapshot: the IR and bytecode files when artifacts are
// present, and the metadata record always.
func (w *Writer) Write(snap engine.Snapshot) error {
	fileBase := filepath.Join(w.dir, FileBase(w.base, snap.Index, snap.Step))

	if snap.HasArtifacts {
		if err := os.WriteFile(fileBase+".yul", []byte(snap.IR), 0o644); err != nil {
			return fmt.Errorf("write IR: %w", err)
		}
		if err := os.WriteFile(fileBase+".bin", []byte(snap.Bytecode), 0o644); err != nil {
			return fmt.Errorf("write bytecode: %w", err)
		}
	}

	meta := Metadata{
		Status:          string(snap.Status),
		Prefix:          snap.Prefix,
		Index:           snap.Index,
		CompilationTime: snap.CPUTime,
	}
	if snap.Step != "" {
		step := snap.Step
		meta.Step = &step
	}

	encoded, err := json.MarshalIndent(meta, "", "    ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(fileBase+".json", append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}
