package store

import (
	"context"
	"fmt"
	"time"
)

// RecordRun inserts a run and its snapshots in one transaction. The insert is
// idempotent on run ID: recording the same run twice is silently ignored.
func (s *Store) RecordRun(ctx context.Context, run Run, snapshots []SnapshotRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed.

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, yul_file, sequence, created_at, snapshot_count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.YulFile,
		run.Sequence,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.SnapshotCount,
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}
	if inserted == 0 {
		// Run already recorded; its snapshots are too.
		return nil
	}

	for _, snap := range snapshots {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO snapshots (run_id, idx, step, status, prefix, compilation_time, bytecode_size)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			snap.Index,
			snap.Step,
			snap.Status,
			snap.Prefix,
			snap.CompilationTime,
			snap.BytecodeSize,
		)
		if err != nil {
			return fmt.Errorf("record snapshot %d of run %s: %w", snap.Index, run.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record run %s: commit: %w", run.ID, err)
	}
	return nil
}
