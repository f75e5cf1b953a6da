package store

import (
	"context"
	"fmt"
	"time"
)

// ListRuns returns all recorded runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, yul_file, sequence, created_at, snapshot_count
		FROM runs
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.YulFile, &run.Sequence, &createdAt, &run.SnapshotCount); err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list runs: parse created_at %q: %w", createdAt, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// RunSnapshots returns the stored snapshots of one run in index order.
func (s *Store) RunSnapshots(ctx context.Context, runID string) ([]SnapshotRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, step, status, prefix, compilation_time, bytecode_size
		FROM snapshots
		WHERE run_id = ?
		ORDER BY idx
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("run snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []SnapshotRow
	for rows.Next() {
		var snap SnapshotRow
		if err := rows.Scan(&snap.Index, &snap.Step, &snap.Status, &snap.Prefix, &snap.CompilationTime, &snap.BytecodeSize); err != nil {
			return nil, fmt.Errorf("run snapshots: scan: %w", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run snapshots: %w", err)
	}
	return snapshots, nil
}
