package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cameel/solc-seqbench/internal/engine"
	"github.com/cameel/solc-seqbench/internal/sequence"
	"github.com/cameel/solc-seqbench/internal/snapshot"
	"github.com/cameel/solc-seqbench/internal/solc"
	"github.com/cameel/solc-seqbench/internal/store"
)

// OptimizeOptions holds flags for the optimize command.
type OptimizeOptions struct {
	*RootOptions
	OutputDir  string
	SolcBinary string
	Database   string
}

// NewOptimizeCommand creates the optimize command.
func NewOptimizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OptimizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "optimize <file.yul> <sequence>",
		Short: "Interpret a sequence and snapshot every step",
		Long: `Interpret an optimizer-step sequence against a Yul source, invoking the
compiler once per effective step and writing three snapshot files per step
(optimized IR, bytecode, metadata) into the output directory.

Example:
  seqbench optimize counter.yul 'dhfoDgvulfnTUtnIf [xa[r]EscLM cCTUtTOntnfDIul] jmul[jul] VcTOcul jmul :'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", ".", "directory for snapshot files")
	cmd.Flags().StringVar(&opts.SolcBinary, "solc-binary", "solc", "compiler binary to invoke")
	cmd.Flags().StringVar(&opts.Database, "db", "", "optional SQLite database recording run history")

	return cmd
}

func runOptimize(opts *OptimizeOptions, yulFile, seq string, cmd *cobra.Command) error {
	if filepath.Ext(yulFile) != ".yul" {
		return NewExitError(ExitCommandError, "input file must have the .yul extension")
	}
	if err := sequence.Validate(seq); err != nil {
		return WrapExitError(ExitCommandError, "invalid sequence", err)
	}

	base := strings.TrimSuffix(filepath.Base(yulFile), ".yul")
	writer, err := snapshot.NewWriter(opts.OutputDir, base)
	if err != nil {
		return WrapExitError(ExitCommandError, "prepare output directory", err)
	}

	driver := solc.NewDriver(opts.SolcBinary, yulFile)
	interpreter := engine.New(seq, driver)

	slog.Info("run starting", "yul_file", yulFile, "output_dir", opts.OutputDir)
	startedAt := time.Now()

	var recorded []store.SnapshotRow
	count := 0
	runErr := interpreter.Run(cmd.Context(), func(snap engine.Snapshot) error {
		if err := writer.Write(snap); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s | %s\n", snap.Prefix, snap.Status)
		count++

		if opts.Database != "" {
			recorded = append(recorded, store.SnapshotRow{
				Index:           snap.Index,
				Step:            snap.Step,
				Status:          string(snap.Status),
				Prefix:          snap.Prefix,
				CompilationTime: snap.CPUTime,
				BytecodeSize:    len(snap.Bytecode) / 2,
			})
		}
		return nil
	})
	if runErr != nil {
		return WrapExitError(ExitFailure, "optimization run failed", runErr)
	}

	if opts.Database != "" {
		if err := recordRun(opts, cmd, yulFile, seq, startedAt, recorded); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d snapshots to %s\n", count, opts.OutputDir)
	return nil
}

func recordRun(opts *OptimizeOptions, cmd *cobra.Command, yulFile, seq string, startedAt time.Time, snapshots []store.SnapshotRow) error {
	s, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "open history database", err)
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	run := store.Run{
		ID:            store.NewRunID(),
		YulFile:       yulFile,
		Sequence:      seq,
		CreatedAt:     startedAt,
		SnapshotCount: len(snapshots),
	}
	if err := s.RecordRun(cmd.Context(), run, snapshots); err != nil {
		return WrapExitError(ExitFailure, "record run history", err)
	}
	slog.Info("run recorded", "run_id", run.ID, "snapshots", len(snapshots))
	return nil
}
