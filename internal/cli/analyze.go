package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cameel/solc-seqbench/internal/cast"
	"github.com/cameel/solc-seqbench/internal/report"
	"github.com/cameel/solc-seqbench/internal/snapshot"
)

// AnalyzeOptions holds flags for the analyze command.
type AnalyzeOptions struct {
	*RootOptions
	OutputFile string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "analyze <snapshot-dir> <execution-dir>",
		Short: "Join snapshots with execution records into a table",
		Long: `Join the snapshot metadata in snapshot-dir with the execution records in
execution-dir on snapshot index and render the comparison table. Snapshots
without an execution record keep their row with the gas columns absent.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.OutputFile, "output", "", "write the table to a file instead of stdout")

	return cmd
}

func runAnalyze(opts *AnalyzeOptions, snapshotDir, executionDir string, cmd *cobra.Command) error {
	snapshots, err := snapshot.ReadDir(snapshotDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "load snapshots", err)
	}
	if len(snapshots) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no snapshots found in %s", snapshotDir))
	}

	executions, err := loadExecutionRecords(executionDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "load execution records", err)
	}

	rows, err := report.Build(snapshots, executions)
	if err != nil {
		return WrapExitError(ExitFailure, "build report", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.OutputFile != "" {
		file, err := os.Create(opts.OutputFile)
		if err != nil {
			return WrapExitError(ExitCommandError, "create output file", err)
		}
		defer file.Close()
		out = file
	}

	if opts.Format == "json" {
		err = report.RenderJSON(out, rows)
	} else {
		err = report.RenderText(out, rows)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "render report", err)
	}
	return nil
}

// loadExecutionRecords reads every execution record in dir. A missing
// directory is not an error: analysis without execution data is legitimate
// and simply leaves the gas columns empty.
func loadExecutionRecords(dir string) ([]cast.ExecutionRecord, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []cast.ExecutionRecord
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var record cast.ExecutionRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Name(), err)
		}
		records = append(records, record)
	}
	return records, nil
}
