package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cameel/solc-seqbench/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
}

// RunSummary is the JSON shape of one listed run.
type RunSummary struct {
	ID            string `json:"id"`
	YulFile       string `json:"yul_file"`
	Sequence      string `json:"sequence"`
	CreatedAt     string `json:"created_at"`
	SnapshotCount int    `json:"snapshot_count"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded optimize runs",
		Long: `List the optimize runs recorded in the history database, most recent
first. Runs are recorded by passing --db to the optimize command.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the history database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	s, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "open history database", err)
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runs, err := s.ListRuns(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "list runs", err)
	}

	if opts.Format == "json" {
		summaries := make([]RunSummary, 0, len(runs))
		for _, run := range runs {
			summaries = append(summaries, RunSummary{
				ID:            run.ID,
				YulFile:       run.YulFile,
				Sequence:      run.Sequence,
				CreatedAt:     run.CreatedAt.Format(time.RFC3339),
				SnapshotCount: run.SnapshotCount,
			})
		}
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(summaries)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-20s %3d snapshots  %s\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.YulFile,
			run.SnapshotCount,
			run.Sequence,
		)
	}
	return nil
}
