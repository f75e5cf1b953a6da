package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameel/solc-seqbench/internal/cast"
)

// ExecuteOptions holds flags for the execute command.
type ExecuteOptions struct {
	*RootOptions
	OutputDir  string
	PrivateKey string
	CastBinary string
}

// NewExecuteCommand creates the execute command.
func NewExecuteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExecuteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "execute <bin-dir> <calls-file>",
		Short: "Deploy and call every bytecode snapshot",
		Long: `Deploy each .bin snapshot in bin-dir against a local EVM node through
foundry's cast and run the YAML-defined call list against it, writing one
execution record per snapshot. Gas is summed across calls; the first revert
stops the call loop for that snapshot.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecute(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", ".", "directory for execution records")
	cmd.Flags().StringVar(&opts.PrivateKey, "private-key", "", "private key signing the transactions (required)")
	cmd.Flags().StringVar(&opts.CastBinary, "cast-binary", "cast", "cast binary to invoke")
	_ = cmd.MarkFlagRequired("private-key")

	return cmd
}

func runExecute(opts *ExecuteOptions, binDir, callsFile string, cmd *cobra.Command) error {
	calls, err := cast.LoadCalls(callsFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "load call definitions", err)
	}

	client := cast.NewClient(opts.CastBinary, opts.PrivateKey)
	if err := cast.ExecuteDir(cmd.Context(), client, binDir, calls, opts.OutputDir); err != nil {
		return WrapExitError(ExitFailure, "execution failed", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Execution records written to %s\n", opts.OutputDir)
	return nil
}
