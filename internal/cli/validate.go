package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameel/solc-seqbench/internal/sequence"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool   `json:"valid"`
	Position *int   `json:"position,omitempty"`
	Message  string `json:"message,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <sequence>",
		Short: "Validate a sequence without executing it",
		Long: `Statically validate an optimizer-step sequence: bracket balance and the
cleanup-marker rule. Nothing is compiled.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, seq string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	err := sequence.Validate(seq)
	if err == nil {
		if formatter.Format == "json" {
			return formatter.Success(ValidationResult{Valid: true})
		}
		fmt.Fprintln(formatter.Writer, "Sequence is valid")
		return nil
	}

	if formatter.Format == "json" {
		result := ValidationResult{Valid: false, Message: err.Error()}
		var synErr *sequence.SyntaxError
		if errors.As(err, &synErr) && synErr.Position >= 0 {
			position := synErr.Position
			result.Position = &position
		}
		_ = formatter.Success(result)
	} else {
		_ = formatter.Error(err.Error())
	}
	return WrapExitError(ExitFailure, "invalid sequence", err)
}
