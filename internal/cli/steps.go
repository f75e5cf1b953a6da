package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameel/solc-seqbench/internal/sequence"
)

// StepInfo pairs a step letter with its optimizer pass name.
type StepInfo struct {
	Letter string `json:"letter"`
	Pass   string `json:"pass"`
}

// NewStepsCommand creates the steps command.
func NewStepsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the step-letter registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(rootOpts, cmd)
		},
	}

	return cmd
}

func runSteps(opts *RootOptions, cmd *cobra.Command) error {
	letters := sequence.Letters()
	steps := make([]StepInfo, 0, len(letters))
	for _, letter := range letters {
		name, _ := sequence.PassName(letter)
		steps = append(steps, StepInfo{Letter: string(letter), Pass: name})
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(steps)
	}

	for _, step := range steps {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", step.Letter, step.Pass)
	}
	return nil
}
