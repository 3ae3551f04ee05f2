package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/valuestats/internal/adapters/config"
	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
	"github.com/AntonioJCosta/valuestats/internal/handlers/ui"
)

// NewQueryCommand creates the 'query' subcommand.
func NewQueryCommand(state *appState) *cobra.Command {
	var values []int

	cmd := &cobra.Command{
		Use:   "query [file|-]",
		Short: "Show the count and percentage of specific values.",
		Long: `Reads samples like 'dump' does, then reports the number of distinct values,
the total number of samples, and the count and percentage of each --value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCmd(cmd, args, state, values)
		},
	}
	cmd.Flags().IntSliceVarP(&values, "value", "v", nil, "Value to look up (repeatable or comma-separated).")
	addSkipInvalidFlag(cmd)
	return cmd
}

func runQueryCmd(cmd *cobra.Command, args []string, state *appState, values []int) error {
	if state.deps.NewFileSource == nil {
		return fmt.Errorf("file source not initialized for command %s", cmd.Name())
	}
	source, err := state.deps.NewFileSource(fileArg(args), skipInvalidSetting(cmd, state.cfg))
	if err != nil {
		return fmt.Errorf("could not open samples: %w", err)
	}
	eol, err := config.ParseLineTerminator(state.cfg.LineTerminator)
	if err != nil {
		return err
	}
	table, err := collect(cmd, state, source, eol)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor(source.SourceIdentifier()))
	fmt.Fprintf(out, "  distinct values: %s\n", ui.CountColor(table.ValuesCount()))
	fmt.Fprintf(out, "  total samples:   %s\n", ui.CountColor(table.TotalSamples()))
	for _, v := range values {
		fmt.Fprintf(out, "  %s: %s (%s)\n",
			ui.ValueColor(v),
			ui.CountColor(table.CountForValue(v)),
			ui.PercentageColor(formatQueryPercentage(table, v)))
	}
	return nil
}

// formatQueryPercentage renders "n/a" instead of NaN when there are no samples.
func formatQueryPercentage(table *frequency.Table, v int) string {
	if table.TotalSamples() == 0 {
		return "n/a"
	}
	return frequency.FormatPercentage(table.Percentage(v)) + "%"
}
