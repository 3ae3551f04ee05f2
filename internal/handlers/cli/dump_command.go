package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDumpCommand creates the 'dump' subcommand.
func NewDumpCommand(state *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file|-]",
		Short: "Print the frequency of every value read from a file or stdin.",
		Long: `Reads whitespace-separated integers from the given file (or stdin when the
file is omitted or "-") and prints one line per distinct value:

  <value> => <count> (<percentage>%)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDumpCmd(cmd, args, state)
		},
	}
	addOutputFlags(cmd)
	addSkipInvalidFlag(cmd)
	return cmd
}

func runDumpCmd(cmd *cobra.Command, args []string, state *appState) error {
	if state.deps.NewFileSource == nil {
		return fmt.Errorf("file source not initialized for command %s", cmd.Name())
	}
	source, err := state.deps.NewFileSource(fileArg(args), skipInvalidSetting(cmd, state.cfg))
	if err != nil {
		return fmt.Errorf("could not open samples: %w", err)
	}
	return collectAndRender(cmd, state, source)
}
