package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the 'history' subcommand.
func NewHistoryCommand(state *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show how long your recent shell commands are.",
		Long: `Scans recent entries of your shell history file (HISTFILE, ~/.zsh_history
or ~/.bash_history) and counts commands by their number of words (--metric words)
or by their number of non-blank characters (--metric length).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryCmd(cmd, args, state)
		},
	}
	cmd.Flags().StringP("metric", "m", "", "Sample per command: words or length (default from config, else words).")
	cmd.Flags().IntP("scan-limit", "s", 0, "Number of recent history entries to scan (default from config, $HISTSIZE, else 500).")
	addOutputFlags(cmd)
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string, state *appState) error {
	if state.deps.NewHistorySource == nil {
		return fmt.Errorf("history source not initialized for command %s", cmd.Name())
	}
	scanLimit := state.cfg.History.ScanLimit
	if cmd.Flags().Changed("scan-limit") {
		scanLimit, _ = cmd.Flags().GetInt("scan-limit")
	}

	metric := stringSetting(cmd, "metric", state.cfg.History.Metric)

	source, err := state.deps.NewHistorySource(scanLimit, metric)
	if err != nil {
		return fmt.Errorf("could not initialize history source: %w", err)
	}
	return collectAndRender(cmd, state, source)
}
