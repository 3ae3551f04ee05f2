package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/valuestats/internal/adapters/config"
	"github.com/AntonioJCosta/valuestats/internal/adapters/redissource"
	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
	"github.com/AntonioJCosta/valuestats/internal/core/ports"
	"github.com/AntonioJCosta/valuestats/internal/handlers/ui"
)

// Dependencies holds the constructors the commands use to build their collaborators.
type Dependencies struct {
	NewStatisticsService func(opts ...frequency.Option) ports.StatisticsService
	NewFileSource        func(path string, skipInvalid bool) (ports.SampleSource, error)
	NewHistorySource     func(scanLimit int, metric string) (ports.SampleSource, error)
	NewRedisSource       func(opts redissource.Options, key string, skipInvalid bool) (ports.SampleSource, error)
}

// appState is shared by all subcommands of one root command.
type appState struct {
	deps Dependencies
	cfg  config.Config
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	if deps.NewStatisticsService == nil {
		panic("NewStatisticsService cannot be nil")
	}
	state := &appState{deps: deps, cfg: config.Default()}

	var configPath string
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "valuestats",
		Short: "valuestats counts integer samples and reports their frequencies.",
		Long: `valuestats reads integer samples from a file, stdin, your shell history
or a Redis list, and prints how often each value occurs.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				ui.DisableColors()
			}
			path := configPath
			if path == "" {
				defaultPath, err := config.DefaultPath()
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor(fmt.Sprintf("Warning: %v. Using default settings.", err)))
					return nil
				}
				path = defaultPath
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("could not load configuration: %w", err)
			}
			state.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML configuration file (default $HOME/.valuestats.yaml).")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output.")

	rootCmd.AddCommand(NewDumpCommand(state))
	rootCmd.AddCommand(NewQueryCommand(state))
	rootCmd.AddCommand(NewHistoryCommand(state))
	rootCmd.AddCommand(NewRedisCommand(state))

	return rootCmd
}
