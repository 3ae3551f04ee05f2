package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/valuestats/internal/adapters/redissource"
)

// NewRedisCommand creates the 'redis' subcommand.
func NewRedisCommand(state *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redis",
		Short: "Count the integer elements of a Redis list.",
		Long:  `Reads every element of the Redis list --key and counts them as integer samples.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRedisCmd(cmd, args, state)
		},
	}
	cmd.Flags().StringP("key", "k", "", "Redis list key holding the samples.")
	cmd.Flags().String("addr", "", "Redis address host:port (default from config, else 127.0.0.1:6379).")
	cmd.Flags().String("password", "", "Redis password (default from config).")
	cmd.Flags().Int("db", 0, "Redis database (default from config, else 0).")
	cmd.Flags().Int64("batch", redissource.DefaultBatchSize, "Elements fetched per LRANGE call.")
	_ = cmd.MarkFlagRequired("key")
	addOutputFlags(cmd)
	addSkipInvalidFlag(cmd)
	return cmd
}

func runRedisCmd(cmd *cobra.Command, _ []string, state *appState) error {
	if state.deps.NewRedisSource == nil {
		return fmt.Errorf("redis source not initialized for command %s", cmd.Name())
	}

	key, _ := cmd.Flags().GetString("key")
	batch, _ := cmd.Flags().GetInt64("batch")
	opts := redissource.Options{
		Addr:      stringSetting(cmd, "addr", state.cfg.Redis.Addr),
		Password:  stringSetting(cmd, "password", state.cfg.Redis.Password),
		DB:        state.cfg.Redis.DB,
		BatchSize: batch,
	}
	if cmd.Flags().Changed("db") {
		opts.DB, _ = cmd.Flags().GetInt("db")
	}

	source, err := state.deps.NewRedisSource(opts, key, skipInvalidSetting(cmd, state.cfg))
	if err != nil {
		return fmt.Errorf("could not initialize redis source: %w", err)
	}
	return collectAndRender(cmd, state, source)
}
