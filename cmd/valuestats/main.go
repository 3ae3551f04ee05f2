package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/AntonioJCosta/valuestats/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/valuestats/internal/adapters/oscommand"
	"github.com/AntonioJCosta/valuestats/internal/adapters/redissource"
	"github.com/AntonioJCosta/valuestats/internal/adapters/samples"
	"github.com/AntonioJCosta/valuestats/internal/core/ports"
	"github.com/AntonioJCosta/valuestats/internal/core/services/statistics"
	"github.com/AntonioJCosta/valuestats/internal/handlers/cli"
	"github.com/AntonioJCosta/valuestats/internal/repositories/history"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmdExec := oscommand.NewOSCommandExecutor()
	historyFileFinder := history.NewDefaultHistoryFileFinder()
	cmdAnalyzer := commandanalysis.NewBasicAnalyzer()

	deps := cli.Dependencies{
		NewStatisticsService: statistics.NewService,
		NewFileSource:        samples.NewFileSource,
		NewHistorySource: func(scanLimit int, metric string) (ports.SampleSource, error) {
			m, err := history.ParseMetric(metric)
			if err != nil {
				return nil, err
			}
			hp, err := history.NewHistoryProvider(cmdExec, historyFileFinder, cmdAnalyzer, scanLimit, m)
			if err != nil {
				return nil, err
			}
			return hp, nil
		},
		NewRedisSource: func(opts redissource.Options, key string, skipInvalid bool) (ports.SampleSource, error) {
			src, err := redissource.NewListSource(opts, key, skipInvalid)
			if err != nil {
				return nil, err
			}
			return src, nil
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand(Version, deps)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
