package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/valuestats/internal/adapters/config"
	"github.com/AntonioJCosta/valuestats/internal/adapters/render"
	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
	"github.com/AntonioJCosta/valuestats/internal/core/ports"
	"github.com/AntonioJCosta/valuestats/internal/handlers/ui"
)

type outputFlags struct {
	order          frequency.Order
	format         string
	lineTerminator string
}

// addOutputFlags registers --order, --format and --eol on cmd.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("order", "", "Row order: value or occurrence (default from config, else value).")
	cmd.Flags().String("format", "", "Output format: text, table or prometheus (default from config, else text).")
	cmd.Flags().String("eol", "", "Line terminator for text output: lf, crlf or native (default from config, else native).")
}

// addSkipInvalidFlag registers --skip-invalid on cmd.
func addSkipInvalidFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-invalid", false, "Warn about and skip samples that are not integers instead of failing.")
}

// stringSetting returns the flag value when it was set on the command line, else fallback.
func stringSetting(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

func skipInvalidSetting(cmd *cobra.Command, cfg config.Config) bool {
	if cmd.Flags().Changed("skip-invalid") {
		v, _ := cmd.Flags().GetBool("skip-invalid")
		return v
	}
	return cfg.SkipInvalid
}

func parseOutputFlags(cmd *cobra.Command, cfg config.Config) (outputFlags, error) {
	order, err := frequency.ParseOrder(stringSetting(cmd, "order", cfg.Order))
	if err != nil {
		return outputFlags{}, err
	}
	eol, err := config.ParseLineTerminator(stringSetting(cmd, "eol", cfg.LineTerminator))
	if err != nil {
		return outputFlags{}, err
	}
	return outputFlags{
		order:          order,
		format:         stringSetting(cmd, "format", cfg.Format),
		lineTerminator: eol,
	}, nil
}

// collect builds a table from source, closing the source afterwards when it holds a connection.
func collect(cmd *cobra.Command, state *appState, source ports.SampleSource, eol string) (*frequency.Table, error) {
	if c, ok := source.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor(fmt.Sprintf("Warning: could not close %s: %v", source.SourceIdentifier(), err)))
			}
		}()
	}
	svc := state.deps.NewStatisticsService(frequency.WithLineTerminator(eol))
	table, err := svc.Collect(cmd.Context(), source)
	if err != nil {
		return nil, fmt.Errorf("could not collect samples: %w", err)
	}
	return table, nil
}

// collectAndRender is the shared body of dump, history and redis.
func collectAndRender(cmd *cobra.Command, state *appState, source ports.SampleSource) error {
	flags, err := parseOutputFlags(cmd, state.cfg)
	if err != nil {
		return err
	}
	renderer, err := render.New(flags.format)
	if err != nil {
		return err
	}

	table, err := collect(cmd, state, source, flags.lineTerminator)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	if table.TotalSamples() == 0 {
		fmt.Fprintln(errOut, ui.InfoColor("No samples found."))
		fmt.Fprintln(errOut, ui.DetailColor(fmt.Sprintf("Context: %s", source.SourceIdentifier())))
		return nil
	}

	if err := renderer.Render(cmd.OutOrStdout(), table, flags.order); err != nil {
		return fmt.Errorf("could not render statistics: %w", err)
	}
	fmt.Fprintln(errOut, ui.DetailColor(fmt.Sprintf("(Source: %s; %d samples, %d distinct values)",
		source.SourceIdentifier(), table.TotalSamples(), table.ValuesCount())))
	return nil
}

// fileArg returns the sample file argument, stdin when omitted.
func fileArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
