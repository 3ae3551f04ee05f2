package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/valuestats/internal/core/ports"
)

// Metric selects which number a history command is turned into.
type Metric string

const (
	// MetricWords samples the number of words of each command, its name included.
	MetricWords Metric = "words"
	// MetricLength samples the number of non-whitespace characters of each command.
	MetricLength Metric = "length"
)

// ParseMetric accepts "words" (also the empty string) or "length".
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(s))) {
	case MetricWords, "":
		return MetricWords, nil
	case MetricLength:
		return MetricLength, nil
	}
	return "", fmt.Errorf("unknown history metric %q (want words or length)", s)
}

/*
HistoryProvider samples shell command history: every recent command yields one
sample computed by its Metric.
It implements the ports.SampleSource interface.
*/
type HistoryProvider struct {
	Shell            string
	HistoryFile      string // Absolute path, empty when no file was found
	ScanLimit        int
	Metric           Metric
	cmdExecutor      ports.CommandExecutor
	analyzer         ports.CommandAnalyzer
	sourceIdentifier string
}

// NewHistoryProvider creates a history sample source for the current $SHELL.
// A scanLimit <= 0 falls back to $HISTSIZE, then to 500 entries.
// It panics if cmdExecutor, fileFinder or analyzer are nil.
func NewHistoryProvider(
	cmdExecutor ports.CommandExecutor,
	fileFinder ports.HistoryFileFinder,
	analyzer ports.CommandAnalyzer,
	scanLimit int,
	metric Metric,
) (*HistoryProvider, error) {
	if cmdExecutor == nil {
		panic("cmdExecutor cannot be nil")
	}
	if fileFinder == nil {
		panic("fileFinder cannot be nil")
	}
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if metric == "" {
		metric = MetricWords
	}

	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return nil, fmt.Errorf("SHELL environment variable not set")
	}
	shellName := strings.ToLower(filepath.Base(shellPath))

	histFilePath, err := fileFinder.Find()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not automatically find a history file: %v\n", err)
		return &HistoryProvider{
			Shell:            shellName,
			ScanLimit:        determineScanCount(scanLimit),
			Metric:           metric,
			cmdExecutor:      cmdExecutor,
			analyzer:         analyzer,
			sourceIdentifier: fmt.Sprintf("Shell: %s (history file not found or configured)", shellName),
		}, nil
	}

	return &HistoryProvider{
		Shell:            shellName,
		HistoryFile:      histFilePath,
		ScanLimit:        determineScanCount(scanLimit),
		Metric:           metric,
		cmdExecutor:      cmdExecutor,
		analyzer:         analyzer,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(histFilePath)),
	}, nil
}

// SourceIdentifier implements the ports.SampleSource interface.
func (hp *HistoryProvider) SourceIdentifier() string {
	if hp.sourceIdentifier != "" {
		return hp.sourceIdentifier
	}
	if hp.HistoryFile != "" {
		return fmt.Sprintf("File: %s", toUserFriendlyPath(hp.HistoryFile))
	}
	return fmt.Sprintf("Shell: %s (history file path unknown)", hp.Shell)
}

// Samples implements the ports.SampleSource interface.
func (hp *HistoryProvider) Samples(ctx context.Context) ([]int, error) {
	if hp.HistoryFile == "" {
		return nil, fmt.Errorf("history file not found or configured for shell %s", hp.Shell)
	}

	pipeline, err := buildTailPipeline(hp.HistoryFile, hp.ScanLimit)
	if err != nil {
		return nil, fmt.Errorf("building shell pipeline: %w", err)
	}

	// The executor error already carries the command's stderr.
	stdout, _, err := hp.cmdExecutor.Execute(ctx, hp.Shell, pipeline)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return hp.measure(stdout), nil
}
