package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultScanCount = 500

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(filepath.Separator)) {
		return absPath
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// findUserHistoryFile checks HISTFILE first, then the default zsh and bash locations.
func findUserHistoryFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if histFileEnvVal := os.Getenv("HISTFILE"); histFileEnvVal != "" {
		pathToCheck := histFileEnvVal
		if !filepath.IsAbs(pathToCheck) {
			pathToCheck = filepath.Join(homeDir, pathToCheck)
		}
		if _, err := os.Stat(pathToCheck); err == nil {
			return pathToCheck, nil
		}
	}

	potentialPaths := []string{
		filepath.Join(homeDir, ".zsh_history"),
		filepath.Join(homeDir, ".bash_history"),
	}
	for _, p := range potentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("could not automatically find a common shell history file. Please ensure your history file is in a standard location (e.g., ~/.bash_history, ~/.zsh_history) or set the HISTFILE environment variable")
}

// determineScanCount determines how many history entries to scan.
func determineScanCount(scanLimit int) int {
	if scanLimit > 0 {
		return scanLimit
	}
	if histSize, err := strconv.Atoi(os.Getenv("HISTSIZE")); err == nil && histSize > 0 {
		return histSize
	}
	return defaultScanCount
}

// buildTailPipeline constructs the shell pipeline printing the last scanCount history lines.
func buildTailPipeline(historyFilePath string, scanCount int) (string, error) {
	if _, err := os.Stat(historyFilePath); os.IsNotExist(err) {
		return "", fmt.Errorf("history file does not exist: %s", toUserFriendlyPath(historyFilePath))
	}
	if scanCount <= 0 {
		scanCount = defaultScanCount
	}
	return fmt.Sprintf("tail -n %d -- %s", scanCount, shellQuote(historyFilePath)), nil
}

// shellQuote wraps s in single quotes for a POSIX shell, closing and reopening them around embedded quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// historyCommand strips the zsh extended history prefix (": <start>:<elapsed>;").
func historyCommand(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ": ") {
		if _, cmd, found := strings.Cut(line, ";"); found {
			return strings.TrimSpace(cmd)
		}
	}
	return line
}

// measure turns history lines into samples according to hp.Metric, skipping blank lines.
func (hp *HistoryProvider) measure(output string) []int {
	samples := []int{}
	for _, line := range strings.Split(output, "\n") {
		line = historyCommand(line)
		if line == "" {
			continue
		}
		cmd := hp.analyzer.Analyze(line)
		if cmd.CommandName == "" {
			continue
		}
		if hp.Metric == MetricLength {
			samples = append(samples, cmd.EffectiveLength)
		} else {
			samples = append(samples, cmd.WordCount())
		}
	}
	return samples
}
