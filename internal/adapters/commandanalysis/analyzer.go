package commandanalysis

import (
	"strings"
	"unicode"

	"github.com/AntonioJCosta/valuestats/internal/core/domain/command"
	"github.com/AntonioJCosta/valuestats/internal/core/ports"
)

// BasicAnalyzer provides a simple implementation of command analysis.
type BasicAnalyzer struct{}

// NewBasicAnalyzer creates a new BasicAnalyzer.
func NewBasicAnalyzer() ports.CommandAnalyzer {
	return &BasicAnalyzer{}
}

// Analyze breaks down a command string into its components.
func (a *BasicAnalyzer) Analyze(commandStr string) command.AnalyzedCommand {
	trimmed := strings.TrimSpace(commandStr)
	analyzed := command.AnalyzedCommand{
		Original:        commandStr,
		EffectiveLength: effectiveLength(trimmed),
	}
	if trimmed == "" {
		return analyzed
	}

	words := a.parseArguments(trimmed)
	if len(words) == 0 {
		return analyzed
	}
	analyzed.CommandName = strings.TrimPrefix(words[0], "./")
	if len(words) > 1 {
		analyzed.Args = words[1:]
	}
	return analyzed
}

// effectiveLength counts the runes of s that are not whitespace.
func effectiveLength(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
