package ports

import "github.com/AntonioJCosta/valuestats/internal/core/domain/command"

/*
CommandAnalyzer defines the contract for a service that splits a command line
into its name and arguments.
*/
type CommandAnalyzer interface {
	Analyze(commandStr string) command.AnalyzedCommand
}
