/*
Package command defines the parsed form of a shell command line.
*/
package command

// AnalyzedCommand holds the results of analyzing a command string.
type AnalyzedCommand struct {
	Original        string
	CommandName     string   // The primary command/executable name
	Args            []string // Arguments to the command, quotes stripped
	EffectiveLength int      // Length of the command without whitespace
}

// WordCount is the number of words the command was typed with, its name included.
func (c AnalyzedCommand) WordCount() int {
	if c.CommandName == "" {
		return 0
	}
	return 1 + len(c.Args)
}
