package commandanalysis

import (
	"strings"
	"unicode"
)

// parseArguments splits the command string into words.
// Single and double quotes group words and are stripped; a backslash outside
// single quotes escapes the next character. Other shell syntax is not interpreted.
func (a *BasicAnalyzer) parseArguments(trimmedCommandStr string) []string {
	var args []string
	var currentArg strings.Builder
	var quote rune // 0, '\'' or '"'
	inWord := false
	isEscaped := false

	for _, r := range trimmedCommandStr {
		if isEscaped {
			currentArg.WriteRune(r)
			isEscaped = false
			continue
		}

		switch {
		case r == '\\' && quote != '\'':
			isEscaped = true
			inWord = true
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
			inWord = true
		case quote == 0 && unicode.IsSpace(r):
			if inWord {
				args = append(args, currentArg.String())
				currentArg.Reset()
				inWord = false
			}
		default:
			currentArg.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		args = append(args, currentArg.String())
	}
	return args
}
