package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Statistics Colors
var (
	ValueColor      = color.New(color.FgYellow).SprintFunc()
	CountColor      = color.New(color.FgWhite, color.Bold).SprintFunc()
	PercentageColor = color.New(color.FgGreen).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// DisableColors turns off ANSI colouring for every SprintFunc above.
func DisableColors() {
	color.NoColor = true
}
