package history

import "github.com/AntonioJCosta/valuestats/internal/core/ports"

// DefaultHistoryFileFinder looks at HISTFILE and the usual bash/zsh locations.
type DefaultHistoryFileFinder struct{}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile()
}

// NewDefaultHistoryFileFinder creates a new DefaultHistoryFileFinder.
func NewDefaultHistoryFileFinder() ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{}
}
