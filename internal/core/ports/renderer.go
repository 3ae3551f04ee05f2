package ports

import (
	"io"

	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
)

// Renderer writes a frequency table to w in a specific output format.
type Renderer interface {
	Render(w io.Writer, t *frequency.Table, order frequency.Order) error
}
