/*
Package render writes frequency tables in the output formats valuestats supports.
*/
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
	"github.com/AntonioJCosta/valuestats/internal/core/ports"
)

// Output format names accepted by New.
const (
	FormatText       = "text"
	FormatTable      = "table"
	FormatPrometheus = "prometheus"
)

// ErrUnknownFormat is returned by New for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatTable, FormatPrometheus}
}

// New returns the renderer for format.
func New(format string) (ports.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return TextRenderer{}, nil
	case FormatTable:
		return TableRenderer{}, nil
	case FormatPrometheus:
		return PrometheusRenderer{Namespace: DefaultNamespace}, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
}

// TextRenderer writes the plain "<value> => <count> (<percentage>%)" dump.
type TextRenderer struct{}

// Render implements the ports.Renderer interface.
func (TextRenderer) Render(w io.Writer, t *frequency.Table, order frequency.Order) error {
	_, err := io.WriteString(w, t.Dump(order))
	return err
}
