package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
)

// TableRenderer draws a bordered ASCII table with one row per value and a totals footer.
type TableRenderer struct{}

// Render implements the ports.Renderer interface.
func (TableRenderer) Render(w io.Writer, t *frequency.Table, order frequency.Order) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Value", "Count", "Percentage"})
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, e := range t.Entries(order) {
		table.Append([]string{
			strconv.Itoa(e.Value),
			strconv.Itoa(e.Count),
			frequency.FormatPercentage(e.Percentage) + "%",
		})
	}
	table.SetFooter([]string{
		strconv.Itoa(t.ValuesCount()) + " values",
		strconv.Itoa(t.TotalSamples()),
		"",
	})
	table.Render()
	return nil
}
