/*
Package frequency defines the core domain entity of valuestats: a table that
counts how often each integer value has been observed.
*/
package frequency

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

/*
Table accumulates integer samples and answers frequency queries over them.
The zero value is an empty table ready to use.

A Table is not safe for concurrent use. Callers sharing one must guard
AddValue and any read that needs a consistent view.
*/
type Table struct {
	counts       map[int]int
	totalSamples int
	eol          string
}

// Option configures a Table created with NewTable.
type Option func(*Table)

// WithLineTerminator sets the string appended to every line of a dump.
func WithLineTerminator(eol string) Option {
	return func(t *Table) {
		t.eol = eol
	}
}

// NewTable creates an empty table. Dumps use NativeEOL unless overridden.
func NewTable(opts ...Option) *Table {
	t := &Table{counts: make(map[int]int), eol: NativeEOL}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddValue records one occurrence of value.
func (t *Table) AddValue(value int) {
	if t.counts == nil {
		t.counts = make(map[int]int)
	}
	t.counts[value]++
	t.totalSamples++
}

// ValuesCount returns the number of distinct values observed.
func (t *Table) ValuesCount() int {
	return len(t.counts)
}

// TotalSamples returns the number of AddValue calls made so far.
func (t *Table) TotalSamples() int {
	return t.totalSamples
}

// CountForValue returns how many times value was added, 0 if never.
func (t *Table) CountForValue(value int) int {
	return t.counts[value]
}

/*
Percentage returns the share of samples equal to value, in the range 0-100.
On an empty table the division is 0/0 and the result is NaN.
*/
func (t *Table) Percentage(value int) float64 {
	return float64(t.CountForValue(value)) * 100 / float64(t.TotalSamples())
}

// SortedValues returns the distinct values in ascending order.
func (t *Table) SortedValues() []int {
	values := lo.Keys(t.counts)
	slices.Sort(values)
	return values
}

/*
ValuesSortedByOccurrence returns the distinct values ordered by ascending
occurrence count. Values with the same count keep ascending value order.
*/
func (t *Table) ValuesSortedByOccurrence() []int {
	values := t.SortedValues()
	slices.SortStableFunc(values, func(a, b int) int {
		return cmp.Compare(t.counts[a], t.counts[b])
	})
	return values
}

// DumpByOccurrence lists values from the highest to the lowest occurrence count.
func (t *Table) DumpByOccurrence() string {
	values := t.ValuesSortedByOccurrence()
	slices.Reverse(values)
	return t.dump(values)
}

// DumpByValue lists values in ascending order.
func (t *Table) DumpByValue() string {
	return t.dump(t.SortedValues())
}

// Dump renders the table in the given order.
func (t *Table) Dump(order Order) string {
	if order == ByOccurrence {
		return t.DumpByOccurrence()
	}
	return t.DumpByValue()
}

func (t *Table) dump(values []int) string {
	eol := t.lineTerminator()
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(FormatLine(v, t.CountForValue(v), t.Percentage(v)))
		sb.WriteString(eol)
	}
	return sb.String()
}

func (t *Table) lineTerminator() string {
	if t.eol == "" {
		return NativeEOL
	}
	return t.eol
}

// FormatLine renders a single dump line without its terminator:
// "<value> => <count> (<percentage>%)".
func FormatLine(value, count int, percentage float64) string {
	return strconv.Itoa(value) + " => " + strconv.Itoa(count) + " (" + FormatPercentage(percentage) + "%)"
}

// FormatPercentage uses the shortest representation that round-trips, as %v does.
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
