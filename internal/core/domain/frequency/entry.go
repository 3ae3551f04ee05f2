package frequency

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownOrder is returned by ParseOrder for unrecognised names.
var ErrUnknownOrder = errors.New("unknown order")

// Order selects how rows of a table are listed.
type Order int

const (
	// ByValue lists values in ascending numeric order.
	ByValue Order = iota
	// ByOccurrence lists values from the most to the least frequent.
	ByOccurrence
)

func (o Order) String() string {
	switch o {
	case ByValue:
		return "value"
	case ByOccurrence:
		return "occurrence"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts "value" or "occurrence", case-insensitively.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value", "":
		return ByValue, nil
	case "occurrence":
		return ByOccurrence, nil
	}
	return ByValue, fmt.Errorf("%w %q (want value or occurrence)", ErrUnknownOrder, s)
}

// Entry is one row of a table snapshot.
type Entry struct {
	Value      int
	Count      int
	Percentage float64
}

// Entries returns a snapshot of the table rows in the same order the
// corresponding dump uses.
func (t *Table) Entries(order Order) []Entry {
	var values []int
	if order == ByOccurrence {
		values = t.ValuesSortedByOccurrence()
		slices.Reverse(values)
	} else {
		values = t.SortedValues()
	}

	return lo.Map(values, func(v int, _ int) Entry {
		return Entry{Value: v, Count: t.CountForValue(v), Percentage: t.Percentage(v)}
	})
}
