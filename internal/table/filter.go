package table

import (
	"strings"

	"ordertable/internal/orders"
)

// Row is a record together with its index in the store. The index travels
// through filtering, sorting and pagination so a selected row can be edited
// without searching the store for it.
type Row struct {
	Index int
	Order orders.Order
}

// Criteria are the toolbar filters. Empty strings match everything.
type Criteria struct {
	Source      string
	Destination string
	Status      string
}

// IsZero reports whether no filter is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Delivered reports whether the Delivered toggle is on.
func (c Criteria) Delivered() bool {
	return c.Status == string(orders.StatusDelivered)
}

// ToggleDelivered flips the status filter between "" and "delivered".
func (c Criteria) ToggleDelivered() Criteria {
	if c.Delivered() {
		c.Status = ""
	} else {
		c.Status = string(orders.StatusDelivered)
	}
	return c
}

// Match reports whether o passes every filter by substring containment.
func (c Criteria) Match(o orders.Order) bool {
	return strings.Contains(o.Source, c.Source) &&
		strings.Contains(o.Destination, c.Destination) &&
		strings.Contains(string(o.Status), c.Status)
}

// Filter returns the records of all that match c, in store order. It always
// starts from the full store; callers re-run it on every filter change.
func Filter(all []orders.Order, c Criteria) []Row {
	rows := make([]Row, 0, len(all))
	for i, o := range all {
		if c.Match(o) {
			rows = append(rows, Row{Index: i, Order: o})
		}
	}
	return rows
}

// Rows wraps every record of all, in store order.
func Rows(all []orders.Order) []Row {
	return Filter(all, Criteria{})
}
