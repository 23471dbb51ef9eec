// Package table holds the pure view logic of the order table: filtering the
// store, stable sorting, pagination and validation of edited records.
package table

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"ordertable/internal/orders"
)

// ErrInvalidField is returned for an unknown sort column.
var ErrInvalidField = errors.New("table: invalid field")

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Announce is the phrase read out for the active column.
func (d Direction) Announce() string {
	if d == Descending {
		return "sorted descending"
	}
	return "sorted ascending"
}

// ParseDirection accepts asc/ascending and desc/descending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction %q", s)
}

// SortState is the active column and direction.
type SortState struct {
	Field     orders.Field
	Direction Direction
}

// DefaultSort orders by cost, ascending.
func DefaultSort() SortState {
	return SortState{Field: orders.FieldCost, Direction: Ascending}
}

// RequestSort toggles the direction when f is already active, otherwise
// adopts f in ascending order.
func (s SortState) RequestSort(f orders.Field) SortState {
	if s.Field == f {
		s.Direction = s.Direction.Toggle()
		return s
	}
	return SortState{Field: f, Direction: Ascending}
}

// Compare compares field f of a and b and returns -1, 0 or +1.
// Numeric fields compare by value; valid numbers sort before free text,
// and two free-text values compare by their text.
func Compare(a, b orders.Order, f orders.Field) int {
	if f.Numeric() {
		return compareNumbers(numberField(a, f), numberField(b, f))
	}
	return strings.Compare(a.Text(f), b.Text(f))
}

func numberField(o orders.Order, f orders.Field) orders.Number {
	if f == orders.FieldWeight {
		return o.Weight
	}
	return o.Cost
}

func compareNumbers(a, b orders.Number) int {
	av, aok := a.Float()
	bv, bok := b.Float()
	switch {
	case aok && bok:
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a.String(), b.String())
}

// Comparator returns the comparison for field f in direction d.
func Comparator(d Direction, f orders.Field) func(a, b orders.Order) int {
	if d == Descending {
		return func(a, b orders.Order) int { return -Compare(a, b, f) }
	}
	return func(a, b orders.Order) int { return Compare(a, b, f) }
}

// StableSort returns rows ordered by field f in direction d. Ties keep their
// relative order from rows. The input is not modified.
func StableSort(rows []Row, d Direction, f orders.Field) []Row {
	type decorated struct {
		row Row
		pos int
	}
	cmp := Comparator(d, f)

	dec := make([]decorated, len(rows))
	for i, r := range rows {
		dec[i] = decorated{row: r, pos: i}
	}
	sort.Slice(dec, func(i, j int) bool {
		if c := cmp(dec[i].row.Order, dec[j].row.Order); c != 0 {
			return c < 0
		}
		return dec[i].pos < dec[j].pos
	})

	out := make([]Row, len(dec))
	for i, e := range dec {
		out[i] = e.row
	}
	return out
}

// Sort applies s to rows.
func (s SortState) Sort(rows []Row) []Row {
	return StableSort(rows, s.Direction, s.Field)
}
