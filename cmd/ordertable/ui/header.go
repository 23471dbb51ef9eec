package ui

import (
	"fmt"
	"strings"

	"ordertable/internal/orders"
	"ordertable/internal/table"

	"github.com/charmbracelet/lipgloss"
)

const (
	markerAsc  = "▲"
	markerDesc = "▼"
)

// headerLabel is a column title with the sort marker when f is the sorted
// column.
func headerLabel(f orders.Field, s table.SortState) string {
	if f != s.Field {
		return f.Label()
	}
	if s.Direction == table.Descending {
		return f.Label() + " " + markerDesc
	}
	return f.Label() + " " + markerAsc
}

// Announcement is the line read out after a sort change, e.g.
// "Cost (₹): sorted ascending".
func Announcement(s table.SortState) string {
	return fmt.Sprintf("%s: %s", s.Field.Label(), s.Direction.Announce())
}

// HeaderModel renders the column headers and tracks the column cursor.
type HeaderModel struct {
	Cursor  int // index into orders.Fields
	Focused bool
}

// Left moves the cursor one column left, stopping at the first column.
func (h *HeaderModel) Left() {
	if h.Cursor > 0 {
		h.Cursor--
	}
}

// Right moves the cursor one column right, stopping at the last column.
func (h *HeaderModel) Right() {
	if h.Cursor < len(orders.Fields)-1 {
		h.Cursor++
	}
}

// Field returns the column under the cursor.
func (h HeaderModel) Field() orders.Field {
	return orders.Fields[h.Cursor]
}

// View renders one styled control per column, sized to widths.
func (h HeaderModel) View(s table.SortState, widths []int, styles Styles) string {
	var sb strings.Builder
	for i, f := range orders.Fields {
		w := MinColumnWidth
		if i < len(widths) {
			w = widths[i]
		}
		style := styles.ColumnHeader
		switch {
		case h.Focused && i == h.Cursor:
			style = styles.ActiveColumn
		case i == h.Cursor:
			style = style.Underline(true)
		case f == s.Field:
			style = styles.SortedColumn
		}
		align := lipgloss.Right
		if f.AlignLeft() {
			align = lipgloss.Left
		}
		cell := lipgloss.PlaceHorizontal(w, align, headerLabel(f, s))
		sb.WriteString(" " + style.Render(cell) + " ")
	}
	return sb.String()
}
