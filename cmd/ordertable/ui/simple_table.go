package ui

import (
	"strings"

	"ordertable/internal/orders"
	"ordertable/internal/table"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static rows, used for non-interactive output.
type SimpleTable struct {
	Title   string
	Headers []string
	Align   []lipgloss.Position // per column; missing entries are left-aligned
	Rows    [][]string
	Footer  string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// NewOrderSimpleTable builds a table of order rows with the order columns,
// marking the sorted column.
func NewOrderSimpleTable(title string, rows []table.Row, sort table.SortState) *SimpleTable {
	headers := make([]string, len(orders.Fields))
	align := make([]lipgloss.Position, len(orders.Fields))
	for i, f := range orders.Fields {
		headers[i] = headerLabel(f, sort)
		align[i] = lipgloss.Right
		if f.AlignLeft() {
			align[i] = lipgloss.Left
		}
	}
	t := NewSimpleTable(title, headers)
	t.Align = align
	for _, r := range rows {
		t.AddRow(r.Order.Cells()...)
	}
	return t
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

func (t *SimpleTable) align(i int) lipgloss.Position {
	if i < len(t.Align) {
		return t.Align[i]
	}
	return lipgloss.Left
}

// View renders the table using the provided styles. Headers are always
// rendered, so an empty result still shows its columns.
func (t *SimpleTable) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}

	// lipgloss Width includes padding
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Align(t.align(i)).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1 // separators
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(rowStyle.Width(colWidths[i]).Align(t.align(i)).Render(cell))
				if i < len(colWidths)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}
	if t.Footer != "" {
		sb.WriteString(styles.Muted.Render(t.Footer))
		sb.WriteString("\n")
	}

	return sb.String()
}
