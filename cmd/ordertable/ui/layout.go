// Package ui layout constants for consistent spacing and dimensions
package ui

import (
	"ordertable/internal/orders"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Viewport padding
	ViewportHorizontalPadding = 4

	// Table dimensions
	TableHeaderHeight = 1
	CellPadding       = 2 // bubbles/table pads each cell by one on both sides
	MinColumnWidth    = 8

	// Dialog
	FieldLabelWidth  = 14
	DialogInputWidth = 30

	// Toolbar
	FilterInputWidth = 18
	FilterCharLimit  = 64

	// Responsive breakpoints
	MinimumTerminalWidth = 80
	CompactModeWidth     = 100
)

// baseColumnWidths are the preferred widths at MinimumTerminalWidth.
var baseColumnWidths = map[orders.Field]int{
	orders.FieldUser:        10,
	orders.FieldShipper:     10,
	orders.FieldWeight:      11,
	orders.FieldCost:        9,
	orders.FieldSource:      10,
	orders.FieldDestination: 11,
	orders.FieldStatus:      16,
}

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ContentWidth returns the usable content width
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - ViewportHorizontalPadding
	if w < MinimumTerminalWidth-ViewportHorizontalPadding {
		return MinimumTerminalWidth - ViewportHorizontalPadding
	}
	return w
}

// ColumnWidths returns a width per column, in orders.Fields order. Extra
// space beyond the base widths is shared out evenly.
func (l LayoutConfig) ColumnWidths() []int {
	widths := make([]int, len(orders.Fields))
	used := 0
	for i, f := range orders.Fields {
		w := baseColumnWidths[f]
		if w < lipgloss.Width(f.Label())+2 {
			w = lipgloss.Width(f.Label()) + 2 // room for the sort marker
		}
		widths[i] = w
		used += w + CellPadding
	}
	if extra := l.ContentWidth() - used; extra > 0 {
		each := extra / len(widths)
		for i := range widths {
			widths[i] += each
		}
	}
	return widths
}

// joinRow places blocks side by side, vertically centred, two spaces apart.
func joinRow(blocks ...string) string {
	spaced := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, "  ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, spaced...)
}
