package ui

import (
	"testing"

	"ordertable/internal/orders"
)

func TestColumnWidths(t *testing.T) {
	narrow := NewLayoutConfig(40, 20).ColumnWidths()
	wide := NewLayoutConfig(200, 20).ColumnWidths()

	if len(narrow) != len(orders.Fields) {
		t.Fatalf("expected %d widths, got %d", len(orders.Fields), len(narrow))
	}
	for i, f := range orders.Fields {
		if narrow[i] < len([]rune(f.Label())) {
			t.Errorf("column %s narrower than its label: %d", f, narrow[i])
		}
		if wide[i] < narrow[i] {
			t.Errorf("column %s shrank on a wider terminal", f)
		}
	}
	if !NewLayoutConfig(90, 20).IsCompact {
		t.Error("90 columns should be compact")
	}
}
