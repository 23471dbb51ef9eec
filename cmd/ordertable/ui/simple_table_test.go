package ui

import (
	"strings"
	"testing"

	"ordertable/internal/orders"
	"ordertable/internal/table"
)

func TestSimpleTable(t *testing.T) {
	tbl := NewSimpleTable("Test Table", []string{"Col1", "Col2"})
	tbl.AddRow("Row1Col1", "Row1Col2")

	view := tbl.View(DefaultStyles())
	t.Logf("View:\n%q", view)

	if !strings.Contains(view, "Test Table") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "Row1Col1") {
		t.Error("View missing cell content")
	}
}

func TestOrderSimpleTable(t *testing.T) {
	all := orders.Default()
	rows := table.DefaultSort().Sort(table.Rows(all))[:2]

	tbl := NewOrderSimpleTable("ORDERS", rows, table.DefaultSort())
	tbl.Footer = "1–2 of 13"
	view := tbl.View(DefaultStyles())

	if !strings.Contains(view, "Cost (₹) ▲") {
		t.Errorf("sorted column should carry the ascending marker:\n%s", view)
	}
	if !strings.Contains(view, rows[0].Order.User) {
		t.Errorf("missing first row user %q", rows[0].Order.User)
	}
	if !strings.Contains(view, "1–2 of 13") {
		t.Error("missing footer")
	}

	empty := NewOrderSimpleTable("", nil, table.DefaultSort()).View(DefaultStyles())
	if !strings.Contains(empty, "Destination") {
		t.Error("an empty table still renders its headers")
	}
}
