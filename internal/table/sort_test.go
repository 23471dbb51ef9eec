package table

import (
	"testing"

	"ordertable/internal/orders"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(user string, cost float64, status orders.Status) orders.Order {
	return orders.Order{User: user, Cost: orders.NumberOf(cost), Status: status}
}

func rowUsers(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Order.User
	}
	return out
}

func reversed(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}
	return out
}

func TestStableSort_Example(t *testing.T) {
	all := []orders.Order{
		order("A", 10, orders.StatusDelivered),
		order("B", 5, orders.StatusPending),
	}
	sorted := StableSort(Rows(all), Ascending, orders.FieldCost)
	assert.Equal(t, []string{"B", "A"}, rowUsers(sorted))
	assert.Equal(t, []int{1, 0}, []int{sorted[0].Index, sorted[1].Index}, "store indexes travel with rows")
}

func TestStableSort_ReverseWithoutTies(t *testing.T) {
	all := []orders.Order{
		order("C", 30, ""),
		order("A", 10, ""),
		order("E", 50, ""),
		order("B", 20, ""),
		order("D", 40, ""),
	}
	for _, f := range []orders.Field{orders.FieldUser, orders.FieldCost} {
		asc := StableSort(Rows(all), Ascending, f)
		desc := StableSort(Rows(all), Descending, f)
		if diff := cmp.Diff(reversed(asc), desc, cmp.AllowUnexported(orders.Number{})); diff != "" {
			t.Errorf("field %s: reversed asc != desc (-want +got):\n%s", f, diff)
		}
	}
}

func TestStableSort_KeepsTieOrderInBothDirections(t *testing.T) {
	all := []orders.Order{
		order("first", 5, orders.StatusDelivered),
		order("x", 1, ""),
		order("second", 5, orders.StatusDelivered),
		order("y", 9, ""),
		order("third", 5, orders.StatusDelivered),
	}

	asc := StableSort(Rows(all), Ascending, orders.FieldCost)
	assert.Equal(t, []string{"x", "first", "second", "third", "y"}, rowUsers(asc))

	desc := StableSort(Rows(all), Descending, orders.FieldCost)
	assert.Equal(t, []string{"y", "first", "second", "third", "x"}, rowUsers(desc))

	byStatus := StableSort(Rows(all), Descending, orders.FieldStatus)
	assert.Equal(t, []string{"first", "second", "third", "x", "y"}, rowUsers(byStatus))
}

func TestStableSort_DoesNotModifyInput(t *testing.T) {
	rows := Rows([]orders.Order{order("B", 2, ""), order("A", 1, "")})
	_ = StableSort(rows, Ascending, orders.FieldUser)
	assert.Equal(t, []string{"B", "A"}, rowUsers(rows))
}

func TestCompare_NumericFields(t *testing.T) {
	small := orders.Order{Weight: orders.NumberOf(9)}
	big := orders.Order{Weight: orders.NumberOf(10)}
	text := orders.Order{Weight: orders.ParseNumber("heavy")}
	other := orders.Order{Weight: orders.ParseNumber("ample")}

	assert.Equal(t, -1, Compare(small, big, orders.FieldWeight), "numeric, not lexicographic")
	assert.Equal(t, 1, Compare(big, small, orders.FieldWeight))
	assert.Equal(t, 0, Compare(big, big, orders.FieldWeight))
	assert.Equal(t, -1, Compare(big, text, orders.FieldWeight), "numbers sort before free text")
	assert.Equal(t, 1, Compare(text, small, orders.FieldWeight))
	assert.Equal(t, 1, Compare(text, other, orders.FieldWeight))

	nan := orders.Order{Weight: orders.ParseNumber("NaN")}
	inf := orders.Order{Weight: orders.ParseNumber("Inf")}
	assert.Equal(t, -1, Compare(big, nan, orders.FieldWeight), "NaN is free text")
	assert.Equal(t, 1, Compare(nan, small, orders.FieldWeight))
	assert.Equal(t, -1, Compare(big, inf, orders.FieldWeight), "Inf is free text")
}

func TestStableSort_NonFiniteCostsSortAsText(t *testing.T) {
	var all []orders.Order
	for _, c := range []string{"30", "NaN", "10", "20", "5"} {
		all = append(all, orders.Order{User: c, Cost: orders.ParseNumber(c)})
	}
	asc := StableSort(Rows(all), Ascending, orders.FieldCost)
	assert.Equal(t, []string{"5", "10", "20", "30", "NaN"}, rowUsers(asc))

	desc := StableSort(Rows(all), Descending, orders.FieldCost)
	assert.Equal(t, []string{"NaN", "30", "20", "10", "5"}, rowUsers(desc))
}

func TestCompare_Strings(t *testing.T) {
	a := orders.Order{Source: "Delhi"}
	b := orders.Order{Source: "Mumbai"}
	assert.Equal(t, -1, Compare(a, b, orders.FieldSource))
	assert.Equal(t, 1, Comparator(Descending, orders.FieldSource)(a, b))
}

func TestRequestSort(t *testing.T) {
	s := DefaultSort()
	require.Equal(t, orders.FieldCost, s.Field)
	require.Equal(t, Ascending, s.Direction)

	s = s.RequestSort(orders.FieldCost)
	assert.Equal(t, Descending, s.Direction)

	s = s.RequestSort(orders.FieldCost)
	assert.Equal(t, Ascending, s.Direction)

	s = s.RequestSort(orders.FieldCost).RequestSort(orders.FieldUser)
	assert.Equal(t, SortState{Field: orders.FieldUser, Direction: Ascending}, s)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)
	assert.Equal(t, "sorted descending", d.Announce())

	d, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Ascending, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
