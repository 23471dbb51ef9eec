package orders

import (
	"fmt"
	"strings"
)

// Field names one column of the order table.
type Field string

const (
	FieldUser        Field = "user"
	FieldShipper     Field = "shipper"
	FieldWeight      Field = "weight"
	FieldCost        Field = "cost"
	FieldSource      Field = "source"
	FieldDestination Field = "destination"
	FieldStatus      Field = "status"
)

// Fields lists the columns in display order.
var Fields = []Field{
	FieldUser,
	FieldShipper,
	FieldWeight,
	FieldCost,
	FieldSource,
	FieldDestination,
	FieldStatus,
}

var fieldLabels = map[Field]string{
	FieldUser:        "User",
	FieldShipper:     "Shipper",
	FieldWeight:      "Weight (Kg)",
	FieldCost:        "Cost (₹)",
	FieldSource:      "Source",
	FieldDestination: "Destination",
	FieldStatus:      "Status",
}

// Label returns the column header text.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Numeric reports whether the field compares numerically.
func (f Field) Numeric() bool {
	return f == FieldWeight || f == FieldCost
}

// AlignLeft reports whether the column is left-aligned; only the user column is.
func (f Field) AlignLeft() bool {
	return f == FieldUser
}

// Index returns the column position of f, or -1.
func (f Field) Index() int {
	for i, field := range Fields {
		if field == f {
			return i
		}
	}
	return -1
}

// ParseField resolves a column name case-insensitively.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if f.Index() < 0 {
		return "", fmt.Errorf("unknown column %q", s)
	}
	return f, nil
}
