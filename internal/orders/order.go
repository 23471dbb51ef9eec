// Package orders defines the shipment order record shown by the order table.
package orders

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Status is the delivery state of an order.
type Status string

const (
	StatusPending        Status = ""
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

// Statuses lists every known status in display order.
var Statuses = []Status{StatusPending, StatusOutForDelivery, StatusDelivered}

// IsKnown reports whether s is one of the three statuses.
func (s Status) IsKnown() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is one shipment entry.
// ID is assigned by the store and survives edits; User is a display key
// and is not unique.
type Order struct {
	ID          string `yaml:"id,omitempty" json:"id,omitempty"`
	User        string `yaml:"user" json:"user"`
	Shipper     string `yaml:"shipper" json:"shipper"`
	Weight      Number `yaml:"weight" json:"weight"`
	Cost        Number `yaml:"cost" json:"cost"`
	Source      string `yaml:"source" json:"source"`
	Destination string `yaml:"destination" json:"destination"`
	Status      Status `yaml:"status" json:"status"`
}

// Text returns the display text of field f.
func (o Order) Text(f Field) string {
	switch f {
	case FieldUser:
		return o.User
	case FieldShipper:
		return o.Shipper
	case FieldWeight:
		return o.Weight.String()
	case FieldCost:
		return o.Cost.String()
	case FieldSource:
		return o.Source
	case FieldDestination:
		return o.Destination
	case FieldStatus:
		return string(o.Status)
	}
	return ""
}

// Cells returns the display text of every column, in column order.
func (o Order) Cells() []string {
	cells := make([]string, len(Fields))
	for i, f := range Fields {
		cells[i] = o.Text(f)
	}
	return cells
}

// Number is a numeric field value that keeps the text it was entered as.
// A Number whose text does not parse is free text; it is stored as-is and
// never coerced.
type Number struct {
	raw   string
	value float64
	valid bool
}

// NumberOf returns a valid Number for f. NaN and the infinities are not
// numbers here and come back as free text.
func NumberOf(f float64) Number {
	raw := strconv.FormatFloat(f, 'f', -1, 64)
	if !finite(f) {
		return Number{raw: raw}
	}
	return Number{raw: raw, value: f, valid: true}
}

// ParseNumber never fails; unparseable text yields a free-text Number.
// "NaN" and "Inf" parse as floats but are kept as free text so comparisons
// stay a total order.
func ParseNumber(s string) Number {
	trimmed := strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && finite(f) {
		return Number{raw: trimmed, value: f, valid: true}
	}
	return Number{raw: s}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float returns the parsed value and whether the number is valid.
func (n Number) Float() (float64, bool) {
	return n.value, n.valid
}

// Valid reports whether the number parsed.
func (n Number) Valid() bool { return n.valid }

func (n Number) String() string { return n.raw }

// MarshalYAML writes valid numbers as YAML numbers and free text as strings.
func (n Number) MarshalYAML() (interface{}, error) {
	if n.valid {
		return n.value, nil
	}
	return n.raw, nil
}

// UnmarshalYAML accepts both YAML numbers and strings.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: number must be a scalar", node.Line)
	}
	*n = ParseNumber(node.Value)
	return nil
}

// MarshalJSON mirrors MarshalYAML.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.valid {
		return []byte(strconv.FormatFloat(n.value, 'f', -1, 64)), nil
	}
	return []byte(strconv.Quote(n.raw)), nil
}

// UnmarshalJSON accepts both JSON numbers and strings.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*n = ParseNumber(s)
	return nil
}
