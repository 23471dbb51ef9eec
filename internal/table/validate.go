package table

import (
	"fmt"
	"strings"

	"ordertable/internal/orders"
)

// Draft is the raw text of the edit form, one entry per field.
type Draft struct {
	User        string
	Shipper     string
	Weight      string
	Cost        string
	Source      string
	Destination string
	Status      string
}

// DraftOf copies o into form text.
func DraftOf(o orders.Order) Draft {
	return Draft{
		User:        o.User,
		Shipper:     o.Shipper,
		Weight:      o.Weight.String(),
		Cost:        o.Cost.String(),
		Source:      o.Source,
		Destination: o.Destination,
		Status:      string(o.Status),
	}
}

// Get returns the text of field f.
func (d Draft) Get(f orders.Field) string {
	switch f {
	case orders.FieldUser:
		return d.User
	case orders.FieldShipper:
		return d.Shipper
	case orders.FieldWeight:
		return d.Weight
	case orders.FieldCost:
		return d.Cost
	case orders.FieldSource:
		return d.Source
	case orders.FieldDestination:
		return d.Destination
	case orders.FieldStatus:
		return d.Status
	}
	return ""
}

// Set stores v as the text of field f.
func (d *Draft) Set(f orders.Field, v string) {
	switch f {
	case orders.FieldUser:
		d.User = v
	case orders.FieldShipper:
		d.Shipper = v
	case orders.FieldWeight:
		d.Weight = v
	case orders.FieldCost:
		d.Cost = v
	case orders.FieldSource:
		d.Source = v
	case orders.FieldDestination:
		d.Destination = v
	case orders.FieldStatus:
		d.Status = v
	}
}

// Order builds the replacement record. Numeric text is kept as entered.
func (d Draft) Order(id string) orders.Order {
	return orders.Order{
		ID:          id,
		User:        d.User,
		Shipper:     d.Shipper,
		Weight:      orders.ParseNumber(d.Weight),
		Cost:        orders.ParseNumber(d.Cost),
		Source:      d.Source,
		Destination: d.Destination,
		Status:      orders.Status(d.Status),
	}
}

// FieldError lists the fields a validator rejected.
type FieldError struct {
	Fields []orders.Field
	Reason string
}

func (e *FieldError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Label()
	}
	return fmt.Sprintf("%s: %s", strings.Join(names, ", "), e.Reason)
}

// Validator checks a draft before it replaces a record.
type Validator interface {
	Validate(Draft) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(Draft) error

func (f ValidatorFunc) Validate(d Draft) error { return f(d) }

// AcceptAll performs no validation; free text in numeric fields is stored.
var AcceptAll Validator = ValidatorFunc(func(Draft) error { return nil })

// RequireNumeric rejects weight or cost text that is not a number.
var RequireNumeric Validator = ValidatorFunc(func(d Draft) error {
	var bad []orders.Field
	for _, f := range []orders.Field{orders.FieldWeight, orders.FieldCost} {
		if !orders.ParseNumber(d.Get(f)).Valid() {
			bad = append(bad, f)
		}
	}
	if len(bad) > 0 {
		return &FieldError{Fields: bad, Reason: "must be a number"}
	}
	return nil
})

// KnownStatus rejects a status other than "", out-for-delivery or delivered.
var KnownStatus Validator = ValidatorFunc(func(d Draft) error {
	if !orders.Status(d.Status).IsKnown() {
		return &FieldError{Fields: []orders.Field{orders.FieldStatus}, Reason: "must be empty, out-for-delivery or delivered"}
	}
	return nil
})

// Chain runs validators in order and returns the first error.
func Chain(vs ...Validator) Validator {
	return ValidatorFunc(func(d Draft) error {
		for _, v := range vs {
			if err := v.Validate(d); err != nil {
				return err
			}
		}
		return nil
	})
}

// ValidatorByName maps a configuration value to a validator:
// "none" (or empty), "numeric", or "strict" (numeric and known status).
func ValidatorByName(name string) (Validator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return AcceptAll, nil
	case "numeric":
		return RequireNumeric, nil
	case "strict":
		return Chain(RequireNumeric, KnownStatus), nil
	}
	return nil, fmt.Errorf("unknown validation mode %q", name)
}
