package domain

import (
	"cmp"
	"fmt"
	"strings"
)

// Field names a record attribute by its persisted label.
type Field string

const (
	FieldFlightNumber  Field = "Flight Number"
	FieldFrom          Field = "From"
	FieldTo            Field = "To"
	FieldPrice         Field = "Price"
	FieldDuration      Field = "Duration"
	FieldPassengerName Field = "Passenger Name"
)

var fieldAliases = map[string]Field{
	"flight number":  FieldFlightNumber,
	"flight_number":  FieldFlightNumber,
	"flightnumber":   FieldFlightNumber,
	"from":           FieldFrom,
	"to":             FieldTo,
	"price":          FieldPrice,
	"duration":       FieldDuration,
	"passenger name": FieldPassengerName,
	"passenger_name": FieldPassengerName,
	"passengername":  FieldPassengerName,
}

// ParseField accepts either the label ("Flight Number") or a lower/snake case alias.
func ParseField(name string) (Field, error) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// Numeric reports whether values of the field are compared as numbers.
func (f Field) Numeric() bool {
	return f == FieldPrice || f == FieldDuration
}

// Value is a field value, either text or a number.
type Value struct {
	Text    string
	Number  float64
	Numeric bool
}

func TextValue(s string) Value { return Value{Text: s} }

func NumberValue(n float64) Value { return Value{Number: n, Numeric: true} }

// Compare orders numbers numerically and text lexicographically. A number
// sorts before text so mixed values still have a total order.
func (v Value) Compare(o Value) int {
	switch {
	case v.Numeric && o.Numeric:
		return cmp.Compare(v.Number, o.Number)
	case !v.Numeric && !o.Numeric:
		return strings.Compare(v.Text, o.Text)
	case v.Numeric:
		return -1
	default:
		return 1
	}
}

func (v Value) Equal(o Value) bool {
	return v.Compare(o) == 0
}
