package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// ParseValue coerces raw user input to the value type of field.
func ParseValue(field domain.Field, raw string) (domain.Value, error) {
	if !field.Numeric() {
		return domain.TextValue(raw), nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return domain.Value{}, fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidValue, field, raw)
	}
	return domain.NumberValue(n), nil
}

// FilterByField returns the records whose field equals raw. An empty result
// is not an error.
func FilterByField[R Record](items []R, field domain.Field, raw string) ([]R, error) {
	if !supports[R](field) {
		return nil, fmt.Errorf("%w: cannot search by %q", domain.ErrUnknownField, field)
	}
	want, err := ParseValue(field, raw)
	if err != nil {
		return nil, err
	}
	return Filter(items, field, want)
}

// Filter returns the records whose field equals want.
func Filter[R Record](items []R, field domain.Field, want domain.Value) ([]R, error) {
	if !supports[R](field) {
		return nil, fmt.Errorf("%w: cannot search by %q", domain.ErrUnknownField, field)
	}
	out := make([]R, 0)
	for _, item := range items {
		if got, _ := item.Lookup(field); got.Equal(want) {
			out = append(out, item)
		}
	}
	return out, nil
}
