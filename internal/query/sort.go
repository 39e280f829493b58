package query

import (
	"cmp"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// Record is anything whose fields can be looked up by name.
type Record interface {
	Lookup(field domain.Field) (domain.Value, bool)
}

// SortFunc returns a new slice ordered ascending by compare. It partitions
// around the middle element into less, equal and greater groups, recurses into
// the outer two and concatenates them. Equal elements keep their input order
// within one partition step, but the sort as a whole is not stable.
func SortFunc[T any](items []T, compare func(a, b T) int) []T {
	if len(items) <= 1 {
		return append(make([]T, 0, len(items)), items...)
	}

	pivot := items[len(items)/2]
	var less, equal, greater []T
	for _, item := range items {
		switch c := compare(item, pivot); {
		case c < 0:
			less = append(less, item)
		case c > 0:
			greater = append(greater, item)
		default:
			equal = append(equal, item)
		}
	}

	out := make([]T, 0, len(items))
	out = append(out, SortFunc(less, compare)...)
	out = append(out, equal...)
	out = append(out, SortFunc(greater, compare)...)
	return out
}

// SortBy sorts by an ordered key extracted from each element.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return SortFunc(items, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortByField sorts records by the named field. Numeric fields compare as
// numbers and text fields lexicographically.
func SortByField[R Record](items []R, field domain.Field) ([]R, error) {
	if !supports[R](field) {
		return nil, fmt.Errorf("%w: cannot sort by %q", domain.ErrUnknownField, field)
	}
	return SortFunc(items, func(a, b R) int {
		av, _ := a.Lookup(field)
		bv, _ := b.Lookup(field)
		return av.Compare(bv)
	}), nil
}

func supports[R Record](field domain.Field) bool {
	var zero R
	_, ok := zero.Lookup(field)
	return ok
}
