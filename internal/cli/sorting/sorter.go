package sorting

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rshade/pokedex/internal/pokedex"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Sortable fields.
const (
	FieldID      = "id"
	FieldName    = "name"
	FieldAttack  = "attack"
	FieldDefense = "defense"
	FieldSpeed   = "speed"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Validation errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'speed:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

//nolint:gochecknoglobals // Static lookup table.
var less = map[string]func(a, b pokedex.Pokemon) bool{
	FieldID:      func(a, b pokedex.Pokemon) bool { return a.ID < b.ID },
	FieldName:    func(a, b pokedex.Pokemon) bool { return a.Name < b.Name },
	FieldAttack:  func(a, b pokedex.Pokemon) bool { return a.Attack < b.Attack },
	FieldDefense: func(a, b pokedex.Pokemon) bool { return a.Defense < b.Defense },
	FieldSpeed:   func(a, b pokedex.Pokemon) bool { return a.Speed < b.Speed },
}

// ValidFields returns the sortable field names in sorted order.
func ValidFields() []string {
	fields := make([]string, 0, len(less))
	for f := range less {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// ParseSort parses "field" or "field:order". Order defaults to asc.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field, order string, err error) {
	parts := strings.Split(expr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = OrderAsc
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field = strings.ToLower(field)
	if field == "" {
		return "", "", ErrEmptySortField
	}
	if _, ok := less[field]; !ok {
		return "", "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field,
			strings.Join(ValidFields(), ", "))
	}
	if order != OrderAsc && order != OrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}

// Sort returns a sorted copy of list. Ties keep their original relative
// order. An unknown field returns the copy unsorted.
func Sort(list []pokedex.Pokemon, field, order string) []pokedex.Pokemon {
	sorted := slices.Clone(list)
	cmp, ok := less[field]
	if !ok {
		return sorted
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderDesc {
			return cmp(sorted[j], sorted[i])
		}
		return cmp(sorted[i], sorted[j])
	})
	return sorted
}
