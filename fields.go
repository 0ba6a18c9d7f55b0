package gogrid

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Getters is the accessor table for one record shape. Keys are field names as
// they appear in the field set, values read the field from a record.
// Example:
//
//	gogrid.Getters[models.User]{
//		"ID":   func(u models.User) any { return u.ID },
//		"Name": func(u models.User) any { return u.Name },
//		"Role": func(u models.User) any { return u.Role },
//	}
type Getters[T any] map[string]func(T) any

// Shape reads a named field from a record of a type that is only known at
// runtime. Nested records behind a foreign key are read through a Shape.
type Shape interface {
	Lookup(record any, field string) (any, error)
}

// Has reports whether the accessor table defines field.
func (g Getters[T]) Has(field string) bool {
	_, ok := g[field]
	return ok
}

// Lookup - implements Shape. Accepts both T and *T records.
func (g Getters[T]) Lookup(record any, field string) (any, error) {
	if lo.IsNil(record) {
		return nil, errNilNestedRecord
	}

	getter, ok := g[field]
	if !ok {
		return nil, errUnknownLookup
	}

	switch rec := record.(type) {
	case T:
		return getter(rec), nil
	case *T:
		return getter(*rec), nil
	default:
		return nil, fmt.Errorf("%w: %T", errNestedType, record)
	}
}

var _ Shape = Getters[struct{}](nil)

// NormalizeFields returns the ordered field set with the primary key present
// exactly once. If pk is already listed the input is returned as-is; otherwise
// a new slice with pk prepended is returned. The input is never modified.
func NormalizeFields(fields []string, pk string) []string {
	if slices.Contains(fields, pk) {
		return fields
	}

	ret := make([]string, 0, len(fields)+1)
	ret = append(ret, pk)
	ret = append(ret, fields...)

	return ret
}

// validateFields checks that every field has a getter and that the set holds
// no duplicates.
func validateFields[T any](fields []string, getters Getters[T]) error {
	if dup := lo.FindDuplicates(fields); len(dup) > 0 {
		return newConfigError("fields", "duplicate field '%s'", dup[0])
	}

	known := lo.Keys(getters)
	for _, field := range fields {
		if getters.Has(field) {
			continue
		}

		return newConfigError("fields", "no getter for field '%s'. closest: '%s'", field, closestName(field, known))
	}

	return nil
}

func closestName(input string, dataSet []string) string {
	minDist := math.MaxInt
	closest := ""

	// Map iteration order is random; sort so ties resolve the same way every time.
	slices.Sort(dataSet)
	for _, candidate := range dataSet {
		dist := levenshtein([]rune(candidate), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = candidate
		}
	}

	return closest
}

// recordID converts a primary key value into the integer identifier used by
// checkboxes, hyperlinks and actions.
func recordID(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v), nil
		}
	case uint:
		if v <= math.MaxInt {
			return int(v), nil
		}
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		if uint64(v) <= math.MaxInt {
			return int(v), nil
		}
	case uint64:
		if v <= math.MaxInt {
			return int(v), nil
		}
	case float32:
		return recordID(float64(v))
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt && v < math.MaxInt {
			return int(v), nil
		}
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return id, nil
		}
	case fmt.Stringer:
		id, err := strconv.Atoi(strings.TrimSpace(v.String()))
		if err == nil {
			return id, nil
		}
	}

	return 0, fmt.Errorf("value '%v' of type %T is not an integer identifier", value, value)
}
