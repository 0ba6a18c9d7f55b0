package gogrid

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases to internal column names.
	// For in-memory sorting the internal name is a Getters key; for queries it
	// is a (possibly qualified) SQL column.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Guard against SQL injection by restricting allowed characters in column names.
	if !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQLSlice converts Orderings to a slice of strings in the form
// "<order_column> <order_direction>".
func (o Orderings) ToSQLSlice() []string {
	ret := make([]string, 0, len(o))
	for _, ordering := range o {
		ret = append(ret, fmt.Sprintf("%s %s", ordering.Column, ordering.Direction))
	}

	return ret
}

// ToSQL converts Orderings to "<c1> <d1>, <c2> <d2>".
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply applies the ordering to a gorm query. Empty orderings leave the query
// untouched.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	var err error
	for _, ordering := range o {
		err = ordering.validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from a list of strings in the format
// "column asc|desc". Column aliases are resolved via ColumnMapping.
// Returns an error if an alias is not found in the mapping.
func ParseSort(stringsOrderings []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make([]OrderBy, 0, len(stringsOrderings))
	aliases := lo.Keys(columnMapping)

	for _, stringOrdering := range stringsOrderings {
		cutStringOrdering := strings.Fields(stringOrdering)
		if len(cutStringOrdering) != 2 {
			return nil, fmt.Errorf("invalid ordering string format '%s'", stringOrdering)
		}

		columnAlias := cutStringOrdering[0]
		direction := Direction(strings.ToUpper(cutStringOrdering[1]))
		columnName := columnMapping[columnAlias]
		if columnName == "" {
			return nil, fmt.Errorf("invalid column alias. closest: '%s'", closestName(columnAlias, aliases))
		}

		ordering := OrderBy{
			Column:    columnName,
			Direction: direction,
		}
		if err := ordering.validate(); err != nil {
			return nil, err
		}

		ret = append(ret, ordering)
	}

	return ret, nil
}

// Sort returns a sorted copy of records. Columns are Getters keys. The sort is
// stable, so records equal on every column keep their input order.
func Sort[T any](records []T, orderings Orderings, getters Getters[T]) ([]T, error) {
	for _, ordering := range orderings {
		if !getters.Has(ordering.Column) {
			return nil, newConfigError("sort", "no getter for sort column '%s'. closest: '%s'",
				ordering.Column, closestName(ordering.Column, lo.Keys(getters)))
		}
		if !ordering.Direction.Valid() {
			return nil, newConfigError("sort", "invalid ordering direction '%s'", ordering.Direction)
		}
	}

	ret := slices.Clone(records)
	slices.SortStableFunc(ret, func(a, b T) int {
		for _, ordering := range orderings {
			getter := getters[ordering.Column]
			c := compareValues(getter(a), getter(b))
			if c == 0 {
				continue
			}

			return lo.Ternary(ordering.Direction == DirectionDESC, -c, c)
		}

		return 0
	})

	return ret, nil
}

// compareValues orders two field values. Nil sorts first; values of different
// or unknown types fall back to their string form.
func compareValues(a, b any) int {
	if lo.IsNil(a) || lo.IsNil(b) {
		return cmp.Compare(lo.Ternary(lo.IsNil(a), 0, 1), lo.Ternary(lo.IsNil(b), 0, 1))
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return cmp.Compare(lo.Ternary(av, 1, 0), lo.Ternary(bv, 1, 0))
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return cmp.Compare(af, bf)
		}
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}

	return 0, false
}
