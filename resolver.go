package gogrid

import (
	"github.com/samber/lo"
)

// ForeignKey resolves a field holding a nested record by reading Lookup from
// it through Target.
//
// Usage:
//
//	gogrid.ForeignKey{
//		Field:  "Role",
//		Lookup: "Title",
//		Target: gogrid.Getters[models.Role]{"Title": func(r models.Role) any { return r.Title }},
//	}
type ForeignKey struct {
	Field  string
	Lookup string
	Target Shape
}

// Hyperlink turns the cells of Field into links. URL holds a single {0}
// placeholder for the record identifier.
type Hyperlink struct {
	Field string
	URL   string
}

// Resolver computes the display cell of a record field.
type Resolver[T any] struct {
	getters     Getters[T]
	primaryKey  string
	foreignKeys []ForeignKey
	hyperlink   *Hyperlink
}

func NewResolver[T any](getters Getters[T], primaryKey string) *Resolver[T] {
	return &Resolver[T]{
		getters:    getters,
		primaryKey: primaryKey,
	}
}

// WithForeignKeys appends foreign key bindings. When several bindings target
// the same field the first registered one is used.
func (r *Resolver[T]) WithForeignKeys(foreignKeys ...ForeignKey) *Resolver[T] {
	if r == nil {
		r = new(Resolver[T])
	}

	r.foreignKeys = append(r.foreignKeys, foreignKeys...)

	return r
}

// WithHyperlink sets the hyperlink binding, replacing a previous one.
func (r *Resolver[T]) WithHyperlink(link Hyperlink) *Resolver[T] {
	if r == nil {
		r = new(Resolver[T])
	}

	r.hyperlink = &link

	return r
}

// ForeignKey returns the binding used for field, if any.
func (r *Resolver[T]) ForeignKey(field string) (ForeignKey, bool) {
	if r == nil {
		return ForeignKey{}, false
	}

	return lo.Find(r.foreignKeys, func(fk ForeignKey) bool {
		return fk.Field == field
	})
}

// Resolve returns the display cell for field of record. Foreign key failures
// are reported as *ResolutionError and never rendered as blank cells.
func (r *Resolver[T]) Resolve(record T, field string) (Cell, error) {
	id, err := r.id(record)
	if err != nil {
		return Cell{}, err
	}

	return r.resolve(record, field, id)
}

func (r *Resolver[T]) resolve(record T, field string, id int) (Cell, error) {
	getter, ok := r.getters[field]
	if !ok {
		return Cell{}, newConfigError("fields", "no getter for field '%s'", field)
	}
	raw := getter(record)

	if fk, ok := r.ForeignKey(field); ok {
		if fk.Target == nil {
			return Cell{}, newConfigError("foreignKeys", "binding for field '%s' has no target shape", field)
		}

		value, err := fk.Target.Lookup(raw, fk.Lookup)
		if err != nil {
			return Cell{}, &ResolutionError{
				Field:  field,
				Lookup: fk.Lookup,
				RowID:  id,
				Err:    err,
			}
		}

		return Cell{Kind: CellText, Text: displayText(value)}, nil
	}

	if r.hyperlink != nil && r.hyperlink.Field == field && id != 0 {
		return Cell{
			Kind: CellLink,
			Text: displayText(raw),
			Href: formatURL(r.hyperlink.URL, id),
		}, nil
	}

	return Cell{Kind: CellText, Text: displayText(raw)}, nil
}

func (r *Resolver[T]) id(record T) (int, error) {
	getter, ok := r.getters[r.primaryKey]
	if !ok {
		return 0, newConfigError("primaryKey", "no getter for primary key '%s'", r.primaryKey)
	}

	id, err := recordID(getter(record))
	if err != nil {
		return 0, newConfigError("primaryKey", "%v", err)
	}

	return id, nil
}
