package gogrid

import "errors"

type rowOptions struct {
	showCheckBox       bool
	showPrimaryKey     bool
	showActions        bool
	showDefaultActions bool
	checkboxName       string
	controller         string
	actions            []Action
}

// resolutionHandler decides what to do with a failed foreign key: return a
// substitute cell, or an error to abort the render.
type resolutionHandler func(rerr *ResolutionError) (Cell, error)

func abortOnResolution(rerr *ResolutionError) (Cell, error) {
	return Cell{}, rerr
}

// renderRows builds one Row per record in input order. Records are only read.
func renderRows[T any](
	records []T,
	fields []string,
	resolver *Resolver[T],
	opts rowOptions,
	onResolution resolutionHandler,
) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row, err := renderRow(record, fields, resolver, opts, onResolution)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func renderRow[T any](
	record T,
	fields []string,
	resolver *Resolver[T],
	opts rowOptions,
	onResolution resolutionHandler,
) (Row, error) {
	id, err := resolver.id(record)
	if err != nil {
		return Row{}, err
	}

	cells := make([]Cell, 0, len(fields)+2)
	if opts.showCheckBox {
		cells = append(cells, Cell{
			Kind:  CellCheckbox,
			Name:  opts.checkboxName,
			Value: id,
		})
	}

	for _, field := range fields {
		if field == resolver.primaryKey && !opts.showPrimaryKey {
			continue
		}

		cell, err := resolver.resolve(record, field, id)
		var rerr *ResolutionError
		if errors.As(err, &rerr) {
			cell, err = onResolution(rerr)
		}
		if err != nil {
			return Row{}, err
		}

		cells = append(cells, cell)
	}

	if opts.showActions && id != 0 {
		if opts.showDefaultActions {
			cells = append(cells, defaultActions(opts.controller, id)...)
		} else {
			cells = append(cells, customActions(opts.actions, id)...)
		}
	}

	return Row{ID: id, Cells: cells}, nil
}
