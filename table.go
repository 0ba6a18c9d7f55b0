package gogrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// CellKind tells the template layer how to serialize a cell.
type CellKind string

const (
	CellText     CellKind = "text"
	CellLink     CellKind = "link"
	CellCheckbox CellKind = "checkbox"
	CellAction   CellKind = "action"
)

// Cell is a single rendered table cell.
type Cell struct {
	Kind CellKind
	// Text is the displayed value. For action cells it is the action label.
	Text string
	// Href is set for link and action cells.
	Href string
	// Icon is an icon class for default actions.
	Icon string
	// Name and Value are set for checkbox cells.
	Name  string
	Value int
}

// IsCheckbox reports whether the cell is a row selection checkbox.
func (c Cell) IsCheckbox() bool {
	return c.Kind == CellCheckbox
}

// IsAction reports whether the cell is a row action.
func (c Cell) IsAction() bool {
	return c.Kind == CellAction
}

// Row is a rendered record. ID is the primary key identifier (0 when unset).
type Row struct {
	ID    int
	Cells []Cell
}

// DataCells returns the cells that are neither actions nor checkboxes.
func (r Row) DataCells() []Cell {
	return lo.Reject(r.Cells, func(c Cell, _ int) bool {
		return c.IsAction() || c.IsCheckbox()
	})
}

// ActionCells returns the trailing action cells of the row.
func (r Row) ActionCells() []Cell {
	return lo.Filter(r.Cells, func(c Cell, _ int) bool {
		return c.IsAction()
	})
}

// HeaderCell is a column label.
type HeaderCell struct {
	Field string
	Label string
}

// Slot is one entry of the pager strip: either a page link or an ellipsis.
type Slot struct {
	Page     int
	Active   bool
	Ellipsis bool
	Href     string
}

// PagerView is the page-number strip for the active page.
type PagerView struct {
	ActivePage  int
	TotalPages  int
	TotalRows   int
	RowsPerPage int
	Slots       []Slot
}

// Pages returns the page numbers of the strip with ellipses as 0.
func (p *PagerView) Pages() []int {
	if p == nil {
		return nil
	}

	return lo.Map(p.Slots, func(s Slot, _ int) int {
		return lo.Ternary(s.Ellipsis, 0, s.Page)
	})
}

// Table is the result of Grid.Compile. It is built fresh on every call.
type Table struct {
	Header       []HeaderCell
	Rows         []Row
	Pager        *PagerView
	MarginBottom int
}

// formatURL substitutes the record identifier into a template holding a
// single {0} placeholder.
func formatURL(template string, id int) string {
	return strings.ReplaceAll(template, "{0}", strconv.Itoa(id))
}

func displayText(value any) string {
	if lo.IsNil(value) {
		return ""
	}

	return fmt.Sprint(value)
}
