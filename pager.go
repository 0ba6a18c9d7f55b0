package gogrid

import (
	"fmt"
	"math"
	"slices"

	"gorm.io/gorm"
)

// Pager holds the page-number pagination settings of a single render: the
// requested page, rows per page, the pager strip slot budget and an optional
// sort.
//
// All methods are nil-safe, so a pager can be built from a nil pointer:
//
//	p := (*gogrid.Pager)(nil).WithRowsPerPage(10).WithPage(2)
type Pager struct {
	page         int
	rowsPerPage  int
	slots        int
	sort         Orderings
	linkTemplate string
}

func NewPager() *Pager {
	return new(Pager)
}

// WithPage sets the requested page. Values below 1 are treated as page 1.
func (p *Pager) WithPage(page int) *Pager {
	if p == nil {
		p = new(Pager)
	}

	p.page = page

	return p
}

// WithRowsPerPage sets the number of rows per page. Values above
// MaxRowsPerPage are capped; non-positive values fail validation.
func (p *Pager) WithRowsPerPage(rows int) *Pager {
	if p == nil {
		p = new(Pager)
	}

	p.rowsPerPage = NormalizeRows(rows)

	return p
}

// WithPageSlots sets the maximum number of page slots in the pager strip.
// NoLimit shows every page.
//
// IMPORTANT:
// A limited budget must be at least MinPageSlots.
func (p *Pager) WithPageSlots(slots int) *Pager {
	if p == nil {
		p = new(Pager)
	}

	p.slots = slots

	return p
}

// WithUnlimitedSlots shows every page in the pager strip.
func (p *Pager) WithUnlimitedSlots() *Pager {
	return p.WithPageSlots(NoLimit)
}

// WithLinkTemplate sets the page link template. It holds a single {0}
// placeholder for the page number. Defaults to "?page={0}".
func (p *Pager) WithLinkTemplate(template string) *Pager {
	if p == nil {
		p = new(Pager)
	}

	p.linkTemplate = template

	return p
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (p *Pager) WithSubstitutedSort(orderBy ...OrderBy) *Pager {
	if p == nil {
		p = new(Pager)
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones. A column
// that is already sorted on is moved to the end with its new direction.
func (p *Pager) WithSort(orderBy ...OrderBy) *Pager {
	if p == nil {
		p = new(Pager)
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(p.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})

		// Remove previous occurrence (avoid duplication).
		if idx != -1 {
			p.sort = slices.Delete(p.sort, idx, idx+1)
		}

		p.sort = append(p.sort, o)
	}

	return p
}

// GetPage returns the active page, clamped to be at least 1.
func (p *Pager) GetPage() int {
	if p == nil || p.page < 1 {
		return 1
	}

	return p.page
}

// GetRowsPerPage returns the rows per page as stored in Pager.
func (p *Pager) GetRowsPerPage() int {
	if p == nil {
		return 0
	}

	return p.rowsPerPage
}

// GetPageSlots returns the slot budget. NoLimit means every page is shown.
func (p *Pager) GetPageSlots() int {
	if p == nil {
		return NoLimit
	}

	return p.slots
}

// GetSort returns orderings that will be applied to the dataset.
func (p *Pager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}

// GetLinkTemplate returns the page link template.
func (p *Pager) GetLinkTemplate() string {
	if p == nil || p.linkTemplate == "" {
		return defaultLinkTemplate
	}

	return p.linkTemplate
}

// GetOffset returns the index of the first row of the active page. It
// saturates at math.MaxInt when the page number is too large to multiply.
func (p *Pager) GetOffset() int {
	page, rows := p.GetPage(), p.GetRowsPerPage()
	if rows <= 0 {
		return 0
	}

	if page-1 > math.MaxInt/rows {
		return math.MaxInt
	}

	return (page - 1) * rows
}

// IsClamped reports whether the requested page was below 1 and got replaced.
func (p *Pager) IsClamped() bool {
	return p != nil && p.page < 1
}

// Window computes the pager strip for a dataset of totalRows rows. The active
// page may lie beyond the last page; the strip is still computed.
func (p *Pager) Window(totalRows int) (*PagerView, error) {
	err := p.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot build pager window: %w", err)
	}

	active := p.GetPage()
	totalPages := TotalPages(totalRows, p.rowsPerPage)

	return &PagerView{
		ActivePage:  active,
		TotalPages:  totalPages,
		TotalRows:   totalRows,
		RowsPerPage: p.rowsPerPage,
		Slots:       windowSlots(pageWindow(totalPages, p.slots, active), active, p.GetLinkTemplate()),
	}, nil
}

// Paginate applies ordering, LIMIT and OFFSET of the active page to a gorm
// query. Returns an error if pagination cannot be applied.
func (p *Pager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	err := p.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = p.sort.Apply(db)
	if offset := p.GetOffset(); offset > 0 {
		db = db.Offset(offset)
	}

	return db.Limit(p.rowsPerPage), nil
}

func (p *Pager) validate() error {
	if p == nil {
		return newConfigError("pager", "pager is nil")
	}

	if p.rowsPerPage <= 0 {
		return newConfigError("rowsPerPage", "must be positive, got %d", p.rowsPerPage)
	}

	if p.slots < 0 || (p.slots != NoLimit && p.slots < MinPageSlots) {
		return newConfigError("pageSlots", "must be %d (unlimited) or at least %d, got %d", NoLimit, MinPageSlots, p.slots)
	}

	err := p.sort.validate()
	if err != nil {
		return newConfigError("sort", "%v", err)
	}

	return nil
}

// Slice returns the records of the active page. A page beyond the end of
// records yields an empty slice. The result shares no capacity past the page,
// so appending to it cannot overwrite the next page.
func Slice[T any](p *Pager, records []T) ([]T, error) {
	err := p.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot slice page: %w", err)
	}

	start := min(p.GetOffset(), len(records))
	end := min(start+p.rowsPerPage, len(records))

	return records[start:end:end], nil
}
