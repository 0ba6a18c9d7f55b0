package gogrid

import (
	"fmt"

	"gorm.io/gorm"
)

// PageResult is a page loaded from a database together with its strip.
type PageResult[T any] struct {
	// Items of the active page.
	Items []T
	// Total number of rows matching the query.
	Total int64
	// AppliedLimit effective rows per page used for the query.
	AppliedLimit int
	// Pager strip computed from Total.
	Pager *PagerView
}

// LoadPage counts the rows matched by db, then loads the active page with the
// pager's ordering, LIMIT and OFFSET. db must not be finalized yet, e.g.
//
//	res, err := gogrid.LoadPage[User](db.Model(&User{}).Where("active"), pager)
func LoadPage[T any](db *gorm.DB, p *Pager) (*PageResult[T], error) {
	err := p.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot load page: %w", err)
	}

	var total int64
	err = db.Session(&gorm.Session{}).Count(&total).Error
	if err != nil {
		return nil, fmt.Errorf("cannot count rows: %w", err)
	}

	view, err := p.Window(int(total))
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, p.GetRowsPerPage())
	// Pages past the end are known to be empty; skip the query.
	if p.GetOffset() < int(total) {
		paged, err := p.Paginate(db.Session(&gorm.Session{}))
		if err != nil {
			return nil, err
		}

		err = paged.Find(&items).Error
		if err != nil {
			return nil, fmt.Errorf("cannot load rows: %w", err)
		}
	}

	return &PageResult[T]{
		Items:        items,
		Total:        total,
		AppliedLimit: p.GetRowsPerPage(),
		Pager:        view,
	}, nil
}
