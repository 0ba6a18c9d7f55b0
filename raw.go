package gogrid

import "fmt"

// RawPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - requested 1-based page. Values below 1 mean the first page.
	Page int `json:"page"`
	// Limit - maximum number of records to return per page.
	Limit int `json:"limit"`
	// Sort - orderings in the form "alias asc|desc".
	Sort []string `json:"sort,omitempty"`
}

// Decode converts RawPager into *Pager, resolving sort aliases through
// columnMapping. The slot budget is passed through as-is.
func (p RawPager) Decode(slots int, columnMapping ColumnMapping) (*Pager, error) {
	sort, err := ParseSort(p.Sort, columnMapping)
	if err != nil {
		return nil, fmt.Errorf("cannot decode pager: %w", err)
	}

	pager := NewPager().
		WithPage(p.Page).
		WithRowsPerPage(p.Limit).
		WithPageSlots(slots).
		WithSubstitutedSort(sort...)

	err = pager.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot decode pager: %w", err)
	}

	return pager, nil
}
