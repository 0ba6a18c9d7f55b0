package gogrid

const (
	// NoLimit disables paging (all rows) or the page slot budget (all pages).
	NoLimit = 0
	// MaxRowsPerPage caps the rows rendered for a single page.
	MaxRowsPerPage = 500
	// MinPageSlots is the smallest slot budget that fits the middle layout:
	// two leading pages, two ellipses, a centered run and two trailing pages.
	MinPageSlots = 8

	defaultLinkTemplate = "?page={0}"
	defaultMarginBottom = 20
)

// IsNormalizedRowsMax returns rows capped to maxRows and whether it was left
// unchanged. Non-positive values are returned as-is.
func IsNormalizedRowsMax(rows int, maxRows int) (int, bool) {
	if rows > maxRows {
		return maxRows, false
	}

	return rows, true
}

func NormalizeRowsMax(rows int, maxRows int) int {
	ret, _ := IsNormalizedRowsMax(rows, maxRows)
	return ret
}

func NormalizeRows(rows int) int {
	return NormalizeRowsMax(rows, MaxRowsPerPage)
}
