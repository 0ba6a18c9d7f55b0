package gogrid

import "math"

// ellipsisPage marks a non-clickable "..." entry in a page window.
const ellipsisPage = -1

// TotalPages returns ceil(totalRows / rowsPerPage), or 0 when rowsPerPage is
// not positive.
func TotalPages(totalRows, rowsPerPage int) int {
	if rowsPerPage <= 0 || totalRows <= 0 {
		return 0
	}

	return int(math.Ceil(float64(totalRows) / float64(rowsPerPage)))
}

// pageWindow returns the page numbers shown in the pager strip, with
// ellipsisPage for gaps.
//
// When every page fits (or slots is NoLimit) the window is 1..totalPages.
// Otherwise it has exactly slots+1 entries: pages 1 and 2, a middle band and
// the last two pages. The middle band is one of:
//
//	near start: 3 4 ... slots-2 ...
//	near end:   ... total-slots+3 ... total-2
//	middle:     ... run centered on active ...
//
// The caller guarantees slots >= MinPageSlots when slots is not NoLimit.
func pageWindow(totalPages, slots, active int) []int {
	if slots == NoLimit || totalPages <= slots {
		window := make([]int, 0, totalPages)
		for page := 1; page <= totalPages; page++ {
			window = append(window, page)
		}

		return window
	}

	window := make([]int, slots+1)
	window[0] = 1
	window[1] = 2

	ratio := float64(totalPages) / float64(slots)
	switch {
	case ratio > float64(active):
		for i := 2; i < slots-2; i++ {
			window[i] = i + 1
		}
		window[slots-2] = ellipsisPage
	case ratio < float64(active) && totalPages-active < slots/2:
		window[2] = ellipsisPage
		for i := 3; i <= slots-2; i++ {
			window[i] = totalPages - (slots - i)
		}
	default:
		window[2] = ellipsisPage
		width := slots - 5
		start := active - (width-1)/2
		for i := 0; i < width; i++ {
			window[3+i] = start + i
		}
		window[slots-2] = ellipsisPage
	}

	window[slots-1] = totalPages - 1
	window[slots] = totalPages

	return window
}

func windowSlots(window []int, active int, linkTemplate string) []Slot {
	slots := make([]Slot, 0, len(window))
	for _, page := range window {
		if page <= 0 {
			slots = append(slots, Slot{Ellipsis: true})
			continue
		}

		slots = append(slots, Slot{
			Page:   page,
			Active: page == active,
			Href:   formatURL(linkTemplate, page),
		})
	}

	return slots
}
