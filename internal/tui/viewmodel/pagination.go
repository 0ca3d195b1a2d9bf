// Package viewmodel holds the pure render-state computations behind the
// dashboard views: pagination arithmetic, sorting, and filtering. Nothing
// here touches the terminal, so every view behavior is testable on its own.
package viewmodel

// DefaultPageSize is how many records a paginated view shows at once.
const DefaultPageSize = 30

// PageSlice returns the half-open [start, end) slice bounds for a page and
// the total page count. Pages are 1-based; out-of-range pages clamp to the
// nearest valid page.
func PageSlice(total, perPage, page int) (start, end, totalPages int) {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if total <= 0 {
		return 0, 0, 0
	}

	totalPages = (total + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start = (page - 1) * perPage
	end = start + perPage
	if end > total {
		end = total
	}
	return start, end, totalPages
}

// ClampPage clamps a requested page number to [1, totalPages]. A zero
// totalPages clamps to 1 so empty views still have a current page.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageItem is one element of the pagination control: a page number or an
// ellipsis gap.
type PageItem struct {
	Number   int
	Active   bool
	Ellipsis bool
}

// PageWindow builds the windowed page-control layout: the first page, an
// ellipsis when the window is far from the start, the pages around the
// current one, an ellipsis before the end, and the last page.
func PageWindow(current, totalPages int) []PageItem {
	if totalPages <= 1 {
		return nil
	}
	current = ClampPage(current, totalPages)

	var items []PageItem

	startPage := current - 1
	if startPage < 1 {
		startPage = 1
	}
	endPage := current + 1
	if endPage > totalPages {
		endPage = totalPages
	}

	if current > 2 {
		items = append(items, PageItem{Number: 1})
		if current > 3 {
			items = append(items, PageItem{Ellipsis: true})
		}
	}

	for i := startPage; i <= endPage; i++ {
		items = append(items, PageItem{Number: i, Active: i == current})
	}

	if current < totalPages-1 {
		if current < totalPages-2 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Number: totalPages})
	}

	return items
}
