package view

// Pagination is a stateless slicing stage layered on top of the derived
// view by the presentation layer. Pages are 1-based.

// TotalPages reports the number of pages for a result set; never less
// than 1 so an empty set still renders "page 1 / 1".
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage re-clamps page into [1, TotalPages]. The presentation layer
// calls this whenever filtering shrinks the result set below the current
// page's start index.
func ClampPage(page, total, pageSize int) int {
	last := TotalPages(total, pageSize)
	if page > last {
		return last
	}
	if page < 1 {
		return 1
	}
	return page
}

// Page returns the 1-based page of items, empty when page is out of range.
func Page[T any](items []T, page, pageSize int) []T {
	if pageSize < 1 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Bounds reports the 1-based display range "start-end of total" for a page.
func Bounds(page, pageSize, total int) (start, end int) {
	if total == 0 {
		return 0, 0
	}
	start = (page-1)*pageSize + 1
	end = page * pageSize
	if end > total {
		end = total
	}
	return start, end
}
