package ui

import (
	"fmt"

	"sellerconsole/internal/view"
)

// PaginationBar renders the "Showing 21-40 of 45 · Page 2 / 3" footer line
// for a paged table.
func PaginationBar(styles Styles, page, pageSize, total int) string {
	start, end := view.Bounds(page, pageSize, total)
	pages := view.TotalPages(total, pageSize)

	if total == 0 {
		return styles.Muted.Render("No results")
	}
	return styles.Muted.Render(fmt.Sprintf(
		"Showing %d-%d of %d  ·  Page %d / %d  ·  %d rows",
		start, end, total, page, pages, pageSize))
}
