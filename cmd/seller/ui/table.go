package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows of cells with aligned columns and an optional
// highlighted row (cursor). Data only; scrolling and pagination are the
// caller's concern.
type Table struct {
	Headers  []string
	Rows     [][]string
	Cursor   int // highlighted row index, -1 for none
	MaxWidth int // per-column cap, 0 for unlimited
}

// NewTable creates a table with the given headers and no rows.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers, Cursor: -1}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table using the provided styles.
func (t *Table) View(styles Styles) string {
	var sb strings.Builder

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(colWidths) {
				continue
			}
			if w := lipgloss.Width(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	if t.MaxWidth > 0 {
		for i := range colWidths {
			if colWidths[i] > t.MaxWidth {
				colWidths[i] = t.MaxWidth
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	cursorStyle := styles.Selected.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(truncate(h, t.MaxWidth)))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("│"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("─", totalWidth)) + "\n")

	for r, row := range t.Rows {
		style := rowStyle
		if r == t.Cursor {
			style = cursorStyle
		}
		for i, cell := range row {
			if i >= len(colWidths) {
				continue
			}
			sb.WriteString(style.Width(colWidths[i]).Render(truncate(cell, t.MaxWidth)))
			if i < len(row)-1 {
				sb.WriteString(sepStyle.Render("│"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, max int) string {
	if max <= 0 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 1 {
		return string(runes[:1])
	}
	if len(runes) > max-1 {
		runes = runes[:max-1]
	}
	return string(runes) + "…"
}
