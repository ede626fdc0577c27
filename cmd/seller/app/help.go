package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = "# Seller Console\n\n" +
	"Triage leads and convert them into opportunities. Local-first; saves go\n" +
	"through a simulated backend that is slow and occasionally fails, so you\n" +
	"can watch optimistic updates roll back.\n\n" +
	"## Browse\n\n" +
	"| Key | Action |\n" +
	"| --- | --- |\n" +
	"| `tab` | switch between leads and opportunities |\n" +
	"| `/` | search (debounced; `esc` clears) |\n" +
	"| `f` | cycle status / stage filter |\n" +
	"| `s` | toggle sort direction |\n" +
	"| `S` | toggle lead sort key (score / name) |\n" +
	"| `← →` | previous / next page |\n" +
	"| `↑ ↓` | move cursor |\n" +
	"| `enter` | open detail panel |\n" +
	"| `r` | reset data to seed (asks for confirmation) |\n" +
	"| `q` | quit |\n\n" +
	"## Detail panel\n\n" +
	"| Key | Action |\n" +
	"| --- | --- |\n" +
	"| `tab` | next field |\n" +
	"| `← →` | change status / stage |\n" +
	"| `enter` | save (optimistic, rolls back on failure) |\n" +
	"| `ctrl+o` | convert lead to opportunity |\n" +
	"| `esc` | close without saving |\n"

func (m Model) openHelp() (tea.Model, tea.Cmd) {
	if m.helpBody == "" {
		wrap := 80
		if m.width > 4 && m.width-4 < wrap {
			wrap = m.width - 4
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if out, err := renderer.Render(helpMarkdown); err == nil {
				m.helpBody = out
			}
		}
		if m.helpBody == "" {
			m.helpBody = helpMarkdown
		}
	}
	m.mode = HelpView
	return m, nil
}
