package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sellerconsole/internal/leads"
	"sellerconsole/internal/opps"
	"sellerconsole/internal/types"
	"sellerconsole/internal/view"
)

// Update is the reducer of the UI layer: every event becomes a new model.
// Store mutations dispatched from here are synchronous; only the simulated
// backend calls run as commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.console.Leads().State().Load.Kind == types.LoadLoading ||
			m.console.Leads().State().Load.Kind == types.LoadIdle {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case loadDoneMsg:
		return m, nil

	case storeChangedMsg:
		return m, m.listen()

	case searchAppliedMsg:
		switch msg.pane {
		case LeadsPane:
			m.console.Leads().Dispatch(leads.SetSearch{Term: msg.term})
			m.leadsPage = 1
		case OppsPane:
			m.console.Opps().Dispatch(opps.SetSearch{Term: msg.term})
			m.oppsPage = 1
		}
		return m, m.listen()

	case saveDoneMsg:
		m.busy = false
		if msg.err == nil {
			m = m.closePanels()
			m = m.setNotice("Saved.")
		}
		return m, m.noticeTimer()

	case convertDoneMsg:
		m.busy = false
		if msg.err == nil {
			m = m.closePanels()
			m = m.setNotice("Lead converted to opportunity " + shortID(msg.opp.ID) + ".")
		}
		return m, m.noticeTimer()

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The blocking load error screen and the loading screen only accept
	// quit.
	load := m.console.Leads().State().Load
	if load.Kind != types.LoadLoaded {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.mode {
	case LeadPanelView:
		return m.handleLeadPanelKey(msg)
	case OppPanelView:
		return m.handleOppPanelKey(msg)
	case HelpView:
		return m.handleHelpKey(msg)
	case ResetConfirmView:
		return m.handleResetKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		if m.focus == LeadsPane {
			m.focus = OppsPane
		} else {
			m.focus = LeadsPane
		}
		m.search.SetValue(m.currentSearchTerm())
		return m, nil

	case "/":
		m.searching = true
		m.search.SetValue(m.currentSearchTerm())
		m.search.Focus()
		return m, nil

	case "f":
		m.cycleFilter()
		return m, nil

	case "s":
		m.toggleSortDir()
		return m, nil

	case "S":
		if m.focus == LeadsPane {
			m.toggleLeadSortKey()
		}
		return m, nil

	case "left", "h":
		m.page(-1)
		return m, nil

	case "right", "l":
		m.page(1)
		return m, nil

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "enter":
		return m.openPanel()

	case "r":
		m.mode = ResetConfirmView
		return m, nil

	case "?":
		return m.openHelp()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		// Clearing the buffer clears the filter immediately.
		m.search.SetValue("")
		m.debouncer.Cancel()
		m.applySearch("")
		return m, nil

	case "enter":
		m.searching = false
		m.search.Blur()
		m.debouncer.Cancel()
		m.applySearch(m.search.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.debounceSearch(m.focus, m.search.Value())
	return m, cmd
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "?":
		m.mode = BrowseView
	}
	return m, nil
}

func (m Model) handleResetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.console.Reset()
		m.mode = BrowseView
		m.leadsPage, m.oppsPage = 1, 1
		m.leadsCursor, m.oppsCursor = 0, 0
		m = m.setNotice("Data reset to seed.")
		return m, m.noticeTimer()
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.mode = BrowseView
	}
	return m, nil
}

// applySearch dispatches the set-search intent immediately, outside the
// debounce path.
func (m *Model) applySearch(term string) {
	switch m.focus {
	case LeadsPane:
		m.console.Leads().Dispatch(leads.SetSearch{Term: term})
		m.leadsPage = 1
	case OppsPane:
		m.console.Opps().Dispatch(opps.SetSearch{Term: term})
		m.oppsPage = 1
	}
}

func (m Model) currentSearchTerm() string {
	if m.focus == LeadsPane {
		return m.console.Leads().State().View.SearchTerm
	}
	return m.console.Opps().State().View.SearchTerm
}

func (m *Model) cycleFilter() {
	if m.focus == LeadsPane {
		vs := m.console.Leads().State().View
		m.console.Leads().Dispatch(leads.SetStatusFilter{Filter: nextStatusFilter(vs.StatusFilter)})
		m.leadsPage = 1
		m.leadsCursor = 0
		return
	}
	vs := m.console.Opps().State().View
	m.console.Opps().Dispatch(opps.SetStageFilter{Filter: nextStageFilter(vs.StageFilter)})
	m.oppsPage = 1
	m.oppsCursor = 0
}

func nextStatusFilter(current string) string {
	options := []string{types.StatusAll}
	for _, s := range types.LeadStatuses {
		options = append(options, string(s))
	}
	return nextOption(options, current)
}

func nextStageFilter(current string) string {
	options := []string{types.StageAll}
	for _, s := range types.OpportunityStages {
		options = append(options, string(s))
	}
	return nextOption(options, current)
}

func nextOption(options []string, current string) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m *Model) toggleSortDir() {
	if m.focus == LeadsPane {
		vs := m.console.Leads().State().View
		dir := types.SortAsc
		if vs.SortDir == types.SortAsc {
			dir = types.SortDesc
		}
		m.console.Leads().Dispatch(leads.SetSort{Key: vs.SortKey, Dir: dir})
		return
	}
	vs := m.console.Opps().State().View
	dir := types.SortAsc
	if vs.SortDir == types.SortAsc {
		dir = types.SortDesc
	}
	m.console.Opps().Dispatch(opps.SetSort{Dir: dir})
}

func (m *Model) toggleLeadSortKey() {
	vs := m.console.Leads().State().View
	key := types.SortByScore
	if vs.SortKey == types.SortByScore {
		key = types.SortByName
	}
	m.console.Leads().Dispatch(leads.SetSort{Key: key, Dir: vs.SortDir})
}

func (m *Model) page(delta int) {
	if m.focus == LeadsPane {
		visible := m.console.VisibleLeads()
		size := m.console.Leads().State().View.PageSize
		m.leadsPage = view.ClampPage(m.leadsPage+delta, len(visible), size)
		m.leadsCursor = 0
		return
	}
	visible := m.console.VisibleOpportunities()
	size := m.console.Opps().State().View.PageSize
	m.oppsPage = view.ClampPage(m.oppsPage+delta, len(visible), size)
	m.oppsCursor = 0
}

func (m *Model) moveCursor(delta int) {
	if m.focus == LeadsPane {
		rows := len(m.currentLeadsPage())
		m.leadsCursor = clamp(m.leadsCursor+delta, 0, rows-1)
		return
	}
	rows := len(m.currentOppsPage())
	m.oppsCursor = clamp(m.oppsCursor+delta, 0, rows-1)
}

func (m Model) currentLeadsPage() []types.Lead {
	visible := m.console.VisibleLeads()
	size := m.console.Leads().State().View.PageSize
	page := view.ClampPage(m.leadsPage, len(visible), size)
	return view.Page(visible, page, size)
}

func (m Model) currentOppsPage() []types.Opportunity {
	visible := m.console.VisibleOpportunities()
	size := m.console.Opps().State().View.PageSize
	page := view.ClampPage(m.oppsPage, len(visible), size)
	return view.Page(visible, page, size)
}

func (m Model) setNotice(text string) Model {
	m.notice = text
	m.noticeSeq++
	return m
}

func (m Model) noticeTimer() tea.Cmd {
	seq := m.noticeSeq
	return tea.Tick(statusNoticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
