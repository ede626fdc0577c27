// Package app provides the interactive TUI for the seller console. The
// functionality is split across files:
//   - model.go: types, Init, message definitions (this file)
//   - update.go: the Update loop and browse-mode key handling
//   - panel.go: lead / opportunity detail panel handling
//   - view.go: rendering
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sellerconsole/cmd/seller/ui"
	"sellerconsole/internal/console"
	"sellerconsole/internal/editor"
	"sellerconsole/internal/types"
)

// ViewMode determines which surface is active.
type ViewMode int

const (
	BrowseView ViewMode = iota
	LeadPanelView
	OppPanelView
	HelpView
	ResetConfirmView
)

// Pane is the focused table in browse mode.
type Pane int

const (
	LeadsPane Pane = iota
	OppsPane
)

// panelField is the focused control inside a detail panel.
type panelField int

// Lead panel fields.
const (
	fieldEmail panelField = iota
	fieldStatus
)

// Opportunity panel fields.
const (
	oppFieldName panelField = iota
	oppFieldAccount
	oppFieldStage
	oppFieldAmount
)

// Messages.
type (
	// loadDoneMsg signals that console.Start finished; the store's load
	// state carries the outcome.
	loadDoneMsg struct{}

	// storeChangedMsg re-renders after a store dispatch from outside the
	// Update loop (editor goroutines, debounced search).
	storeChangedMsg struct{}

	// searchAppliedMsg carries a debounced search term into the stores.
	searchAppliedMsg struct {
		pane Pane
		term string
	}

	// saveDoneMsg reports a finished optimistic save.
	saveDoneMsg struct{ err error }

	// convertDoneMsg reports a finished lead conversion.
	convertDoneMsg struct {
		opp types.Opportunity
		err error
	}

	// clearNoticeMsg expires the transient status line.
	clearNoticeMsg struct{ seq int }
)

// Model is the main model for the interactive console.
type Model struct {
	console *console.Console
	styles  ui.Styles

	width  int
	height int

	mode  ViewMode
	focus Pane

	// Browse state. Pages are 1-based; cursors index into the current page.
	leadsPage   int
	oppsPage    int
	leadsCursor int
	oppsCursor  int

	// Search. The input is the UI-boundary buffer; the debouncer coalesces
	// keystrokes before the set-search intent is dispatched.
	search    textinput.Model
	searching bool
	debouncer *ui.Debouncer

	// Detail panels.
	leadEditor *editor.LeadEditor
	oppEditor  *editor.OpportunityEditor
	panelFocus panelField
	emailInput textinput.Model
	nameInput  textinput.Model
	acctInput  textinput.Model
	amtInput   textinput.Model
	busy       bool // disables resubmission while a mutation is in flight

	spinner   spinner.Model
	helpBody  string
	notice    string
	noticeSeq int

	// events bridges asynchronous callbacks (debouncer timers, store
	// subscriptions) back into the Update loop.
	events chan tea.Msg
}

// New builds the TUI model around an assembled console.
func New(c *console.Console, styles ui.Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Info

	search := textinput.New()
	search.Placeholder = "name or company…"
	search.CharLimit = 120
	search.Width = 28

	email := textinput.New()
	email.Placeholder = "name@company.com"
	email.CharLimit = 254
	email.Width = 36

	name := textinput.New()
	name.CharLimit = 120
	name.Width = 36

	acct := textinput.New()
	acct.CharLimit = 120
	acct.Width = 36

	amt := textinput.New()
	amt.Placeholder = "unset"
	amt.CharLimit = 20
	amt.Width = 16

	m := Model{
		console:    c,
		styles:     styles,
		leadsPage:  1,
		oppsPage:   1,
		search:     search,
		emailInput: email,
		nameInput:  name,
		acctInput:  acct,
		amtInput:   amt,
		spinner:    sp,
		debouncer:  ui.NewDebouncer(ui.DefaultSearchDebounce),
		events:     make(chan tea.Msg, 16),
	}
	m.search.SetValue(c.Leads().State().View.SearchTerm)

	// Store changes made off the Update loop (editor goroutines) surface
	// as bridged messages so the optimistic state renders immediately.
	ch := m.events
	notify := func() {
		select {
		case ch <- storeChangedMsg{}:
		default:
		}
	}
	c.Leads().Subscribe(notify)
	c.Opps().Subscribe(notify)
	return m
}

// Init starts the initial import and the event bridge.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.startLoad(),
		m.listen(),
	)
}

func (m Model) startLoad() tea.Cmd {
	c := m.console
	return func() tea.Msg {
		c.Start(context.Background())
		return loadDoneMsg{}
	}
}

// listen forwards one bridged event into the program; Update re-arms it.
func (m Model) listen() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		return <-ch
	}
}

// debounceSearch arms the debouncer for the focused pane's search term.
func (m *Model) debounceSearch(pane Pane, term string) {
	ch := m.events
	m.debouncer.Debounce(func() {
		ch <- searchAppliedMsg{pane: pane, term: term}
	})
}

const statusNoticeTTL = 4 * time.Second
