package app

import (
	"fmt"
	"strconv"
	"strings"

	"sellerconsole/cmd/seller/ui"
	"sellerconsole/internal/editor"
	"sellerconsole/internal/types"
	"sellerconsole/internal/view"
)

// View renders the whole console for the current mode.
func (m Model) View() string {
	load := m.console.Leads().State().Load
	switch load.Kind {
	case types.LoadIdle, types.LoadLoading:
		return m.viewLoading()
	case types.LoadError:
		return m.viewLoadError(load.Message)
	}

	switch m.mode {
	case LeadPanelView:
		return m.viewLeadPanel()
	case OppPanelView:
		return m.viewOppPanel()
	case HelpView:
		return m.helpBody + "\n" + m.styles.Footer.Render("esc to close")
	case ResetConfirmView:
		return m.viewResetConfirm()
	}
	return m.viewBrowse()
}

func (m Model) viewLoading() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Seller Console"))
	sb.WriteString("\n\n")
	sb.WriteString("  " + m.spinner.View() + " " + m.styles.Muted.Render("Loading leads…"))
	sb.WriteString("\n")
	return sb.String()
}

// viewLoadError is the blocking full-screen error state: the seed import
// did not complete and is not retried automatically.
func (m Model) viewLoadError(message string) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Seller Console"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Error.Render("  We couldn't load your leads."))
	sb.WriteString("\n")
	sb.WriteString(m.styles.ErrorBox.Render(message))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("  Restart the console to retry. q to quit."))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewBrowse() string {
	var sb strings.Builder
	sb.WriteString(m.viewHeader())
	sb.WriteString("\n")

	sb.WriteString(m.viewLeadsPane())
	sb.WriteString("\n")
	sb.WriteString(m.viewOppsPane())

	if m.notice != "" {
		sb.WriteString("\n" + m.styles.Success.Render(m.notice))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render(
		"tab panes · / search · f filter · s sort · enter open · r reset · ? help · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewHeader() string {
	leadsState := m.console.Leads().State()
	visible := m.console.VisibleLeads()

	chips := []string{
		fmt.Sprintf("Leads %d", len(leadsState.Leads)),
		fmt.Sprintf("Visible %d", len(visible)),
		fmt.Sprintf("Sort %s %s", leadsState.View.SortKey, arrow(leadsState.View.SortDir)),
		fmt.Sprintf("Status %s", leadsState.View.StatusFilter),
	}
	rendered := make([]string, len(chips))
	for i, chip := range chips {
		rendered[i] = m.styles.Chip.Render(chip)
	}

	title := m.styles.Header.Render("Seller Console")
	return title + "  " + strings.Join(rendered, " ")
}

func (m Model) viewLeadsPane() string {
	state := m.console.Leads().State()
	visible := m.console.VisibleLeads()
	size := state.View.PageSize
	page := view.ClampPage(m.leadsPage, len(visible), size)
	rows := view.Page(visible, page, size)

	var sb strings.Builder
	title := "Leads"
	if m.focus == LeadsPane {
		title = "▸ Leads"
	}
	sb.WriteString(m.styles.Title.Render(title))
	if m.focus == LeadsPane && (m.searching || state.View.SearchTerm != "") {
		sb.WriteString("  " + m.styles.Muted.Render("search:") + " " + m.search.View())
	}
	sb.WriteString("\n")

	if len(visible) == 0 {
		sb.WriteString(m.styles.Muted.Render("No results. Try clearing search or changing filters."))
		sb.WriteString("\n")
		return sb.String()
	}

	table := ui.NewTable("Name", "Company", "Email", "Source", "Score", "Status")
	table.MaxWidth = 30
	if m.focus == LeadsPane {
		table.Cursor = m.leadsCursor
	}
	for _, lead := range rows {
		table.AddRow(
			lead.Name,
			lead.Company,
			lead.Email,
			strings.ToUpper(lead.Source),
			strconv.Itoa(lead.Score),
			m.styles.StatusStyle(lead.Status).Render(string(lead.Status)),
		)
	}
	sb.WriteString(table.View(m.styles))
	sb.WriteString(ui.PaginationBar(m.styles, page, size, len(visible)))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewOppsPane() string {
	state := m.console.Opps().State()
	visible := m.console.VisibleOpportunities()
	size := state.View.PageSize
	page := view.ClampPage(m.oppsPage, len(visible), size)
	rows := view.Page(visible, page, size)

	var sb strings.Builder
	title := "Opportunities"
	if m.focus == OppsPane {
		title = "▸ Opportunities"
	}
	sb.WriteString(m.styles.Title.Render(title))
	if m.focus == OppsPane && (m.searching || state.View.SearchTerm != "") {
		sb.WriteString("  " + m.styles.Muted.Render("search:") + " " + m.search.View())
	}
	sb.WriteString("  " + m.styles.Muted.Render(
		fmt.Sprintf("stage %s · amount %s", state.View.StageFilter, arrow(state.View.SortDir))))
	sb.WriteString("\n")

	if len(visible) == 0 {
		sb.WriteString(m.styles.Muted.Render("No opportunities yet. Convert a lead to see it here."))
		sb.WriteString("\n")
		return sb.String()
	}

	table := ui.NewTable("ID", "Name", "Stage", "Amount", "Account")
	table.MaxWidth = 30
	if m.focus == OppsPane {
		table.Cursor = m.oppsCursor
	}
	for _, opp := range rows {
		table.AddRow(
			shortID(opp.ID),
			opp.Name,
			m.styles.StageStyle(opp.Stage).Render(string(opp.Stage)),
			formatCurrency(opp.Amount),
			opp.AccountName,
		)
	}
	sb.WriteString(table.View(m.styles))
	sb.WriteString(ui.PaginationBar(m.styles, page, size, len(visible)))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewLeadPanel() string {
	ed := m.leadEditor
	if ed == nil {
		return m.viewBrowse()
	}
	lead, ok := m.console.Leads().Selected()
	if !ok {
		return m.viewBrowse()
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(lead.Name))
	sb.WriteString("\n" + m.styles.Subtitle.Render(lead.Company) + "\n\n")

	if msg := ed.ErrorMessage(); msg != "" {
		sb.WriteString(m.styles.ErrorBox.Render(msg) + "\n\n")
	}

	sb.WriteString(m.fieldLabel("Email", m.panelFocus == fieldEmail))
	sb.WriteString(m.emailInput.View() + "\n")
	if emailErr := ed.EmailError(); emailErr != "" {
		sb.WriteString(m.styles.Error.Render(emailErr) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.fieldLabel("Status", m.panelFocus == fieldStatus))
	sb.WriteString(m.styles.StatusStyle(ed.Status()).Render(string(ed.Status())))
	if m.panelFocus == fieldStatus {
		sb.WriteString(m.styles.Muted.Render("  (← → to change)"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Muted.Render(
		"Changes are saved with simulated latency and may randomly fail.") + "\n\n")

	sb.WriteString(m.panelFooter("enter save · ctrl+o convert · tab field · esc close"))
	return m.styles.Panel.Render(sb.String())
}

func (m Model) viewOppPanel() string {
	ed := m.oppEditor
	if ed == nil {
		return m.viewBrowse()
	}
	opp, ok := m.console.Opps().Selected()
	if !ok {
		return m.viewBrowse()
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(shortID(opp.ID) + " · Opportunity"))
	sb.WriteString("\n" + m.styles.Subtitle.Render(
		string(opp.Stage)+" · "+formatCurrency(opp.Amount)) + "\n\n")

	if msg := ed.ErrorMessage(); msg != "" {
		sb.WriteString(m.styles.ErrorBox.Render(msg) + "\n\n")
	}

	sb.WriteString(m.fieldLabel("Name", m.panelFocus == oppFieldName))
	sb.WriteString(m.nameInput.View() + "\n\n")

	sb.WriteString(m.fieldLabel("Account", m.panelFocus == oppFieldAccount))
	sb.WriteString(m.acctInput.View() + "\n\n")

	sb.WriteString(m.fieldLabel("Stage", m.panelFocus == oppFieldStage))
	sb.WriteString(m.styles.StageStyle(ed.Stage()).Render(string(ed.Stage())))
	if m.panelFocus == oppFieldStage {
		sb.WriteString(m.styles.Muted.Render("  (← → to change)"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.fieldLabel("Amount", m.panelFocus == oppFieldAmount))
	sb.WriteString(m.amtInput.View() + "\n")
	if amtErr := ed.AmountError(); amtErr != "" {
		sb.WriteString(m.styles.Error.Render(amtErr) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.panelFooter("enter save · tab field · esc close"))
	return m.styles.Panel.Render(sb.String())
}

func (m Model) viewResetConfirm() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Warning.Render("Reset all data?"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Body.Render(
		"This clears every opportunity and discards lead edits,\nreturning to the seed data. View preferences are kept."))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Footer.Render("y confirm · any other key cancel"))
	return m.styles.Panel.Render(sb.String())
}

func (m Model) fieldLabel(name string, focused bool) string {
	marker := "  "
	if focused {
		marker = "▸ "
	}
	return marker + m.styles.FieldName.Render(name) + "\n"
}

func (m Model) panelFooter(keys string) string {
	if m.busy {
		pending := "Saving…"
		if m.leadEditor != nil && m.leadEditor.Pending() == editor.PendingConverting {
			pending = "Converting…"
		}
		return m.styles.Info.Render(pending)
	}
	return m.styles.Footer.Render(keys)
}

func arrow(dir types.SortDir) string {
	if dir == types.SortAsc {
		return "↑"
	}
	return "↓"
}

func formatCurrency(amount *float64) string {
	if amount == nil {
		return "—"
	}
	return "$" + strconv.FormatFloat(*amount, 'f', 2, 64)
}
