package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"sellerconsole/internal/editor"
	"sellerconsole/internal/leads"
	"sellerconsole/internal/opps"
	"sellerconsole/internal/types"
)

// openPanel opens the detail panel for the row under the cursor, selecting
// it in the owning store.
func (m Model) openPanel() (tea.Model, tea.Cmd) {
	if m.focus == LeadsPane {
		rows := m.currentLeadsPage()
		if m.leadsCursor >= len(rows) {
			return m, nil
		}
		lead := rows[m.leadsCursor]
		m.console.Leads().Dispatch(leads.Select{ID: &lead.ID})
		m.leadEditor = editor.NewLeadEditor(m.console.Leads(), m.console.Opps(), lead, m.console.Calls())
		m.emailInput.SetValue(lead.Email)
		m.emailInput.Focus()
		m.panelFocus = fieldEmail
		m.mode = LeadPanelView
		return m, nil
	}

	rows := m.currentOppsPage()
	if m.oppsCursor >= len(rows) {
		return m, nil
	}
	opp := rows[m.oppsCursor]
	m.console.Opps().Dispatch(opps.Select{ID: &opp.ID})
	m.oppEditor = editor.NewOpportunityEditor(m.console.Opps(), opp, m.console.Calls())
	m.nameInput.SetValue(opp.Name)
	m.acctInput.SetValue(opp.AccountName)
	m.amtInput.SetValue(m.oppEditor.Amount())
	m.nameInput.Focus()
	m.panelFocus = oppFieldName
	m.mode = OppPanelView
	return m, nil
}

// closePanels clears selection and editors without mutating records.
func (m Model) closePanels() Model {
	if m.mode == LeadPanelView {
		m.console.Leads().Dispatch(leads.Select{ID: nil})
	}
	if m.mode == OppPanelView {
		m.console.Opps().Dispatch(opps.Select{ID: nil})
	}
	m.leadEditor = nil
	m.oppEditor = nil
	m.emailInput.Blur()
	m.nameInput.Blur()
	m.acctInput.Blur()
	m.amtInput.Blur()
	m.mode = BrowseView
	return m
}

func (m Model) handleLeadPanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.leadEditor
	if ed == nil {
		m.mode = BrowseView
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Close without saving: buffers are discarded; an in-flight call is
		// not cancelable, so the panel stays up until it settles.
		if m.busy {
			return m, nil
		}
		ed.Cancel()
		return m.closePanels(), nil

	case "tab", "shift+tab":
		if m.panelFocus == fieldEmail {
			m.panelFocus = fieldStatus
			m.emailInput.Blur()
		} else {
			m.panelFocus = fieldEmail
			m.emailInput.Focus()
		}
		return m, nil

	case "left", "right":
		if m.panelFocus == fieldStatus {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			ed.SetStatus(cycleStatus(ed.Status(), delta))
			return m, nil
		}

	case "enter":
		if m.busy || !ed.Dirty() || ed.EmailError() != "" {
			return m, nil
		}
		m.busy = true
		return m, m.saveLead(ed)

	case "ctrl+o":
		if m.busy || ed.EmailError() != "" {
			return m, nil
		}
		m.busy = true
		return m, m.convertLead(ed)
	}

	if m.panelFocus == fieldEmail {
		var cmd tea.Cmd
		m.emailInput, cmd = m.emailInput.Update(msg)
		ed.SetEmail(m.emailInput.Value())
		return m, cmd
	}
	return m, nil
}

func (m Model) handleOppPanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.oppEditor
	if ed == nil {
		m.mode = BrowseView
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.busy {
			return m, nil
		}
		ed.Cancel()
		return m.closePanels(), nil

	case "tab":
		m = m.focusOppField(nextOppField(m.panelFocus, 1))
		return m, nil

	case "shift+tab":
		m = m.focusOppField(nextOppField(m.panelFocus, -1))
		return m, nil

	case "left", "right":
		if m.panelFocus == oppFieldStage {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			ed.SetStage(cycleStage(ed.Stage(), delta))
			return m, nil
		}

	case "enter":
		if m.busy || !ed.Dirty() || ed.AmountError() != "" {
			return m, nil
		}
		m.busy = true
		return m, m.saveOpp(ed)
	}

	var cmd tea.Cmd
	switch m.panelFocus {
	case oppFieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		ed.SetName(m.nameInput.Value())
	case oppFieldAccount:
		m.acctInput, cmd = m.acctInput.Update(msg)
		ed.SetAccountName(m.acctInput.Value())
	case oppFieldAmount:
		m.amtInput, cmd = m.amtInput.Update(msg)
		ed.SetAmount(m.amtInput.Value())
	}
	return m, cmd
}

func (m Model) focusOppField(f panelField) Model {
	m.panelFocus = f
	m.nameInput.Blur()
	m.acctInput.Blur()
	m.amtInput.Blur()
	switch f {
	case oppFieldName:
		m.nameInput.Focus()
	case oppFieldAccount:
		m.acctInput.Focus()
	case oppFieldAmount:
		m.amtInput.Focus()
	}
	return m
}

func nextOppField(f panelField, delta int) panelField {
	fields := []panelField{oppFieldName, oppFieldAccount, oppFieldStage, oppFieldAmount}
	for i, cand := range fields {
		if cand == f {
			return fields[(i+delta+len(fields))%len(fields)]
		}
	}
	return oppFieldName
}

func (m Model) saveLead(ed *editor.LeadEditor) tea.Cmd {
	return func() tea.Msg {
		err := ed.Save(context.Background())
		return saveDoneMsg{err: err}
	}
}

func (m Model) convertLead(ed *editor.LeadEditor) tea.Cmd {
	return func() tea.Msg {
		opp, err := ed.Convert(context.Background(), nil)
		return convertDoneMsg{opp: opp, err: err}
	}
}

func (m Model) saveOpp(ed *editor.OpportunityEditor) tea.Cmd {
	return func() tea.Msg {
		err := ed.Save(context.Background())
		return saveDoneMsg{err: err}
	}
}

func cycleStatus(s types.LeadStatus, delta int) types.LeadStatus {
	for i, cand := range types.LeadStatuses {
		if cand == s {
			n := (i + delta + len(types.LeadStatuses)) % len(types.LeadStatuses)
			return types.LeadStatuses[n]
		}
	}
	return types.StatusNew
}

func cycleStage(s types.OpportunityStage, delta int) types.OpportunityStage {
	for i, cand := range types.OpportunityStages {
		if cand == s {
			n := (i + delta + len(types.OpportunityStages)) % len(types.OpportunityStages)
			return types.OpportunityStages[n]
		}
	}
	return types.StageProspecting
}
