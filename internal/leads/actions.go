package leads

import "sellerconsole/internal/types"

// Action is the sealed set of intents the leads store accepts. Concrete
// actions are plain data; the reducer is the only place they acquire
// meaning.
type Action interface{ leadsAction() }

// BeginLoad marks the start of the one-shot seed import.
type BeginLoad struct{}

// LoadSucceeded replaces the canonical list and marks the import loaded.
type LoadSucceeded struct{ Leads []types.Lead }

// LoadFailed marks the import failed; the canonical list stays empty.
type LoadFailed struct{ Message string }

// SetSearch replaces the search term. Applies immediately; debouncing of
// keystrokes is the UI boundary's concern.
type SetSearch struct{ Term string }

// SetStatusFilter replaces the status filter (a status or the "all"
// sentinel).
type SetStatusFilter struct{ Filter string }

// SetSort replaces the sort key and direction together.
type SetSort struct {
	Key types.SortKey
	Dir types.SortDir
}

// Select records the selected lead; nil clears the selection.
type Select struct{ ID *string }

// SetPageSize replaces the preferred page size.
type SetPageSize struct{ Size int }

// Update merges a patch into the lead matching ID. The merge is
// authoritative: it is synchronous, always succeeds, touches no other
// record, preserves order, and performs no validation — validating the
// patch is the dispatcher's responsibility.
type Update struct {
	ID    string
	Patch types.LeadPatch
}

// ReplaceAll swaps the entire canonical list, used by rehydration and by
// the reset-to-seed flow. The load state is forced to loaded.
type ReplaceAll struct{ Leads []types.Lead }

func (BeginLoad) leadsAction()       {}
func (LoadSucceeded) leadsAction()   {}
func (LoadFailed) leadsAction()      {}
func (SetSearch) leadsAction()       {}
func (SetStatusFilter) leadsAction() {}
func (SetSort) leadsAction()         {}
func (Select) leadsAction()          {}
func (SetPageSize) leadsAction()     {}
func (Update) leadsAction()          {}
func (ReplaceAll) leadsAction()      {}
