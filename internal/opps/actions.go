package opps

import "sellerconsole/internal/types"

// Action is the sealed set of intents the opportunities store accepts.
type Action interface{ oppsAction() }

// Add prepends a new opportunity (insertion order: newest first). It is the
// only creation path; opportunities exist solely as the side effect of a
// lead conversion or of rehydrating a persisted list.
type Add struct{ Opportunity types.Opportunity }

// Update merges a patch into the opportunity matching ID, with the same
// authoritative-merge contract as the leads store.
type Update struct {
	ID    string
	Patch types.OppPatch
}

// SetSearch replaces the search term.
type SetSearch struct{ Term string }

// SetStageFilter replaces the stage filter (a stage or the "all" sentinel).
type SetStageFilter struct{ Filter string }

// SetSort replaces the amount sort direction.
type SetSort struct{ Dir types.SortDir }

// Select records the selected opportunity; nil clears the selection.
type Select struct{ ID *string }

// SetPageSize replaces the preferred page size.
type SetPageSize struct{ Size int }

// Rehydrate replaces the canonical list from persisted data at startup.
type Rehydrate struct{ Opportunities []types.Opportunity }

// Reset clears the canonical list and purges its persisted document,
// returning to a pristine no-opportunities state. View-state survives —
// reset is about data, not preferences.
type Reset struct{}

func (Add) oppsAction()            {}
func (Update) oppsAction()         {}
func (SetSearch) oppsAction()      {}
func (SetStageFilter) oppsAction() {}
func (SetSort) oppsAction()        {}
func (Select) oppsAction()         {}
func (SetPageSize) oppsAction()    {}
func (Rehydrate) oppsAction()      {}
func (Reset) oppsAction()          {}
