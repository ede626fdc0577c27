package storage

import (
	"encoding/json"

	"sellerconsole/internal/types"
)

// View-state rehydration follows per-field graceful degradation: every field
// of a persisted document is checked against its finite domain (or type)
// independently, and an invalid field falls back to its own default while
// valid neighbors are kept. A document that is not a JSON object at all is
// discarded wholesale.

// LoadLeadsView reads and sanitizes the persisted leads view-state.
func LoadLeadsView(kv KV) types.LeadsViewState {
	def := types.DefaultLeadsView()
	raw, ok, err := kv.Get(KeyLeadsView)
	if err != nil || !ok {
		return def
	}
	return SanitizeLeadsView(raw)
}

// SaveLeadsView persists the leads view-state, re-sanitizing on the way out
// so a bad in-memory value can never poison the stored document.
func SaveLeadsView(kv KV, vs types.LeadsViewState) {
	WriteJSON(kv, KeyLeadsView, sanitizeLeadsViewValue(vs))
}

// SanitizeLeadsView decodes a persisted document field by field, defaulting
// each invalid field.
func SanitizeLeadsView(raw []byte) types.LeadsViewState {
	def := types.DefaultLeadsView()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return def
	}

	vs := def
	if s, ok := decodeString(fields["searchTerm"]); ok {
		vs.SearchTerm = s
	}
	if s, ok := decodeString(fields["statusFilter"]); ok && types.ValidStatusFilter(s) {
		vs.StatusFilter = s
	}
	if s, ok := decodeString(fields["sortKey"]); ok && types.ValidSortKey(types.SortKey(s)) {
		vs.SortKey = types.SortKey(s)
	}
	if s, ok := decodeString(fields["sortDir"]); ok && types.ValidSortDir(types.SortDir(s)) {
		vs.SortDir = types.SortDir(s)
	}
	if id, ok := decodeNullableString(fields["selectedLeadId"]); ok {
		vs.SelectedLeadID = id
	}
	if n, ok := decodePageSize(fields["pageSize"]); ok {
		vs.PageSize = n
	}
	return vs
}

func sanitizeLeadsViewValue(vs types.LeadsViewState) types.LeadsViewState {
	raw, err := json.Marshal(vs)
	if err != nil {
		return types.DefaultLeadsView()
	}
	return SanitizeLeadsView(raw)
}

// LoadOppsView reads and sanitizes the persisted opportunities view-state.
func LoadOppsView(kv KV) types.OppsViewState {
	def := types.DefaultOppsView()
	raw, ok, err := kv.Get(KeyOppsView)
	if err != nil || !ok {
		return def
	}
	return SanitizeOppsView(raw)
}

// SaveOppsView persists the opportunities view-state.
func SaveOppsView(kv KV, vs types.OppsViewState) {
	WriteJSON(kv, KeyOppsView, sanitizeOppsViewValue(vs))
}

// SanitizeOppsView is the opportunities analog of SanitizeLeadsView.
func SanitizeOppsView(raw []byte) types.OppsViewState {
	def := types.DefaultOppsView()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return def
	}

	vs := def
	if s, ok := decodeString(fields["searchTerm"]); ok {
		vs.SearchTerm = s
	}
	if s, ok := decodeString(fields["stageFilter"]); ok && types.ValidStageFilter(s) {
		vs.StageFilter = s
	}
	if s, ok := decodeString(fields["sortDir"]); ok && types.ValidSortDir(types.SortDir(s)) {
		vs.SortDir = types.SortDir(s)
	}
	if id, ok := decodeNullableString(fields["selectedOpportunityId"]); ok {
		vs.SelectedOpportunityID = id
	}
	if n, ok := decodePageSize(fields["pageSize"]); ok {
		vs.PageSize = n
	}
	return vs
}

func sanitizeOppsViewValue(vs types.OppsViewState) types.OppsViewState {
	raw, err := json.Marshal(vs)
	if err != nil {
		return types.DefaultOppsView()
	}
	return SanitizeOppsView(raw)
}

// LoadLeads reads the canonical lead list; corruption yields the empty list.
func LoadLeads(kv KV) []types.Lead {
	return ReadJSON(kv, KeyLeads, []types.Lead(nil))
}

// SaveLeads persists the canonical lead list.
func SaveLeads(kv KV, leads []types.Lead) {
	WriteJSON(kv, KeyLeads, leads)
}

// ClearLeads removes the persisted canonical lead list.
func ClearLeads(kv KV) {
	Remove(kv, KeyLeads)
}

// LoadOpportunities reads the canonical opportunity list.
func LoadOpportunities(kv KV) []types.Opportunity {
	return ReadJSON(kv, KeyOpps, []types.Opportunity(nil))
}

// SaveOpportunities persists the canonical opportunity list.
func SaveOpportunities(kv KV, opps []types.Opportunity) {
	WriteJSON(kv, KeyOpps, opps)
}

// ClearOpportunities removes the persisted canonical opportunity list.
func ClearOpportunities(kv KV) {
	Remove(kv, KeyOpps)
}

func decodeString(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func decodeNullableString(raw json.RawMessage) (*string, bool) {
	if raw == nil {
		return nil, false
	}
	if string(raw) == "null" {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

func decodePageSize(raw json.RawMessage) (int, bool) {
	if raw == nil {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if n < 1 || n > 500 {
		return 0, false
	}
	return n, true
}
