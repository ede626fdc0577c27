// Package view derives the visible, ordered subset of a canonical list from
// its view-state. Derivation is pure: the same inputs always produce the
// same output, and the canonical slice is never mutated — a fresh slice is
// allocated for every call.
package view

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"sellerconsole/internal/types"
)

// Name comparisons are locale-aware and case/diacritic-insensitive, matching
// how users expect "ava" and "Áva" to collate. The collator carries internal
// buffers, so access is serialized.
var (
	collMu sync.Mutex
	coll   = collate.New(language.Und, collate.Loose)
)

func compareNames(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(a, b)
}

func containsFold(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// VisibleLeads filters and sorts leads per the view-state.
//
// Pipeline: case-insensitive substring match on name+company (a blank or
// whitespace-only term matches everything), exact status filter unless the
// "all" sentinel, then sort by the primary key with ties broken by name
// ascending. Direction flips the primary comparison only, never the
// tie-break.
func VisibleLeads(leads []types.Lead, vs types.LeadsViewState) []types.Lead {
	result := make([]types.Lead, 0, len(leads))

	query := strings.TrimSpace(vs.SearchTerm)
	for _, lead := range leads {
		if query != "" && !containsFold(lead.Name, query) && !containsFold(lead.Company, query) {
			continue
		}
		if vs.StatusFilter != types.StatusAll && string(lead.Status) != vs.StatusFilter {
			continue
		}
		result = append(result, lead)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		var primary int
		switch vs.SortKey {
		case types.SortByName:
			primary = compareNames(a.Name, b.Name)
		default: // score
			primary = a.Score - b.Score
		}
		if vs.SortDir == types.SortDesc {
			primary = -primary
		}
		if primary != 0 {
			return primary < 0
		}
		return compareNames(a.Name, b.Name) < 0
	})

	return result
}

// VisibleOpportunities filters and sorts opportunities per the view-state.
//
// Search matches name+accountName; the category filter is the stage. The
// primary sort key is amount, where an unset amount orders below every set
// amount: head under ascending, tail under descending. Ties break by name
// ascending regardless of direction.
func VisibleOpportunities(opps []types.Opportunity, vs types.OppsViewState) []types.Opportunity {
	result := make([]types.Opportunity, 0, len(opps))

	query := strings.TrimSpace(vs.SearchTerm)
	for _, opp := range opps {
		if query != "" && !containsFold(opp.Name, query) && !containsFold(opp.AccountName, query) {
			continue
		}
		if vs.StageFilter != types.StageAll && string(opp.Stage) != vs.StageFilter {
			continue
		}
		result = append(result, opp)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		primary := compareAmounts(a.Amount, b.Amount)
		if vs.SortDir == types.SortDesc {
			primary = -primary
		}
		if primary != 0 {
			return primary < 0
		}
		return compareNames(a.Name, b.Name) < 0
	})

	return result
}

// compareAmounts orders nil below every set amount.
func compareAmounts(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
