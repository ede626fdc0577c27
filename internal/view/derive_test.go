package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerconsole/internal/types"
)

func lead(id, name, company string, score int, status types.LeadStatus) types.Lead {
	return types.Lead{
		ID:      id,
		Name:    name,
		Company: company,
		Email:   name + "@example.com",
		Source:  "web",
		Score:   score,
		Status:  status,
	}
}

func fixtureLeads() []types.Lead {
	return []types.Lead{
		lead("L1", "Ava Stone", "Nimbus", 80, types.StatusNew),
		lead("L2", "Ben Ortiz", "Acme", 92, types.StatusContacted),
		lead("L3", "Cleo Park", "Nimbus Labs", 80, types.StatusQualified),
		lead("L4", "dana voss", "Helix", 55, types.StatusNew),
		lead("L5", "Eli Frost", "Acme", 92, types.StatusUnqualified),
	}
}

func TestVisibleLeads(t *testing.T) {
	t.Run("deterministic for equal inputs", func(t *testing.T) {
		vs := types.DefaultLeadsView()
		first := VisibleLeads(fixtureLeads(), vs)
		second := VisibleLeads(fixtureLeads(), vs)
		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		input := fixtureLeads()
		vs := types.DefaultLeadsView()
		vs.SortKey = types.SortByName
		vs.SortDir = types.SortAsc
		_ = VisibleLeads(input, vs)
		assert.Empty(t, cmp.Diff(fixtureLeads(), input))
	})

	t.Run("search is case-insensitive over name and company", func(t *testing.T) {
		vs := types.DefaultLeadsView()
		vs.SearchTerm = "NIMBUS"
		got := VisibleLeads(fixtureLeads(), vs)
		require.Len(t, got, 2)
		for _, l := range got {
			assert.Contains(t, []string{"L1", "L3"}, l.ID)
		}
	})

	t.Run("blank and whitespace terms match everything", func(t *testing.T) {
		vs := types.DefaultLeadsView()
		vs.SearchTerm = "   "
		assert.Len(t, VisibleLeads(fixtureLeads(), vs), len(fixtureLeads()))
	})

	t.Run("status filter all equals no filter", func(t *testing.T) {
		all := types.DefaultLeadsView()
		all.StatusFilter = types.StatusAll
		none := types.DefaultLeadsView()
		assert.Empty(t, cmp.Diff(VisibleLeads(fixtureLeads(), none), VisibleLeads(fixtureLeads(), all)))
	})

	t.Run("status filter is exact", func(t *testing.T) {
		vs := types.DefaultLeadsView()
		vs.StatusFilter = string(types.StatusNew)
		got := VisibleLeads(fixtureLeads(), vs)
		require.Len(t, got, 2)
		assert.Equal(t, "L1", got[0].ID) // score 80 > 55 under desc
		assert.Equal(t, "L4", got[1].ID)
	})

	t.Run("score desc with name tie-break ascending", func(t *testing.T) {
		vs := types.DefaultLeadsView() // score desc
		got := VisibleLeads(fixtureLeads(), vs)
		require.Len(t, got, 5)
		// 92: Ben before Eli; 80: Ava before Cleo; then 55.
		gotIDs := ids(got)
		assert.Equal(t, []string{"L2", "L5", "L1", "L3", "L4"}, gotIDs)
	})

	t.Run("direction flips primary key only, never the tie-break", func(t *testing.T) {
		desc := types.DefaultLeadsView()
		asc := desc
		asc.SortDir = types.SortAsc

		gotDesc := VisibleLeads(fixtureLeads(), desc)
		gotAsc := VisibleLeads(fixtureLeads(), asc)

		// The two leads with score 92 keep the same relative order under
		// both directions: ties break by name ascending regardless.
		assert.Equal(t, []string{"L2", "L5", "L1", "L3", "L4"}, ids(gotDesc))
		assert.Equal(t, []string{"L4", "L1", "L3", "L2", "L5"}, ids(gotAsc))
	})

	t.Run("name sort is case-insensitive", func(t *testing.T) {
		vs := types.DefaultLeadsView()
		vs.SortKey = types.SortByName
		vs.SortDir = types.SortAsc
		got := VisibleLeads(fixtureLeads(), vs)
		// "dana voss" collates between Cleo and Eli despite the lowercase d.
		assert.Equal(t, []string{"L1", "L2", "L3", "L4", "L5"}, ids(got))
	})

	t.Run("qualified leads plus unmatched search yields empty", func(t *testing.T) {
		vs := types.DefaultLeadsView()
		vs.StatusFilter = string(types.StatusQualified)
		vs.SearchTerm = "zzz"
		got := VisibleLeads(fixtureLeads(), vs)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

func amt(v float64) *float64 { return &v }

func fixtureOpps() []types.Opportunity {
	return []types.Opportunity{
		{ID: "O1", Name: "Nimbus Expansion", AccountName: "Nimbus", Stage: types.StageProspecting, Amount: amt(5000)},
		{ID: "O2", Name: "Acme Renewal", AccountName: "Acme", Stage: types.StageNegotiation, Amount: nil},
		{ID: "O3", Name: "Helix Pilot", AccountName: "Helix", Stage: types.StageProspecting, Amount: amt(12000)},
		{ID: "O4", Name: "Acme Upsell", AccountName: "Acme", Stage: types.StageWon, Amount: amt(5000)},
	}
}

func TestVisibleOpportunities(t *testing.T) {
	t.Run("search matches name and account", func(t *testing.T) {
		vs := types.DefaultOppsView()
		vs.SearchTerm = "acme"
		got := VisibleOpportunities(fixtureOpps(), vs)
		require.Len(t, got, 2)
	})

	t.Run("stage filter is exact", func(t *testing.T) {
		vs := types.DefaultOppsView()
		vs.StageFilter = string(types.StageProspecting)
		got := VisibleOpportunities(fixtureOpps(), vs)
		require.Len(t, got, 2)
	})

	t.Run("unset amounts sort below every set amount", func(t *testing.T) {
		desc := types.DefaultOppsView() // amount desc
		gotDesc := VisibleOpportunities(fixtureOpps(), desc)
		require.Len(t, gotDesc, 4)
		assert.Equal(t, "O3", gotDesc[0].ID)
		assert.Equal(t, "O2", gotDesc[3].ID) // nil amount last under desc

		asc := desc
		asc.SortDir = types.SortAsc
		gotAsc := VisibleOpportunities(fixtureOpps(), asc)
		assert.Equal(t, "O2", gotAsc[0].ID) // nil amount first under asc
		assert.Equal(t, "O3", gotAsc[3].ID)
	})

	t.Run("equal amounts tie-break by name ascending in both directions", func(t *testing.T) {
		desc := types.DefaultOppsView()
		asc := desc
		asc.SortDir = types.SortAsc

		gotDesc := VisibleOpportunities(fixtureOpps(), desc)
		gotAsc := VisibleOpportunities(fixtureOpps(), asc)

		// O4 ("Acme Upsell") before O1 ("Nimbus Expansion") at 5000 either way.
		assert.Equal(t, []string{"O3", "O4", "O1", "O2"}, oppIDs(gotDesc))
		assert.Equal(t, []string{"O2", "O4", "O1", "O3"}, oppIDs(gotAsc))
	})
}

func ids(leads []types.Lead) []string {
	out := make([]string, len(leads))
	for i, l := range leads {
		out[i] = l.ID
	}
	return out
}

func oppIDs(opps []types.Opportunity) []string {
	out := make([]string, len(opps))
	for i, o := range opps {
		out[i] = o.ID
	}
	return out
}
