package console

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"sellerconsole/internal/leads"
	"sellerconsole/internal/opps"
	"sellerconsole/internal/remote"
	"sellerconsole/internal/storage"
	"sellerconsole/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testSeed() []types.Lead {
	return []types.Lead{
		{ID: "L1", Name: "Ava Stone", Company: "Nimbus", Email: "ava@nimbus.io", Source: "web", Score: 80, Status: types.StatusNew},
		{ID: "L2", Name: "Ben Ortiz", Company: "Acme", Email: "ben@acme.com", Source: "referral", Score: 92, Status: types.StatusContacted},
	}
}

func fastOptions() Options {
	return Options{
		Seed:     testSeed(),
		LoadOpts: remote.Options{FixedDelay: time.Millisecond},
	}
}

func TestStart(t *testing.T) {
	t.Run("first run imports the seed", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		c := New(kv, fastOptions())
		c.Start(context.Background())

		state := c.Leads().State()
		assert.Equal(t, types.LoadLoaded, state.Load.Kind)
		assert.Len(t, state.Leads, 2)

		// The import persisted the canonical list.
		assert.Len(t, storage.LoadLeads(kv), 2)
	})

	t.Run("persisted data wins over the seed", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		first := New(kv, fastOptions())
		first.Start(context.Background())

		s := types.StatusQualified
		first.Leads().Dispatch(leads.Update{ID: "L1", Patch: types.LeadPatch{Status: &s}})

		second := New(kv, fastOptions())
		second.Start(context.Background())

		lead, ok := second.Leads().Lead("L1")
		require.True(t, ok)
		assert.Equal(t, types.StatusQualified, lead.Status, "edits survive a restart")
	})

	t.Run("load failure leaves an error state", func(t *testing.T) {
		opts := fastOptions()
		opts.LoadOpts.FailureProbability = 1
		c := New(storage.NewMemoryKV(), opts)
		c.Start(context.Background())

		state := c.Leads().State()
		assert.Equal(t, types.LoadError, state.Load.Kind)
		assert.Empty(t, state.Leads)
	})
}

func TestReset(t *testing.T) {
	kv := storage.NewMemoryKV()
	c := New(kv, fastOptions())
	c.Start(context.Background())

	s := types.StatusConverted
	c.Leads().Dispatch(leads.Update{ID: "L1", Patch: types.LeadPatch{Status: &s}})
	c.Opps().Dispatch(opps.Add{Opportunity: types.Opportunity{
		ID: "O1", Name: "Nimbus Expansion", Stage: types.StageProspecting, AccountName: "Nimbus",
	}})
	c.Leads().Dispatch(leads.SetSearch{Term: "keep"})

	c.Reset()

	lead, ok := c.Leads().Lead("L1")
	require.True(t, ok)
	assert.Equal(t, types.StatusNew, lead.Status)
	assert.Empty(t, c.Opps().State().List)
	assert.Equal(t, "keep", c.Leads().State().View.SearchTerm)

	// Idempotent.
	c.Reset()
	assert.Empty(t, c.Opps().State().List)

	_, ok, err := kv.Get(storage.KeyOpps)
	require.NoError(t, err)
	assert.False(t, ok, "the persisted opportunity document is purged")
}

func TestVisibleDerivation(t *testing.T) {
	c := New(storage.NewMemoryKV(), fastOptions())
	c.Start(context.Background())

	c.Leads().Dispatch(leads.SetSearch{Term: "nimbus"})
	visible := c.VisibleLeads()
	require.Len(t, visible, 1)
	assert.Equal(t, "L1", visible[0].ID)

	assert.Empty(t, c.VisibleOpportunities())
}
