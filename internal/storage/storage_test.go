package storage

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerconsole/internal/types"
)

func TestReadJSON(t *testing.T) {
	type doc struct {
		Name string `json:"name"`
	}

	t.Run("absent key yields default", func(t *testing.T) {
		kv := NewMemoryKV()
		got := ReadJSON(kv, "missing", doc{Name: "fallback"})
		assert.Equal(t, "fallback", got.Name)
	})

	t.Run("corrupt document yields default", func(t *testing.T) {
		kv := NewMemoryKV()
		require.NoError(t, kv.Set("k", []byte("{not json")))
		got := ReadJSON(kv, "k", doc{Name: "fallback"})
		assert.Equal(t, "fallback", got.Name)
	})

	t.Run("round trip", func(t *testing.T) {
		kv := NewMemoryKV()
		WriteJSON(kv, "k", doc{Name: "stored"})
		got := ReadJSON(kv, "k", doc{})
		assert.Equal(t, "stored", got.Name)
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("nil value deletes the key", func(t *testing.T) {
		kv := NewMemoryKV()
		WriteJSON(kv, "k", map[string]string{"a": "b"})
		require.Equal(t, 1, kv.Len())

		WriteJSON(kv, "k", nil)
		assert.Equal(t, 0, kv.Len())
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		kv := NewMemoryKV()
		kv.FailWrites = errors.New("quota exceeded")
		WriteJSON(kv, "k", map[string]string{"a": "b"}) // must not panic
		assert.Equal(t, 0, kv.Len())
	})
}

func TestSanitizeLeadsView(t *testing.T) {
	t.Run("valid document passes through", func(t *testing.T) {
		raw := []byte(`{"searchTerm":"acme","statusFilter":"new","sortKey":"name","sortDir":"asc","selectedLeadId":"L1","pageSize":50}`)
		got := SanitizeLeadsView(raw)
		assert.Equal(t, "acme", got.SearchTerm)
		assert.Equal(t, "new", got.StatusFilter)
		assert.Equal(t, types.SortByName, got.SortKey)
		assert.Equal(t, types.SortAsc, got.SortDir)
		require.NotNil(t, got.SelectedLeadID)
		assert.Equal(t, "L1", *got.SelectedLeadID)
		assert.Equal(t, 50, got.PageSize)
	})

	t.Run("each invalid field degrades alone", func(t *testing.T) {
		raw := []byte(`{"searchTerm":"acme","statusFilter":"bogus","sortKey":"name","sortDir":"sideways","selectedLeadId":null,"pageSize":-3}`)
		got := SanitizeLeadsView(raw)
		def := types.DefaultLeadsView()

		assert.Equal(t, "acme", got.SearchTerm)
		assert.Equal(t, def.StatusFilter, got.StatusFilter)
		assert.Equal(t, types.SortByName, got.SortKey)
		assert.Equal(t, def.SortDir, got.SortDir)
		assert.Nil(t, got.SelectedLeadID)
		assert.Equal(t, def.PageSize, got.PageSize)
	})

	t.Run("wrongly typed fields degrade", func(t *testing.T) {
		raw := []byte(`{"searchTerm":42,"pageSize":"twenty"}`)
		got := SanitizeLeadsView(raw)
		assert.Empty(t, cmp.Diff(types.DefaultLeadsView(), got))
	})

	t.Run("non-object document is discarded wholesale", func(t *testing.T) {
		assert.Empty(t, cmp.Diff(types.DefaultLeadsView(), SanitizeLeadsView([]byte(`"oops"`))))
		assert.Empty(t, cmp.Diff(types.DefaultLeadsView(), SanitizeLeadsView([]byte(`[1,2]`))))
	})

	t.Run("page size has an upper bound", func(t *testing.T) {
		got := SanitizeLeadsView([]byte(`{"pageSize":100000}`))
		assert.Equal(t, types.DefaultLeadsView().PageSize, got.PageSize)
	})
}

func TestSanitizeOppsView(t *testing.T) {
	raw := []byte(`{"searchTerm":"pilot","stageFilter":"won","sortDir":"asc","selectedOpportunityId":"O1","pageSize":5}`)
	got := SanitizeOppsView(raw)
	assert.Equal(t, "pilot", got.SearchTerm)
	assert.Equal(t, "won", got.StageFilter)
	assert.Equal(t, types.SortAsc, got.SortDir)
	require.NotNil(t, got.SelectedOpportunityID)
	assert.Equal(t, "O1", *got.SelectedOpportunityID)
	assert.Equal(t, 5, got.PageSize)

	bad := SanitizeOppsView([]byte(`{"stageFilter":"closed-maybe"}`))
	assert.Equal(t, types.StageAll, bad.StageFilter)
}

func TestViewStateSaveSanitizes(t *testing.T) {
	kv := NewMemoryKV()
	vs := types.DefaultLeadsView()
	vs.SortDir = "sideways" // a bad in-memory value must not poison storage
	SaveLeadsView(kv, vs)

	got := LoadLeadsView(kv)
	assert.Equal(t, types.SortDesc, got.SortDir)
}

func TestCanonicalListRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	in := []types.Lead{
		{ID: "L1", Name: "Ava Stone", Company: "Nimbus", Email: "ava@nimbus.io", Source: "web", Score: 80, Status: types.StatusNew},
	}
	SaveLeads(kv, in)
	out := LoadLeads(kv)
	assert.Empty(t, cmp.Diff(in, out))

	ClearLeads(kv)
	assert.Nil(t, LoadLeads(kv))
}
