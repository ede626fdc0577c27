package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerconsole/internal/leads"
	"sellerconsole/internal/remote"
	"sellerconsole/internal/storage"
	"sellerconsole/internal/types"
)

func TestLeads(t *testing.T) {
	seedLeads, err := Leads()
	require.NoError(t, err)
	require.NotEmpty(t, seedLeads)
	assert.NoError(t, Validate(seedLeads))
}

func TestValidate(t *testing.T) {
	good := types.Lead{ID: "L1", Name: "Ava", Company: "Nimbus", Email: "a@b.co", Source: "web", Score: 80, Status: types.StatusNew}

	t.Run("accepts a valid collection", func(t *testing.T) {
		assert.NoError(t, Validate([]types.Lead{good}))
	})

	t.Run("rejects empty ids", func(t *testing.T) {
		bad := good
		bad.ID = ""
		assert.Error(t, Validate([]types.Lead{bad}))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		assert.Error(t, Validate([]types.Lead{good, good}))
	})

	t.Run("rejects out-of-range scores", func(t *testing.T) {
		bad := good
		bad.Score = 101
		assert.Error(t, Validate([]types.Lead{bad}))
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		bad := good
		bad.Status = "maybe"
		assert.Error(t, Validate([]types.Lead{bad}))
	})
}

func TestFromFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leads.json")
		doc := `[{"id":"L1","name":"Ava","company":"Nimbus","email":"a@b.co","source":"web","score":80,"status":"new"}]`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		got, err := FromFile(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ava", got[0].Name)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leads.yaml")
		doc := "- id: L1\n  name: Ava\n  company: Nimbus\n  email: a@b.co\n  source: web\n  score: 80\n  status: new\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		got, err := FromFile(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Nimbus", got[0].Company)
	})

	t.Run("invalid collection is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leads.json")
		doc := `[{"id":"L1","score":200,"status":"new"}]`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		_, err := FromFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}

func TestImport(t *testing.T) {
	seedLeads := []types.Lead{
		{ID: "L1", Name: "Ava", Company: "Nimbus", Email: "a@b.co", Source: "web", Score: 80, Status: types.StatusNew},
	}

	t.Run("success loads the store", func(t *testing.T) {
		store := leads.NewStore(storage.NewMemoryKV())
		Import(context.Background(), store, seedLeads, remote.Options{FixedDelay: time.Millisecond})

		state := store.State()
		assert.Equal(t, types.LoadLoaded, state.Load.Kind)
		require.Len(t, state.Leads, 1)
	})

	t.Run("failure surfaces a message and keeps the list empty", func(t *testing.T) {
		store := leads.NewStore(storage.NewMemoryKV())
		Import(context.Background(), store, seedLeads, remote.Options{
			FixedDelay:         time.Millisecond,
			FailureProbability: 1,
		})

		state := store.State()
		assert.Equal(t, types.LoadError, state.Load.Kind)
		assert.Contains(t, state.Load.Message, "Failed to load leads")
		assert.Empty(t, state.Leads)
	})
}
