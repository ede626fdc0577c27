// Package seed supplies the static lead collection consumed once at
// startup, and the import flow that feeds it into the leads store through
// the simulated backend. The embedded JSON is canonical; an external JSON
// or YAML file can override it for demos.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"sellerconsole/internal/leads"
	"sellerconsole/internal/logging"
	"sellerconsole/internal/remote"
	"sellerconsole/internal/types"
)

//go:embed leads.json
var embedded []byte

// DefaultLoadDelay matches the demo backend's initial fetch.
const DefaultLoadDelay = 1200 * time.Millisecond

// Leads returns the embedded seed collection.
func Leads() ([]types.Lead, error) {
	var parsed []types.Lead
	if err := json.Unmarshal(embedded, &parsed); err != nil {
		return nil, fmt.Errorf("embedded seed is corrupt: %w", err)
	}
	return parsed, nil
}

// FromFile reads a seed collection from a .json or .yaml file and
// validates it.
func FromFile(path string) ([]types.Lead, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var parsed []types.Lead
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &parsed)
	default:
		err = json.Unmarshal(raw, &parsed)
	}
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	if err := Validate(parsed); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return parsed, nil
}

// Validate checks a seed collection: non-empty unique ids, scores in
// [0,100], known statuses.
func Validate(seedLeads []types.Lead) error {
	seen := make(map[string]struct{}, len(seedLeads))
	for i, lead := range seedLeads {
		if lead.ID == "" {
			return fmt.Errorf("lead %d has an empty id", i)
		}
		if _, dup := seen[lead.ID]; dup {
			return fmt.Errorf("duplicate lead id %q", lead.ID)
		}
		seen[lead.ID] = struct{}{}
		if lead.Score < 0 || lead.Score > 100 {
			return fmt.Errorf("lead %q score %d outside 0-100", lead.ID, lead.Score)
		}
		if !types.ValidStatus(lead.Status) {
			return fmt.Errorf("lead %q has unknown status %q", lead.ID, lead.Status)
		}
	}
	return nil
}

// Import runs the one-shot initial load into the leads store: begin-load,
// simulated fetch latency, then success with the seed records or failure
// with a message. It must only be called when no persisted canonical list
// exists; callers rehydrate persisted lists directly instead.
func Import(ctx context.Context, store *leads.Store, seedLeads []types.Lead, opts remote.Options) {
	store.Dispatch(leads.BeginLoad{})

	if err := remote.Call(ctx, opts); err != nil {
		store.Dispatch(leads.LoadFailed{Message: loadErrorMessage(err)})
		return
	}

	logging.Get(logging.CategoryBoot).Debugw("seed imported", "count", len(seedLeads))
	store.Dispatch(leads.LoadSucceeded{Leads: seedLeads})
}

func loadErrorMessage(err error) string {
	if err == nil {
		return "Failed to load leads."
	}
	return "Failed to load leads: " + err.Error()
}
