// Package console assembles the two stores, the durable backend and the
// seed import into one injectable handle. The TUI and the non-interactive
// subcommands both run against this; neither owns any state of its own.
package console

import (
	"context"

	"sellerconsole/internal/editor"
	"sellerconsole/internal/leads"
	"sellerconsole/internal/logging"
	"sellerconsole/internal/opps"
	"sellerconsole/internal/remote"
	"sellerconsole/internal/seed"
	"sellerconsole/internal/storage"
	"sellerconsole/internal/types"
	"sellerconsole/internal/view"
)

// Console owns the wiring between the stores and their collaborators.
type Console struct {
	kv    storage.KV
	leads *leads.Store
	opps  *opps.Store

	seedLeads []types.Lead
	loadOpts  remote.Options
	calls     editor.CallConfig
}

// Options configures a Console.
type Options struct {
	// Seed is the static lead collection used when no persisted canonical
	// list exists, and by Reset.
	Seed []types.Lead

	// LoadOpts shapes the simulated fetch of the initial import.
	LoadOpts remote.Options

	// Calls shapes the save/convert backend calls made by editors.
	Calls editor.CallConfig
}

// New builds a console on top of kv. Both stores rehydrate their
// view-states immediately; the canonical lead list is only populated by
// Start.
func New(kv storage.KV, opts Options) *Console {
	return &Console{
		kv:        kv,
		leads:     leads.NewStore(kv),
		opps:      opps.NewStore(kv),
		seedLeads: opts.Seed,
		loadOpts:  opts.LoadOpts,
		calls:     opts.Calls,
	}
}

// Leads returns the leads store.
func (c *Console) Leads() *leads.Store { return c.leads }

// Opps returns the opportunities store.
func (c *Console) Opps() *opps.Store { return c.opps }

// Calls returns the editor call configuration.
func (c *Console) Calls() editor.CallConfig { return c.calls }

// Start populates the canonical lead list: persisted data wins and is
// rehydrated synchronously; otherwise the seed is imported through the
// simulated backend (begin-load, latency, success-or-error). Blocking; the
// UI runs it in the background and watches the store's load state.
func (c *Console) Start(ctx context.Context) {
	if persisted := storage.LoadLeads(c.kv); len(persisted) > 0 {
		logging.Get(logging.CategoryBoot).Debugw("rehydrated leads", "count", len(persisted))
		c.leads.Dispatch(leads.ReplaceAll{Leads: persisted})
		return
	}
	seed.Import(ctx, c.leads, c.seedLeads, c.loadOpts)
}

// Reset is the confirmation-gated return to a pristine state: the
// opportunities canonical data is cleared (and its persisted document
// purged), lead mutations are discarded by reloading the seed, and both
// view-states are left alone. Idempotent; the two store dispatches are
// sequential, not transactional.
func (c *Console) Reset() {
	c.opps.Dispatch(opps.Reset{})
	c.leads.ResetToSeed(c.seedLeads)
	logging.Get(logging.CategoryBoot).Debugw("reset to seed", "leads", len(c.seedLeads))
}

// VisibleLeads derives the current filtered, sorted leads view.
func (c *Console) VisibleLeads() []types.Lead {
	state := c.leads.State()
	return view.VisibleLeads(state.Leads, state.View)
}

// VisibleOpportunities derives the current filtered, sorted opportunities
// view.
func (c *Console) VisibleOpportunities() []types.Opportunity {
	state := c.opps.State()
	return view.VisibleOpportunities(state.List, state.View)
}
