// Package leads owns the canonical lead list and its view-state. All
// mutation flows through Dispatch with a pure reducer at the center; the
// store adds locking, persistence side effects and change notification
// around it.
package leads

import (
	"sync"

	"sellerconsole/internal/logging"
	"sellerconsole/internal/storage"
	"sellerconsole/internal/types"
)

// State is the full reducer state. Slices inside a State returned by the
// store are copies; callers may keep them without racing the store.
type State struct {
	Load  types.LoadState
	Leads []types.Lead
	View  types.LeadsViewState
}

// Reduce applies an action to a state and returns the next state. Pure:
// neither input is mutated, and the canonical slice is copied before any
// record changes.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case BeginLoad:
		state.Load = types.LoadStateLoading()

	case LoadSucceeded:
		state.Load = types.LoadStateLoaded()
		state.Leads = cloneLeads(a.Leads)

	case LoadFailed:
		state.Load = types.LoadStateError(a.Message)

	case SetSearch:
		state.View.SearchTerm = a.Term

	case SetStatusFilter:
		state.View.StatusFilter = a.Filter

	case SetSort:
		state.View.SortKey = a.Key
		state.View.SortDir = a.Dir

	case Select:
		state.View.SelectedLeadID = a.ID

	case SetPageSize:
		if a.Size > 0 {
			state.View.PageSize = a.Size
		}

	case Update:
		next := cloneLeads(state.Leads)
		for i := range next {
			if next[i].ID == a.ID {
				next[i] = a.Patch.Apply(next[i])
				break
			}
		}
		state.Leads = next

	case ReplaceAll:
		state.Load = types.LoadStateLoaded()
		state.Leads = cloneLeads(a.Leads)
	}
	return state
}

// Store is the owned state container for leads. It is safe for concurrent
// use; every view-state or canonical-list change is persisted as a
// fire-and-forget side effect of Dispatch.
type Store struct {
	mu    sync.RWMutex
	state State
	kv    storage.KV
	subs  []func()
}

// NewStore initializes a store from the persisted view-state (validated,
// defaulting on corruption) with an empty canonical list and an idle load
// state.
func NewStore(kv storage.KV) *Store {
	return &Store{
		kv: kv,
		state: State{
			Load: types.LoadStateIdle(),
			View: storage.LoadLeadsView(kv),
		},
	}
}

// Dispatch applies an action and persists the affected slice of state.
// Persistence failures are swallowed inside the storage layer and never
// block the transition.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	state := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	logging.Get(logging.CategoryLeads).Debugw("dispatch", "action", actionName(action))
	s.persist(action, state)
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) persist(action Action, state State) {
	switch action.(type) {
	case SetSearch, SetStatusFilter, SetSort, Select, SetPageSize:
		storage.SaveLeadsView(s.kv, state.View)
	case LoadSucceeded, Update, ReplaceAll:
		storage.SaveLeads(s.kv, state.Leads)
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Lead returns the lead with the given id.
func (s *Store) Lead(id string) (types.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lead := range s.state.Leads {
		if lead.ID == id {
			return lead, true
		}
	}
	return types.Lead{}, false
}

// Selected returns the currently selected lead, if any.
func (s *Store) Selected() (types.Lead, bool) {
	s.mu.RLock()
	id := s.state.View.SelectedLeadID
	s.mu.RUnlock()
	if id == nil {
		return types.Lead{}, false
	}
	return s.Lead(*id)
}

// Subscribe registers fn to run after every dispatch. Subscribers are
// invoked outside the store lock and must not re-enter Dispatch
// synchronously with unbounded recursion.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// ResetToSeed replaces the canonical list with the seed and repersists it,
// discarding all lead mutations. View-state is untouched.
func (s *Store) ResetToSeed(seed []types.Lead) {
	s.Dispatch(ReplaceAll{Leads: seed})
}

func (s *Store) snapshotLocked() State {
	out := s.state
	out.Leads = cloneLeads(s.state.Leads)
	return out
}

func cloneLeads(in []types.Lead) []types.Lead {
	if in == nil {
		return nil
	}
	out := make([]types.Lead, len(in))
	copy(out, in)
	return out
}

func actionName(action Action) string {
	switch action.(type) {
	case BeginLoad:
		return "load:start"
	case LoadSucceeded:
		return "load:success"
	case LoadFailed:
		return "load:error"
	case SetSearch:
		return "view:setSearch"
	case SetStatusFilter:
		return "view:setStatus"
	case SetSort:
		return "view:setSort"
	case Select:
		return "view:select"
	case SetPageSize:
		return "view:setPageSize"
	case Update:
		return "lead:update"
	case ReplaceAll:
		return "lead:replaceAll"
	}
	return "unknown"
}
