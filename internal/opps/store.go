// Package opps owns the canonical opportunity list and its view-state. It
// mirrors the leads store's reducer shape, plus the reset intent that
// purges persisted canonical data.
package opps

import (
	"sync"

	"sellerconsole/internal/logging"
	"sellerconsole/internal/storage"
	"sellerconsole/internal/types"
)

// State is the full reducer state for opportunities.
type State struct {
	List []types.Opportunity
	View types.OppsViewState
}

// Reduce applies an action to a state and returns the next state without
// mutating either input.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case Add:
		next := make([]types.Opportunity, 0, len(state.List)+1)
		next = append(next, a.Opportunity)
		next = append(next, state.List...)
		state.List = next

	case Update:
		next := cloneOpps(state.List)
		for i := range next {
			if next[i].ID == a.ID {
				next[i] = a.Patch.Apply(next[i])
				break
			}
		}
		state.List = next

	case SetSearch:
		state.View.SearchTerm = a.Term

	case SetStageFilter:
		state.View.StageFilter = a.Filter

	case SetSort:
		state.View.SortDir = a.Dir

	case Select:
		state.View.SelectedOpportunityID = a.ID

	case SetPageSize:
		if a.Size > 0 {
			state.View.PageSize = a.Size
		}

	case Rehydrate:
		state.List = cloneOpps(a.Opportunities)

	case Reset:
		state.List = nil
	}
	return state
}

// Store is the owned state container for opportunities.
type Store struct {
	mu    sync.RWMutex
	state State
	kv    storage.KV
	subs  []func()
}

// NewStore initializes a store from the persisted view-state and canonical
// list, both validated and defaulting on corruption.
func NewStore(kv storage.KV) *Store {
	s := &Store{
		kv: kv,
		state: State{
			View: storage.LoadOppsView(kv),
		},
	}
	if persisted := storage.LoadOpportunities(kv); len(persisted) > 0 {
		s.state.List = persisted
	}
	return s
}

// Dispatch applies an action and persists the affected slice of state.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	state := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	logging.Get(logging.CategoryOpps).Debugw("dispatch", "action", actionName(action))
	s.persist(action, state)
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) persist(action Action, state State) {
	switch action.(type) {
	case SetSearch, SetStageFilter, SetSort, Select, SetPageSize:
		storage.SaveOppsView(s.kv, state.View)
	case Add, Update, Rehydrate:
		storage.SaveOpportunities(s.kv, state.List)
	case Reset:
		// Purge rather than write an empty document: pristine means the key
		// is gone, so the next session rehydrates nothing.
		storage.ClearOpportunities(s.kv)
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Opportunity returns the opportunity with the given id.
func (s *Store) Opportunity(id string) (types.Opportunity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, opp := range s.state.List {
		if opp.ID == id {
			return opp, true
		}
	}
	return types.Opportunity{}, false
}

// Selected returns the currently selected opportunity, if any.
func (s *Store) Selected() (types.Opportunity, bool) {
	s.mu.RLock()
	id := s.state.View.SelectedOpportunityID
	s.mu.RUnlock()
	if id == nil {
		return types.Opportunity{}, false
	}
	return s.Opportunity(*id)
}

// Subscribe registers fn to run after every dispatch.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) snapshotLocked() State {
	out := s.state
	out.List = cloneOpps(s.state.List)
	return out
}

func cloneOpps(in []types.Opportunity) []types.Opportunity {
	if in == nil {
		return nil
	}
	out := make([]types.Opportunity, len(in))
	copy(out, in)
	return out
}

func actionName(action Action) string {
	switch action.(type) {
	case Add:
		return "opp:add"
	case Update:
		return "opp:update"
	case SetSearch:
		return "view:setSearch"
	case SetStageFilter:
		return "view:setStage"
	case SetSort:
		return "view:setSort"
	case Select:
		return "view:select"
	case SetPageSize:
		return "view:setPageSize"
	case Rehydrate:
		return "opp:rehydrate"
	case Reset:
		return "opp:reset"
	}
	return "unknown"
}
