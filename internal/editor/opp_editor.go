package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"sellerconsole/internal/mutate"
	"sellerconsole/internal/opps"
	"sellerconsole/internal/remote"
	"sellerconsole/internal/types"
)

// OpportunityEditor orchestrates edits to a single opportunity: name,
// account, stage and amount, saved with the same optimistic-apply /
// exact-rollback protocol as lead saves. The amount buffer is kept as
// text so partial input survives; a blank buffer clears the amount.
type OpportunityEditor struct {
	mu   sync.Mutex
	opps *opps.Store
	cfg  CallConfig

	oppID   string
	base    types.Opportunity
	name    string
	account string
	stage   types.OpportunityStage
	amount  string
	pending Pending
	errMsg  string
}

// NewOpportunityEditor opens an editor for opp.
func NewOpportunityEditor(oppsStore *opps.Store, opp types.Opportunity, cfg CallConfig) *OpportunityEditor {
	return &OpportunityEditor{
		opps:    oppsStore,
		cfg:     cfg,
		oppID:   opp.ID,
		base:    opp,
		name:    opp.Name,
		account: opp.AccountName,
		stage:   opp.Stage,
		amount:  formatAmount(opp.Amount),
	}
}

// SetName updates the name buffer.
func (e *OpportunityEditor) SetName(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.name = v
}

// SetAccountName updates the account buffer.
func (e *OpportunityEditor) SetAccountName(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.account = v
}

// SetStage updates the stage buffer.
func (e *OpportunityEditor) SetStage(s types.OpportunityStage) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stage = s
}

// SetAmount updates the raw amount buffer.
func (e *OpportunityEditor) SetAmount(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.amount = v
}

// Name returns the name buffer.
func (e *OpportunityEditor) Name() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.name
}

// AccountName returns the account buffer.
func (e *OpportunityEditor) AccountName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.account
}

// Stage returns the stage buffer.
func (e *OpportunityEditor) Stage() types.OpportunityStage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stage
}

// Amount returns the raw amount buffer.
func (e *OpportunityEditor) Amount() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.amount
}

// AmountError returns the inline validation message for the amount buffer,
// or "" when it is blank or a non-negative number.
func (e *OpportunityEditor) AmountError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, _, ok := parseAmount(e.amount); !ok {
		return "Enter a non-negative amount."
	}
	return ""
}

// Dirty reports whether the buffers differ from the record at open time.
func (e *OpportunityEditor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.name != e.base.Name ||
		e.account != e.base.AccountName ||
		e.stage != e.base.Stage ||
		e.amount != formatAmount(e.base.Amount)
}

// Pending returns the in-flight mutation state.
func (e *OpportunityEditor) Pending() Pending {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// ErrorMessage returns the user-facing message of the last failed save.
func (e *OpportunityEditor) ErrorMessage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

// Save applies the edit buffers optimistically and awaits the simulated
// backend, restoring the exact pre-mutation record on failure.
func (e *OpportunityEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.pending != PendingIdle {
		e.mu.Unlock()
		return ErrBusy
	}
	amount, clear, ok := parseAmount(e.amount)
	if !ok {
		e.mu.Unlock()
		return ErrInvalidAmount
	}
	name, account, stage := e.name, e.account, e.stage
	e.pending = PendingSaving
	e.errMsg = ""
	e.mu.Unlock()

	defer e.settle()

	previous, found := e.opps.Opportunity(e.oppID)
	if !found {
		e.fail("Opportunity no longer exists.")
		return ErrNotFound
	}

	patch := types.OppPatch{
		Name:        &name,
		AccountName: &account,
		Stage:       &stage,
		Amount:      amount,
		ClearAmount: clear,
	}
	err := mutate.Attempt(ctx,
		func() { e.opps.Dispatch(opps.Update{ID: e.oppID, Patch: patch}) },
		func(ctx context.Context) error { return remote.Call(ctx, e.cfg.Save) },
		func() { e.opps.Dispatch(opps.Update{ID: e.oppID, Patch: types.PatchFromOpportunity(previous)}) },
	)
	if err != nil {
		e.fail("Failed to save. Please try again.")
		return fmt.Errorf("save opportunity %s: %w", e.oppID, err)
	}

	e.rebase(patch.Apply(previous))
	return nil
}

// Cancel discards the edit buffers without touching the store.
func (e *OpportunityEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.name = e.base.Name
	e.account = e.base.AccountName
	e.stage = e.base.Stage
	e.amount = formatAmount(e.base.Amount)
	e.errMsg = ""
}

func (e *OpportunityEditor) settle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = PendingIdle
}

func (e *OpportunityEditor) fail(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errMsg = msg
}

func (e *OpportunityEditor) rebase(committed types.Opportunity) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.base = committed
	e.name = committed.Name
	e.account = committed.AccountName
	e.stage = committed.Stage
	e.amount = formatAmount(committed.Amount)
}

// parseAmount interprets the text buffer: blank clears the amount, a
// non-negative number sets it, anything else is invalid.
func parseAmount(raw string) (amount *float64, clear bool, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, true, true
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v < 0 {
		return nil, false, false
	}
	return &v, false, true
}

func formatAmount(amount *float64) string {
	if amount == nil {
		return ""
	}
	return strconv.FormatFloat(*amount, 'f', -1, 64)
}
