package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"sellerconsole/internal/email"
	"sellerconsole/internal/leads"
	"sellerconsole/internal/logging"
	"sellerconsole/internal/mutate"
	"sellerconsole/internal/opps"
	"sellerconsole/internal/remote"
	"sellerconsole/internal/types"
)

// LeadEditor orchestrates edits to a single lead: optimistic saves with
// exact rollback, and conversion into an opportunity. Conversion is
// call-then-commit: the remote call runs first and both store mutations are
// dispatched only after it succeeds, so no intermediate state is ever
// visible. The two dispatches are sequential, not transactional; a crash
// between them is an accepted risk of this design.
type LeadEditor struct {
	mu    sync.Mutex
	leads *leads.Store
	opps  *opps.Store
	cfg   CallConfig

	newID func() string
	now   func() time.Time

	leadID  string
	base    types.Lead // the record as it was when the panel opened
	email   string
	status  types.LeadStatus
	pending Pending
	errMsg  string
}

// NewLeadEditor opens an editor for lead, with edit buffers initialized
// from the record.
func NewLeadEditor(leadsStore *leads.Store, oppsStore *opps.Store, lead types.Lead, cfg CallConfig) *LeadEditor {
	return &LeadEditor{
		leads:  leadsStore,
		opps:   oppsStore,
		cfg:    cfg,
		newID:  uuid.NewString,
		now:    time.Now,
		leadID: lead.ID,
		base:   lead,
		email:  lead.Email,
		status: lead.Status,
	}
}

// SetEmail updates the email edit buffer.
func (e *LeadEditor) SetEmail(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.email = v
}

// SetStatus updates the status edit buffer.
func (e *LeadEditor) SetStatus(s types.LeadStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = s
}

// Email returns the email buffer.
func (e *LeadEditor) Email() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.email
}

// Status returns the status buffer.
func (e *LeadEditor) Status() types.LeadStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// EmailError returns the inline validation message for the email buffer,
// or "" when the buffer is valid.
func (e *LeadEditor) EmailError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return email.ValidationMessage(e.email)
}

// Dirty reports whether the buffers differ from the record at open time.
func (e *LeadEditor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.email != e.base.Email || e.status != e.base.Status
}

// Pending returns the in-flight mutation state.
func (e *LeadEditor) Pending() Pending {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// ErrorMessage returns the user-facing message of the last failed
// mutation, cleared when a new one starts.
func (e *LeadEditor) ErrorMessage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

// Save applies the edit buffers optimistically and awaits the simulated
// backend. On failure the pre-mutation record is restored verbatim — every
// field, not just the changed ones — and a user-facing message is surfaced.
// A validation failure aborts before any mutation; a busy editor refuses.
func (e *LeadEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.pending != PendingIdle {
		e.mu.Unlock()
		return ErrBusy
	}
	if email.ValidationMessage(e.email) != "" {
		e.mu.Unlock()
		return ErrInvalidEmail
	}
	normalized := email.Normalize(e.email)
	status := e.status
	e.pending = PendingSaving
	e.errMsg = ""
	e.mu.Unlock()

	defer e.settle()

	previous, ok := e.leads.Lead(e.leadID)
	if !ok {
		e.fail("Lead no longer exists.")
		return ErrNotFound
	}

	patch := types.LeadPatch{Email: &normalized, Status: &status}
	err := mutate.Attempt(ctx,
		func() { e.leads.Dispatch(leads.Update{ID: e.leadID, Patch: patch}) },
		func(ctx context.Context) error { return remote.Call(ctx, e.cfg.Save) },
		func() { e.leads.Dispatch(leads.Update{ID: e.leadID, Patch: types.PatchFromLead(previous)}) },
	)
	if err != nil {
		e.fail("Failed to save. Please try again.")
		return fmt.Errorf("save lead %s: %w", e.leadID, err)
	}

	e.rebase(patch.Apply(previous))
	return nil
}

// Convert turns the lead into an opportunity. The email buffer must be
// valid; on validation failure nothing is mutated and no call is made. On
// success a new opportunity (stage prospecting, optional amount) is
// prepended and the lead is marked converted with the normalized email —
// both committed only after the remote call succeeds.
func (e *LeadEditor) Convert(ctx context.Context, amount *float64) (types.Opportunity, error) {
	e.mu.Lock()
	if e.pending != PendingIdle {
		e.mu.Unlock()
		return types.Opportunity{}, ErrBusy
	}
	normalized := email.Normalize(e.email)
	if !email.Valid(normalized) {
		e.errMsg = "Enter a valid email address before converting."
		e.mu.Unlock()
		return types.Opportunity{}, ErrInvalidEmail
	}
	e.pending = PendingConverting
	e.errMsg = ""
	e.mu.Unlock()

	defer e.settle()

	lead, ok := e.leads.Lead(e.leadID)
	if !ok {
		e.fail("Lead no longer exists.")
		return types.Opportunity{}, ErrNotFound
	}

	var opp types.Opportunity
	err := mutate.AttemptDeferred(ctx,
		func(ctx context.Context) error { return remote.Call(ctx, e.cfg.Convert) },
		func() {
			opp = types.Opportunity{
				ID:          e.newID(),
				Name:        lead.Name,
				Stage:       types.StageProspecting,
				Amount:      amount,
				AccountName: lead.Company,
				LeadID:      lead.ID,
				CreatedAt:   e.now(),
			}
			converted := types.StatusConverted
			e.opps.Dispatch(opps.Add{Opportunity: opp})
			e.leads.Dispatch(leads.Update{ID: lead.ID, Patch: types.LeadPatch{
				Status: &converted,
				Email:  &normalized,
			}})
		},
	)
	if err != nil {
		e.fail("Conversion failed. Please try again.")
		return types.Opportunity{}, fmt.Errorf("convert lead %s: %w", e.leadID, err)
	}

	logging.Get(logging.CategoryLeads).Debugw("converted", "lead", lead.ID, "opportunity", opp.ID)
	lead.Status = types.StatusConverted
	lead.Email = normalized
	e.rebase(lead)
	return opp, nil
}

// Cancel discards the edit buffers, restoring them to the record as of
// open time. It performs no store mutation and does not cancel an
// already-dispatched call.
func (e *LeadEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.email = e.base.Email
	e.status = e.base.Status
	e.errMsg = ""
}

func (e *LeadEditor) settle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = PendingIdle
}

func (e *LeadEditor) fail(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errMsg = msg
}

// rebase points the dirty comparison at the committed record so a saved
// panel stops reporting unsaved changes.
func (e *LeadEditor) rebase(committed types.Lead) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.base = committed
	e.email = committed.Email
	e.status = committed.Status
}
