// Package editor implements the panel-level mutation orchestrators. An
// editor holds local edit buffers for one record, tracks the per-panel
// pending state, and drives the optimistic save / convert protocols against
// the stores and the simulated backend. Closing an editor without saving
// discards the buffers and never touches the stores.
package editor

import (
	"errors"
	"time"

	"sellerconsole/internal/remote"
)

// Pending tags the in-flight mutation of a panel. At most one mutation is
// in flight per editor instance; while non-idle the UI must disable
// resubmission and the editor itself refuses with ErrBusy.
type Pending int

const (
	PendingIdle Pending = iota
	PendingSaving
	PendingConverting
)

func (p Pending) String() string {
	switch p {
	case PendingSaving:
		return "saving"
	case PendingConverting:
		return "converting"
	}
	return "idle"
}

var (
	// ErrBusy is returned when a mutation is already in flight on this
	// editor.
	ErrBusy = errors.New("a mutation is already in flight")

	// ErrInvalidEmail blocks saves and conversions before any mutation or
	// remote call happens.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidAmount blocks opportunity saves with a malformed or
	// negative amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotFound is returned when the edited record no longer exists in
	// its store.
	ErrNotFound = errors.New("record not found")
)

// CallConfig bundles the latency/failure options of the simulated backend
// calls an editor makes. Defaults mirror the demo backend: saves are
// moderately flaky, conversions slightly less so but slower on average.
type CallConfig struct {
	Save    remote.Options
	Convert remote.Options
}

// DefaultCallConfig returns the stock latency and failure probabilities.
func DefaultCallConfig() CallConfig {
	return CallConfig{
		Save: remote.Options{
			MinDelay:           500 * time.Millisecond,
			MaxDelay:           900 * time.Millisecond,
			FailureProbability: 0.15,
		},
		Convert: remote.Options{
			MinDelay:           500 * time.Millisecond,
			MaxDelay:           900 * time.Millisecond,
			FailureProbability: 0.10,
		},
	}
}
