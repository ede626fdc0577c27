// Package remote simulates the unreliable backend the console talks to.
// There is no real transport; calls sleep a bounded random delay and then
// fail with a configurable probability, which is enough to exercise the
// optimistic-mutation machinery the way a flaky network would.
package remote

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"sellerconsole/internal/logging"
)

// ErrSimulated is the failure returned by a call that loses the dice roll.
var ErrSimulated = errors.New("simulated network error")

// Options configures one simulated call. The zero value means a 600–900ms
// delay and no failures.
type Options struct {
	// FixedDelay, when positive, overrides the MinDelay/MaxDelay range.
	FixedDelay time.Duration
	MinDelay   time.Duration
	MaxDelay   time.Duration

	// FailureProbability in [0,1]; 1 forces failure, 0 disables it.
	FailureProbability float64

	// Rand supplies uniform values in [0,1). Defaults to math/rand; tests
	// inject a deterministic source.
	Rand func() float64

	// Err is returned on failure instead of ErrSimulated when non-nil.
	Err error
}

const (
	defaultMinDelay = 600 * time.Millisecond
	defaultMaxDelay = 900 * time.Millisecond
)

// Call blocks for the simulated latency, honoring ctx cancellation, then
// either succeeds or returns the simulated failure.
func Call(ctx context.Context, opts Options) error {
	random := opts.Rand
	if random == nil {
		random = rand.Float64
	}

	delay := opts.FixedDelay
	if delay <= 0 {
		min, max := opts.MinDelay, opts.MaxDelay
		if min <= 0 && max <= 0 {
			min, max = defaultMinDelay, defaultMaxDelay
		}
		if max < min {
			max = min
		}
		delay = min + time.Duration(float64(max-min)*random())
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if opts.FailureProbability > 0 && random() < opts.FailureProbability {
		err := opts.Err
		if err == nil {
			err = ErrSimulated
		}
		logging.Get(logging.CategoryRemote).Debugw("call failed", "delay", delay, "error", err)
		return err
	}

	logging.Get(logging.CategoryRemote).Debugw("call ok", "delay", delay)
	return nil
}
