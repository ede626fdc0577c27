package remote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	t.Run("succeeds with zero failure probability", func(t *testing.T) {
		err := Call(context.Background(), Options{FixedDelay: time.Millisecond})
		assert.NoError(t, err)
	})

	t.Run("probability one forces failure", func(t *testing.T) {
		err := Call(context.Background(), Options{
			FixedDelay:         time.Millisecond,
			FailureProbability: 1,
		})
		assert.ErrorIs(t, err, ErrSimulated)
	})

	t.Run("deterministic rand decides the outcome", func(t *testing.T) {
		fail := Call(context.Background(), Options{
			FixedDelay:         time.Millisecond,
			FailureProbability: 0.15,
			Rand:               func() float64 { return 0.10 }, // below threshold: fail
		})
		assert.ErrorIs(t, fail, ErrSimulated)

		ok := Call(context.Background(), Options{
			FixedDelay:         time.Millisecond,
			FailureProbability: 0.15,
			Rand:               func() float64 { return 0.20 },
		})
		assert.NoError(t, ok)
	})

	t.Run("custom error replaces the simulated one", func(t *testing.T) {
		custom := errors.New("save rejected")
		err := Call(context.Background(), Options{
			FixedDelay:         time.Millisecond,
			FailureProbability: 1,
			Err:                custom,
		})
		assert.ErrorIs(t, err, custom)
	})

	t.Run("delay stays within the configured range", func(t *testing.T) {
		start := time.Now()
		err := Call(context.Background(), Options{
			MinDelay: 20 * time.Millisecond,
			MaxDelay: 40 * time.Millisecond,
		})
		elapsed := time.Since(start)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	})

	t.Run("cancellation interrupts the delay", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := Call(ctx, Options{FixedDelay: 10 * time.Second})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})
}
