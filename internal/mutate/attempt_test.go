package mutate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttempt(t *testing.T) {
	t.Run("success leaves the optimistic state", func(t *testing.T) {
		var trace []string
		err := Attempt(context.Background(),
			func() { trace = append(trace, "apply") },
			func(context.Context) error { trace = append(trace, "call"); return nil },
			func() { trace = append(trace, "revert") },
		)
		assert.NoError(t, err)
		assert.Equal(t, []string{"apply", "call"}, trace)
	})

	t.Run("failure reverts after the call resolves", func(t *testing.T) {
		boom := errors.New("boom")
		var trace []string
		err := Attempt(context.Background(),
			func() { trace = append(trace, "apply") },
			func(context.Context) error { trace = append(trace, "call"); return boom },
			func() { trace = append(trace, "revert") },
		)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"apply", "call", "revert"}, trace)
	})
}

func TestAttemptDeferred(t *testing.T) {
	t.Run("commit only after success", func(t *testing.T) {
		var committed bool
		err := AttemptDeferred(context.Background(),
			func(context.Context) error { return nil },
			func() { committed = true },
		)
		assert.NoError(t, err)
		assert.True(t, committed)
	})

	t.Run("failure never commits", func(t *testing.T) {
		boom := errors.New("boom")
		var committed bool
		err := AttemptDeferred(context.Background(),
			func(context.Context) error { return boom },
			func() { committed = true },
		)
		assert.ErrorIs(t, err, boom)
		assert.False(t, committed)
	})
}
