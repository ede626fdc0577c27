package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.LoadOptions()
	assert.Equal(t, 1200*time.Millisecond, opts.FixedDelay)

	cfg.LoadDelayMs = 10
	assert.Equal(t, 10*time.Millisecond, cfg.LoadOptions().FixedDelay)
}

func TestCallConfig(t *testing.T) {
	t.Run("defaults pass through", func(t *testing.T) {
		cc := DefaultConfig().CallConfig()
		assert.Equal(t, 500*time.Millisecond, cc.Save.MinDelay)
		assert.Equal(t, 900*time.Millisecond, cc.Save.MaxDelay)
		assert.Equal(t, 0.15, cc.Save.FailureProbability)
		assert.Equal(t, 0.10, cc.Convert.FailureProbability)
	})

	t.Run("overrides apply to both call kinds", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MinLatencyMs = 1
		cfg.MaxLatencyMs = 2
		cfg.SaveFailureRate = 1
		cfg.ConvertFailureRate = 0

		cc := cfg.CallConfig()
		assert.Equal(t, time.Millisecond, cc.Save.MinDelay)
		assert.Equal(t, time.Millisecond, cc.Convert.MinDelay)
		assert.Equal(t, 2*time.Millisecond, cc.Convert.MaxDelay)
		assert.Equal(t, 1.0, cc.Save.FailureProbability)
		assert.Zero(t, cc.Convert.FailureProbability)
	})

	t.Run("out-of-range rates fall back to defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SaveFailureRate = 1.5
		cc := cfg.CallConfig()
		assert.Equal(t, 0.15, cc.Save.FailureProbability)
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := DefaultConfig()
	cfg.Theme = "dark"
	cfg.DebugLogging = true
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme)
	assert.True(t, loaded.DebugLogging)
}
