// Package config holds user preferences for the seller console, stored as
// JSON in a project-local .seller directory or the home-level fallback.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"sellerconsole/internal/editor"
	"sellerconsole/internal/remote"
	"sellerconsole/internal/seed"
)

// Config holds user preferences and the simulated-backend knobs.
type Config struct {
	Theme        string `json:"theme"` // "light" or "dark"
	DebugLogging bool   `json:"debug_logging"`

	// Simulated backend shaping. Zero values mean the stock demo behavior.
	LoadDelayMs        int     `json:"load_delay_ms"`
	MinLatencyMs       int     `json:"min_latency_ms"`
	MaxLatencyMs       int     `json:"max_latency_ms"`
	SaveFailureRate    float64 `json:"save_failure_rate"`
	ConvertFailureRate float64 `json:"convert_failure_rate"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:              "light",
		LoadDelayMs:        int(seed.DefaultLoadDelay / time.Millisecond),
		MinLatencyMs:       500,
		MaxLatencyMs:       900,
		SaveFailureRate:    0.15,
		ConvertFailureRate: 0.10,
	}
}

// Dir returns the directory where config and data are stored.
func Dir() (string, error) {
	// Prefer a project-local .seller directory if present or creatable
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".seller")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	// Fallback to home-level config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sellerconsole"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk, returning defaults when the file
// is absent or unreadable.
func Load() (Config, error) {
	path, err := File()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path, err := File()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadOptions returns the simulated-fetch shaping for the initial import.
func (c Config) LoadOptions() remote.Options {
	delay := time.Duration(c.LoadDelayMs) * time.Millisecond
	if delay <= 0 {
		delay = seed.DefaultLoadDelay
	}
	return remote.Options{FixedDelay: delay}
}

// CallConfig returns the save/convert call shaping for editors.
func (c Config) CallConfig() editor.CallConfig {
	cc := editor.DefaultCallConfig()
	if c.MinLatencyMs > 0 {
		cc.Save.MinDelay = time.Duration(c.MinLatencyMs) * time.Millisecond
		cc.Convert.MinDelay = cc.Save.MinDelay
	}
	if c.MaxLatencyMs > 0 {
		cc.Save.MaxDelay = time.Duration(c.MaxLatencyMs) * time.Millisecond
		cc.Convert.MaxDelay = cc.Save.MaxDelay
	}
	if c.SaveFailureRate >= 0 && c.SaveFailureRate <= 1 {
		cc.Save.FailureProbability = c.SaveFailureRate
	}
	if c.ConvertFailureRate >= 0 && c.ConvertFailureRate <= 1 {
		cc.Convert.FailureProbability = c.ConvertFailureRate
	}
	return cc
}
