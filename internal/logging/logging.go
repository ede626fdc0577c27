// Package logging provides category-based file logging for the seller
// console. Each category writes to its own file under <data dir>/logs so a
// session can be reconstructed per subsystem. Nothing is written until Init
// is called; before that every category logs to a no-op logger, which keeps
// the core packages usable from tests without any setup.
package logging

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a log stream / subsystem.
type Category string

const (
	CategoryBoot    Category = "boot"    // startup, config, seed import
	CategoryLeads   Category = "leads"   // leads store dispatches
	CategoryOpps    Category = "opps"    // opportunities store dispatches
	CategoryStorage Category = "storage" // durable KV reads/writes
	CategoryRemote  Category = "remote"  // simulated backend calls
	CategoryUI      Category = "ui"      // TUI events
)

var (
	mu      sync.RWMutex
	loggers = make(map[Category]*zap.SugaredLogger)
	logsDir string
	debug   bool
	nop     = zap.NewNop().Sugar()
)

// Init points the registry at a data directory and enables writing. When
// debugMode is false only warn and above are recorded. Init failures are
// returned but callers may ignore them; logging is best-effort by design.
func Init(dataDir string, debugMode bool) error {
	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	logsDir = dir
	debug = debugMode
	loggers = make(map[Category]*zap.SugaredLogger)
	return nil
}

// Get returns the logger for a category, creating it on first use. Before
// Init it returns a no-op logger.
func Get(cat Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[cat]; ok {
		mu.RUnlock()
		return l
	}
	dir := logsDir
	mu.RUnlock()

	if dir == "" {
		return nop
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[cat]; ok {
		return l
	}
	l := build(dir, cat)
	loggers[cat] = l
	return l
}

func build(dir string, cat Category) *zap.SugaredLogger {
	path := filepath.Join(dir, string(cat)+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nop
	}

	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(f), level)
	return zap.New(core).Named(string(cat)).Sugar()
}

// Sync flushes every open logger. Called on shutdown; errors are ignored
// because a failed flush of diagnostic output must never fail the program.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	for _, l := range loggers {
		_ = l.Sync()
	}
}
