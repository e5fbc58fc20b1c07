// Package logging provides categorized zap loggers for maxsub.
// Every category logger is a named child of one root logger, so all output shares
// the configured level, encoding, sink and run_id field. Nothing is written to
// stdout: that stream belongs to the computed result.
package logging

import (
	"fmt"
	"sync"

	"maxsub/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Config load, logger setup
	CategoryInput  Category = "input"  // Token reading and validation
	CategoryScan   Category = "scan"   // Kadane scan
	CategoryVerify Category = "verify" // Brute-force cross-check
)

var (
	root    = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
	mu      sync.RWMutex
)

// Build constructs a zap logger from cfg. verbose forces debug level.
func Build(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Format != "" {
		zc.Encoding = cfg.Format
	}
	if zc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.OutputPaths = []string{cfg.OutputPath()}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize builds the root logger and tags it with runID.
// Should be called once at startup.
func Initialize(cfg config.LoggingConfig, verbose bool, runID string) error {
	logger, err := Build(cfg, verbose)
	if err != nil {
		return err
	}
	if runID != "" {
		logger = logger.With(zap.String("run_id", runID))
	}
	Set(logger)

	Get(CategoryBoot).Debug("logging initialized",
		zap.String("level", cfg.Level),
		zap.String("format", cfg.Format),
		zap.String("output", cfg.OutputPath()),
		zap.Bool("verbose", verbose),
	)
	return nil
}

// Set replaces the root logger and drops cached category loggers.
func Set(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()
	root = logger
	loggers = make(map[Category]*zap.Logger)
}

// Get returns (or creates) the logger for the given category.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := root.Named(string(category))
	loggers[category] = l
	return l
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	mu.RLock()
	l := root
	mu.RUnlock()
	_ = l.Sync()
}

// Reset restores the no-op logger. Used by tests.
func Reset() {
	Set(nil)
}
