package logger

import "go.uber.org/zap"

// Log is package-level logger. It is a no-op until Initialize is called,
// which keeps tests quiet by default.
var Log = zap.NewNop()

// Initialize sets Log to a production logger with the given level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = log
	return nil
}
