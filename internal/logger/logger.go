// Package logger holds the process-wide zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global sugared logger. It starts as a no-op so packages can
// log before Initialize runs without nil checks.
var Log = zap.NewNop().Sugar()

// Initialize replaces Log with a production logger at the given level.
func Initialize(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	Log = built.Sugar()
	return nil
}
