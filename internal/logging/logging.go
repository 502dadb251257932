// Package logging builds the process zap logger.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger, or a console development logger when
// development is set. level is a zap level name; empty means info.
func New(level string, development bool) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		parsed, err := zapcore.ParseLevel(trimmed)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
