package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	logger, err := New("debug", true)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug enabled")
	}

	logger, err = New("", false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) || !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info default level")
	}

	if _, err := New("loud", false); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
