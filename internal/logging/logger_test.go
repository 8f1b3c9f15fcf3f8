package logging

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger_StderrOnly(t *testing.T) {
	logger := NewLogger("", false)
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Info("stderr only")
	_ = logger.Sync()
}

func TestNewLogger_FileSink(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "launchcheck.log")

	logger := NewLogger(logFile, true)
	logger.Debug("debug line reaches the file in verbose mode")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log file to contain the debug line")
	}
}

func TestNewLogger_VerboseLevel(t *testing.T) {
	logger := NewLogger("", true)
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level enabled in verbose mode")
	}

	logger = NewLogger("", false)
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level disabled by default")
	}
}
