package adapters

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLoggerAdapter(zap.New(core))

	logger.Debug("debug %s", "a")
	logger.Info("info %d", 1)
	logger.Warn("warn")
	logger.Error("error %v", "boom")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	want := []struct {
		level   zapcore.Level
		message string
	}{
		{zapcore.DebugLevel, "debug a"},
		{zapcore.InfoLevel, "info 1"},
		{zapcore.WarnLevel, "warn"},
		{zapcore.ErrorLevel, "error boom"},
	}
	for i, w := range want {
		if entries[i].Level != w.level || entries[i].Message != w.message {
			t.Errorf("entry %d: expected %s %q, got %s %q", i, w.level, w.message, entries[i].Level, entries[i].Message)
		}
		if entries[i].LoggerName != "userpilot" {
			t.Errorf("entry %d: expected logger name userpilot, got %q", i, entries[i].LoggerName)
		}
	}
}

func TestZapLoggerAdapter_NilLogger(t *testing.T) {
	logger := NewZapLoggerAdapter(nil)

	// Verify it implements LoggerAdapter interface
	var _ LoggerAdapter = logger
	logger.Error("dropped")
}
