package telemetry

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInfoWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := SetLogger(zap.New(core))
	defer restore()

	Info("request.complete", map[string]any{"status": 200, "path": "/generate"})
	Error("generation.record_failed", map[string]any{"error": errors.New("boom")})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0].ContextMap()
	if first["path"] != "/generate" {
		t.Fatalf("unexpected path field: %v", first["path"])
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %v", entries[1].Level)
	}
	if entries[1].ContextMap()["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", entries[1].ContextMap()["error"])
	}
}

func TestSetLoggerRestore(t *testing.T) {
	before := Logger()
	restore := SetLogger(nil)
	if Logger() == before {
		t.Fatalf("expected logger to be replaced")
	}
	restore()
	if Logger() != before {
		t.Fatalf("expected logger to be restored")
	}
}
