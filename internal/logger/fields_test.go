package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  major  ", Value: "  Computer Science  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "major" || fields[0].String != "Computer Science" {
		t.Fatalf("unexpected major field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("sample", "strong"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["sample"] != "strong" {
		t.Fatalf("expected field to be strong, got %q", ctx["sample"])
	}

	if same := WithFields(logger); same != logger {
		t.Fatalf("expected the same logger when no fields supplied")
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}

func TestCommonFields(t *testing.T) {
	fields := CommonFields("  match  ", "")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldCommand || fields[0].String != "match" {
		t.Fatalf("unexpected command field: %+v", fields[0])
	}

	if fields[1].Key != FieldCatalog || fields[1].String != bundledCatalog {
		t.Fatalf("expected bundled catalog field, got %+v", fields[1])
	}

	fields = CommonFields("", "/tmp/catalog.yaml")
	if len(fields) != 1 || fields[0].String != "/tmp/catalog.yaml" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestWithCommonFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithCommonFields(logger, "convert", "custom.yaml")
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldCommand] != "convert" {
		t.Fatalf("expected command field to be convert, got %q", ctx[FieldCommand])
	}

	if ctx[FieldCatalog] != "custom.yaml" {
		t.Fatalf("expected catalog field to be custom.yaml, got %q", ctx[FieldCatalog])
	}

	enriched = WithCommonFields(nil, "convert", "")
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}

func TestNew(t *testing.T) {
	logger, err := New(true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}

	logger, err = New(false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be disabled")
	}
}

func TestNewCommand(t *testing.T) {
	logger, err := NewCommand(true, false, "match", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be disabled")
	}

	if _, err := NewCommand(false, true, "convert", "custom.yaml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
