package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// newTestLogger returns a logger writing through a MaskingHandler into
// the returned buffer.
func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewMaskingHandler(handler)), &buf
}

// TestMaskingHandlerMasksCellContent verifies that attributes carrying
// raw cell contents are replaced before reaching the underlying handler.
func TestMaskingHandlerMasksCellContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{"cell key", "cell"},
		{"value key", "value"},
		{"values key", "values"},
		{"sample key", "sample"},
		{"row key", "row"},
		{"email key", "email"},
		{"record key", "record"},
		{"uppercase key still masked", "Value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, buf := newTestLogger()
			logger.Info("inspecting", tt.key, "alice@example.com")

			out := buf.String()
			if strings.Contains(out, "alice@example.com") {
				t.Errorf("expected cell content to be masked, got %q", out)
			}
			if !strings.Contains(out, MaskValue) {
				t.Errorf("expected mask marker in output, got %q", out)
			}
		})
	}
}

// TestMaskingHandlerKeepsOperationalAttrs verifies that non-content
// attributes pass through untouched.
func TestMaskingHandlerKeepsOperationalAttrs(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger()
	logger.Info("scan complete", "path", "data.csv", "score", 80)

	out := buf.String()
	if !strings.Contains(out, "data.csv") {
		t.Errorf("expected path to pass through, got %q", out)
	}
	if !strings.Contains(out, "score=80") {
		t.Errorf("expected score to pass through, got %q", out)
	}
	if strings.Contains(out, MaskValue) {
		t.Errorf("expected no masking, got %q", out)
	}
}

// TestMaskingHandlerMasksGroups verifies recursive masking inside
// attribute groups.
func TestMaskingHandlerMasksGroups(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger()
	logger.Info("grouped",
		slog.Group("detail",
			slog.String("value", "secret cell"),
			slog.String("column", "email_address"),
		),
	)

	out := buf.String()
	if strings.Contains(out, "secret cell") {
		t.Errorf("expected grouped cell content to be masked, got %q", out)
	}
	if !strings.Contains(out, "email_address") {
		t.Errorf("expected non-content group attr to pass through, got %q", out)
	}
}

// TestMaskingHandlerWithAttrs verifies that pre-bound attributes are
// masked once at bind time.
func TestMaskingHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger()
	bound := logger.With("sample", "raw cell text")
	bound.Info("bound attrs")

	out := buf.String()
	if strings.Contains(out, "raw cell text") {
		t.Errorf("expected bound cell content to be masked, got %q", out)
	}
}

// TestNewMaskingLogger verifies the verbosity levels of the constructor.
func TestNewMaskingLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewMaskingLogger(&buf, true)
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("expected debug to be enabled in verbose mode")
		}
	})

	t.Run("quiet mode logs warnings only", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewMaskingLogger(&buf, false)
		if logger.Enabled(context.Background(), slog.LevelInfo) {
			t.Error("expected info to be disabled in quiet mode")
		}
		if !logger.Enabled(context.Background(), slog.LevelWarn) {
			t.Error("expected warnings to be enabled")
		}

		logger.Info("hidden")
		logger.Warn("visible")
		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("expected info record to be dropped, got %q", out)
		}
		if !strings.Contains(out, "visible") {
			t.Errorf("expected warning to be written, got %q", out)
		}
	})
}
