package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// cellContentKeys contains attribute keys that carry raw cell contents.
// Values under these keys are masked before logging because scanned
// datasets may hold personal data.
var cellContentKeys = map[string]bool{
	"cell":    true,
	"value":   true,
	"values":  true,
	"sample":  true,
	"samples": true,
	"row":     true,
	"email":   true,
	"record":  true,
}

// MaskValue is the string used to replace masked cell contents.
const MaskValue = "***MASKED***"

// MaskingHandler wraps an slog.Handler to mask raw cell contents.
// It intercepts log records and masks attribute values whose keys
// indicate dataset content before passing them to the underlying
// handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
type MaskingHandler struct {
	// handler is the underlying slog handler that receives masked records.
	handler slog.Handler
}

// NewMaskingHandler creates a new MaskingHandler wrapping the given handler.
// If handler is nil, the returned MaskingHandler uses slog.Default().Handler().
func NewMaskingHandler(handler slog.Handler) *MaskingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &MaskingHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *MaskingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *MaskingHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are masked before being added.
func (h *MaskingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &MaskingHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *MaskingHandler) WithGroup(name string) slog.Handler {
	return &MaskingHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursively handling groups.
func (h *MaskingHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if cellContentKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, MaskValue)
	}
	return a
}

// NewMaskingLogger creates a new slog.Logger that masks cell contents.
//
// Parameters:
//   - w: the io.Writer to write log output to (typically os.Stderr)
//   - verbose: if true, sets log level to Debug; otherwise Warn
//
// The returned logger can be used with slog.SetDefault() or passed to
// components that accept *slog.Logger.
func NewMaskingLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewMaskingHandler(textHandler))
}
