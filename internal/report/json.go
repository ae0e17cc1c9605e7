package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/datascan/internal/model"
	"github.com/nao1215/datascan/internal/reporter"
)

// JSONWriter outputs the scan result in JSON format.
// This format is designed for tool integration and report download.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because the result structures are small,
// marshaled once per scan, and need no streaming.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the scan result in JSON format.
func (w *JSONWriter) Write(rep *reporter.Reporter) (int, error) {
	return w.writeJSON(rep.Result())
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')
	return w.output.Write(data)
}

// JSONReport wraps the scan result with output metadata.
//
// Design decision: We wrap rather than extend the result structure so
// output-specific fields (tool version, flattened summary) don't leak
// into the core data model.
type JSONReport struct {
	// Version is the datascan version that generated this report.
	Version string `json:"version"`

	// Result is the full scan result.
	Result *model.ScanResult `json:"result"`

	// Stats is the flattened dashboard summary for quick access.
	Stats reporter.SummaryStats `json:"stats"`
}

// FullJSONWriter outputs the scan result wrapped with metadata.
type FullJSONWriter struct {
	*JSONWriter

	// version is the datascan version string.
	version string
}

// NewFullJSONWriter creates a writer for complete reports with metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the scan result wrapped with metadata.
func (w *FullJSONWriter) Write(rep *reporter.Reporter) (int, error) {
	return w.writeJSON(&JSONReport{
		Version: w.version,
		Result:  rep.Result(),
		Stats:   rep.SummaryStats(),
	})
}
