package report

import (
	"io"

	"github.com/nao1215/datascan/internal/reporter"
)

// TextWriter outputs the plain text analysis report.
// This is the default format for terminal display; its section layout is
// produced entirely by reporter.TextReport so the wording stays in one
// place.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the text report.
func (w *TextWriter) Write(rep *reporter.Reporter) (int, error) {
	return io.WriteString(w.output, rep.TextReport())
}
