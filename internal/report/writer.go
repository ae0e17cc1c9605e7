package report

import (
	"io"

	"github.com/nao1215/datascan/internal/reporter"
)

// Writer defines the interface for report output.
// Implementations render a scan (through its reporter views) in a
// specific format.
//
// Design decision: Writers take a *reporter.Reporter rather than the
// raw scan result because some formats need the derived views (issue
// table, duplicate preview) that only the reporter can build. Writing
// to files, stdout, or buffers all use the same API.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(rep *reporter.Reporter) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers and stops on the
// first error encountered.
func (m *MultiWriter) Write(rep *reporter.Reporter) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(rep)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
