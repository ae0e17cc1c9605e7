package report

import (
	"encoding/csv"
	"io"

	"github.com/nao1215/datascan/internal/reporter"
)

// CSVWriter outputs the issue summary table as delimited text.
// The header row is fixed: Type, Column, Severity, Details. This is the
// export format downstream spreadsheets and ticketing imports consume.
type CSVWriter struct {
	output io.Writer

	// comma is the field separator. Zero means comma.
	comma rune
}

// CSVWriterOption configures a CSVWriter.
type CSVWriterOption func(*CSVWriter)

// WithComma sets the field separator.
func WithComma(comma rune) CSVWriterOption {
	return func(w *CSVWriter) {
		w.comma = comma
	}
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer, opts ...CSVWriterOption) *CSVWriter {
	w := &CSVWriter{output: output}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the issue table. An issue-free scan produces only the
// header row.
func (w *CSVWriter) Write(rep *reporter.Reporter) (int, error) {
	cw := &countingWriter{w: w.output}
	enc := csv.NewWriter(cw)
	if w.comma != 0 {
		enc.Comma = w.comma
	}

	if err := enc.Write([]string{"Type", "Column", "Severity", "Details"}); err != nil {
		return cw.n, err
	}
	for _, row := range rep.IssueTable() {
		if err := enc.Write([]string{row.Type, row.Column, row.Severity, row.Details}); err != nil {
			return cw.n, err
		}
	}
	enc.Flush()
	return cw.n, enc.Error()
}

// countingWriter tracks bytes written so Write can report them; the
// csv encoder doesn't expose a byte count.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
