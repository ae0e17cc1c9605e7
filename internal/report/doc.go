// Package report provides report output in multiple formats.
//
// This package contains writers for different output formats:
//   - TextWriter: the fixed-section plain text report for terminals
//   - JSONWriter: the full scan result for tool integration
//   - MarkdownWriter: tables and alerts for documentation and sharing
//   - CSVWriter: the issue summary table as delimited text
//
// Design decision: We separate report writing from the derived views
// (which live in the reporter package) so new output formats can be
// added without touching the data shaping logic. Writers implement the
// Writer interface and can be composed via MultiWriter for multi-format
// output.
package report
