// Package log provides logging with automatic masking of raw cell
// contents, built on top of the standard slog package.
//
// Scanned CSV files routinely hold personal data (emails, names,
// account numbers). Attributes carrying raw cell contents are masked
// before reaching the underlying handler, so debug logs stay safe to
// share even in verbose mode. Structural attributes (paths, counts,
// column names, scores) pass through untouched.
//
// Usage:
//
//	logger := log.NewMaskingLogger(os.Stderr, true) // verbose=true
//	logger.Debug("profiling column",
//	    "column", "email",
//	    "cell", "john@example.com", // masked in output
//	)
package log
