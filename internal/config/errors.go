package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoTarget is returned when no CSV file path is specified.
	ErrNoTarget = errors.New("no target specified: provide one or more csv file paths")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	// Zero concurrency would mean no scans run at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidDelimiter is returned when the delimiter is not a usable rune.
	ErrInvalidDelimiter = errors.New("invalid delimiter: must be a single printable character")

	// ErrConflictingReportFormats is returned when more than one of
	// --json, --markdown, and --csv is specified. Only one output format
	// can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json, --markdown, and --csv cannot be combined")
)
