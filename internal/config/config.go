package config

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultConcurrency is the number of files scanned in parallel in
	// batch mode. Scans are CPU-bound and independent, so a small fixed
	// pool is enough; users can raise it via the --concurrency flag.
	DefaultConcurrency = 4

	// DefaultDuplicatePreview is the number of duplicate rows shown in
	// rendered reports. The full index list is always in the JSON output.
	DefaultDuplicatePreview = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "datascan"
)

// Config holds all options for a scan invocation.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// Targets is the list of CSV file paths to scan.
	Targets []string

	// Delimiter is the CSV field separator. Zero means comma.
	Delimiter rune

	// NullTokens are the cell strings treated as the missing sentinel.
	// Nil means the ingestion defaults.
	NullTokens []string

	// Concurrency is the number of files scanned in parallel.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the text report.
	// Mutually exclusive with MarkdownReport and CSVReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport and CSVReport.
	MarkdownReport bool

	// CSVReport enables issue-table CSV output.
	// Mutually exclusive with JSONReport and MarkdownReport.
	CSVReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// RuleFilePath is the path to the rule file.
	// If empty, the tool searches for .datascan in the current directory
	// and then in the user's home directory.
	RuleFilePath string

	// Rules holds ingestion rules loaded from the rule file.
	Rules *RuleFile

	// DBDir is the directory path for the SQLite scan history database.
	// When empty, scan results are not persisted.
	DBDir string

	// SaveToDB indicates whether to save scan results to the database.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves
// as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency,
	}
}

// Validate checks if the configuration is valid.
// It returns one of the package sentinel errors on failure.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.Delimiter != 0 && (c.Delimiter == utf8.RuneError || c.Delimiter == '\n' || c.Delimiter == '\r') {
		return ErrInvalidDelimiter
	}

	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.CSVReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}
	return nil
}

// XDGDataDir returns the XDG data directory for datascan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/datascan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for datascan.
// On Linux: ~/.config/datascan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
