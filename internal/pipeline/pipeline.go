package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/datascan/internal/checker"
	"github.com/nao1215/datascan/internal/dataset"
	"github.com/nao1215/datascan/internal/model"
)

// Store is the subset of the scan history database the pipeline needs.
// Keeping it an interface lets tests run without a real database file.
type Store interface {
	// SaveScan stores a completed scan result under its source name.
	SaveScan(ctx context.Context, source string, result *model.ScanResult) (int64, error)
}

// Outcome is the result of scanning one file: the materialized snapshot
// alongside the checker's result. The reporter needs both.
type Outcome struct {
	// Source is the scanned file path.
	Source string

	// Dataset is the materialized snapshot.
	Dataset *dataset.Dataset

	// Result is the full scan result.
	Result *model.ScanResult
}

// Scanner runs the load-check-persist sequence for CSV files.
type Scanner struct {
	// readOpts configures CSV ingestion.
	readOpts dataset.ReadOptions

	// store receives completed scans. Nil disables persistence.
	store Store

	// logger is used for structured logging during scans.
	logger *slog.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithReadOptions sets the CSV ingestion options.
func WithReadOptions(opts dataset.ReadOptions) ScannerOption {
	return func(s *Scanner) {
		s.readOpts = opts
	}
}

// WithStore enables persistence of completed scans.
func WithStore(store Store) ScannerOption {
	return func(s *Scanner) {
		s.store = store
	}
}

// WithLogger sets a custom logger for the scanner.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner with the given options.
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// ScanFile loads the CSV at path, runs all quality checks over the
// snapshot, and persists the result when a store is configured.
//
// Persistence failures are logged but don't fail the scan: the result
// is already computed and still useful to the caller.
func (s *Scanner) ScanFile(ctx context.Context, path string) (*Outcome, error) {
	s.logger.Debug("loading dataset", "path", path)

	ds, err := dataset.ReadCSVFile(path, s.readOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	s.logger.Debug("running checks",
		"path", path,
		"rows", ds.NumRows(),
		"columns", ds.NumColumns(),
	)
	result := checker.New(ds).RunAllChecks()

	if s.store != nil {
		if _, err := s.store.SaveScan(ctx, path, result); err != nil {
			s.logger.Warn("failed to persist scan", "path", path, "error", err)
		}
	}

	s.logger.Info("scan complete",
		"path", path,
		"score", result.Summary.DataQualityScore,
		"issues", result.Summary.TotalIssues,
	)

	return &Outcome{Source: path, Dataset: ds, Result: result}, nil
}
