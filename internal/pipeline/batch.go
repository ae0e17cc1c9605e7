package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchProcessor scans multiple CSV files concurrently.
// It uses errgroup to manage goroutines and respect the concurrency
// limit. Every file gets its own dataset snapshot and Checker instance,
// so no state is shared between concurrent scans.
type BatchProcessor struct {
	// scanner runs the individual file scans.
	scanner *Scanner

	// concurrency is the maximum number of concurrent scans.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent scans.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor over the given Scanner.
func NewBatchProcessor(scanner *Scanner, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		scanner:     scanner,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.logger == nil {
		bp.logger = slog.Default()
	}
	return bp
}

// FileOutcome pairs a scan outcome with the error that produced it.
// Exactly one of Outcome and Err is set.
type FileOutcome struct {
	// Path is the scanned file path.
	Path string

	// Outcome is the scan result; nil when the scan failed.
	Outcome *Outcome

	// Err is the scan failure; nil when the scan succeeded.
	Err error
}

// ProcessBatch scans multiple files concurrently, respecting the
// configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
//
// Outcomes are returned in input order, including failed scans (with
// Err set). The error return is non-nil only when the batch itself was
// cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, paths []string) ([]FileOutcome, error) {
	bp.logger.Info("starting batch scan",
		"total_files", len(paths),
		"concurrency", bp.concurrency,
	)
	startTime := time.Now()

	// Indexed writes keep input order without a mutex: every goroutine
	// owns exactly one slot.
	outcomes := make([]FileOutcome, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			outcome, err := bp.scanner.ScanFile(ctx, path)
			outcomes[i] = FileOutcome{Path: path, Outcome: outcome, Err: err}

			if err != nil {
				bp.logger.Warn("scan failed", "path", path, "error", err)
				// Keep scanning the remaining files; the failure is
				// recorded in the outcome slot.
			}
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch scan complete",
		"total_files", len(paths),
		"elapsed", time.Since(startTime),
	)
	return outcomes, err
}
