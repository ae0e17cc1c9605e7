package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/nao1215/datascan/internal/config"
	"github.com/nao1215/datascan/internal/database"
	"github.com/nao1215/datascan/internal/dataset"
	"github.com/nao1215/datascan/internal/log"
	"github.com/nao1215/datascan/internal/pipeline"
	"github.com/nao1215/datascan/internal/report"
	"github.com/nao1215/datascan/internal/reporter"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [csv-file]...",
		Short: "Scan CSV files for data quality issues",
		Long: `Scan analyzes one or more CSV files for data quality issues.

Each file is checked for:
- Missing values (empty cells and null sentinels such as NA, null, NaN)
- Duplicate rows (full-row duplicates across all columns)
- Schema inconsistencies (mixed types, inconsistent date formats,
  non-numeric values and outliers in numeric columns, inconsistent
  string lengths and malformed email addresses in text columns)

Examples:
  # Scan a single CSV file
  datascan scan data.csv

  # Scan multiple files concurrently
  datascan scan sales.csv users.csv orders.csv

  # Use a semicolon delimiter
  datascan scan -d ';' export.csv

  # Output a JSON report
  datascan scan --json data.csv

  # Write a Markdown report to a file
  datascan scan --markdown -o report.md data.csv

  # Use a custom rule file
  datascan scan -c myrules.yaml data.csv

Rule file (.datascan) example:
  nullValues:
    - ""
    - "missing"
    - "n/a"
  delimiter: ";"`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Ingestion flags
	cmd.Flags().StringP("delimiter", "d", "",
		"CSV field delimiter (single character, default: comma)")
	cmd.Flags().StringSliceP("null-values", "n", nil,
		"Cell values treated as missing (default: empty, NA, N/A, null, NULL, NaN, nan, None)")

	// Batch scanning flags
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of files scanned concurrently")

	// Rule file
	cmd.Flags().StringP("rules", "c", "",
		"Rule file path (default: .datascan in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown and --csv)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json and --csv)")
	cmd.Flags().Bool("csv", false,
		"Output the issue table as CSV (mutually exclusive with --json and --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Persistence flags
	cmd.Flags().Bool("no-save", false,
		"Do not record the scan in the history database")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with cell-content masking
	logger := log.NewMaskingLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	delimiter, err := cmd.Flags().GetString("delimiter")
	if err != nil {
		return nil, err
	}
	if delimiter != "" {
		r, size := utf8.DecodeRuneInString(delimiter)
		if r == utf8.RuneError || size != len(delimiter) {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", delimiter)
		}
		cfg.Delimiter = r
	}

	cfg.NullTokens, err = cmd.Flags().GetStringSlice("null-values")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.RuleFilePath, err = cmd.Flags().GetString("rules")
	if err != nil {
		return nil, err
	}

	// Load ingestion rules from the rule file.
	// If the user explicitly specified a rule file path, error if not
	// found. If no path was specified, silently skip when no file exists.
	explicitRulePath := cfg.RuleFilePath != ""
	rulePath := config.FindRuleFile(cfg.RuleFilePath)

	if rulePath != "" {
		cfg.Rules, err = config.LoadRuleFile(rulePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load rule file %s: %w", rulePath, err)
		}
		cfg.Rules.Apply(cfg)
	} else if explicitRulePath {
		return nil, fmt.Errorf("rule file not found: %s", cfg.RuleFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.CSVReport, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}

	// Scan history lives in the XDG data directory unless disabled
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	// Get positional arguments (CSV file paths)
	cfg.Targets = args

	return cfg, nil
}

// runScan executes the scan.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting scan",
		"targets", len(cfg.Targets),
		"concurrency", cfg.Concurrency,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.ScanDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	scannerOpts := []pipeline.ScannerOption{
		pipeline.WithReadOptions(dataset.ReadOptions{
			Delimiter:  cfg.Delimiter,
			NullTokens: cfg.NullTokens,
		}),
		pipeline.WithLogger(logger),
	}
	if db != nil {
		scannerOpts = append(scannerOpts, pipeline.WithStore(db))
	}
	scanner := pipeline.NewScanner(scannerOpts...)

	// Resolve the report destination once so multiple targets share it
	output, closeOutput, err := reportOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := buildReportWriter(cfg, output)

	// Use the batch processor for parallel scanning if multiple targets
	if len(cfg.Targets) > 1 && cfg.Concurrency > 1 {
		return runBatchScan(ctx, cfg, scanner, writer, logger)
	}

	// Single target or sequential scanning
	return runSequentialScan(ctx, cfg, scanner, writer, logger)
}

// runSequentialScan scans targets one at a time.
func runSequentialScan(ctx context.Context, cfg *config.Config, scanner *pipeline.Scanner, writer report.Writer, logger *slog.Logger) error {
	failed := 0
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		startTime := time.Now()
		outcome, err := scanner.ScanFile(ctx, target)
		if err != nil {
			logger.Error("scan failed", "target", target, "error", err)
			fmt.Fprintf(os.Stderr, "Scan error for %s: %v\n", target, err)
			failed++
			continue
		}
		logger.Debug("scan finished", "target", target, "elapsed", time.Since(startTime).Round(time.Millisecond))

		rep := reporter.New(outcome.Result, outcome.Dataset)
		if _, err := writer.Write(rep); err != nil {
			logger.Error("report failed", "target", target, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scans failed", failed, len(cfg.Targets))
	}
	return nil
}

// runBatchScan scans multiple targets concurrently using BatchProcessor.
// Reports are written in input order once all scans finish.
func runBatchScan(ctx context.Context, cfg *config.Config, scanner *pipeline.Scanner, writer report.Writer, logger *slog.Logger) error {
	bp := pipeline.NewBatchProcessor(scanner,
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)

	outcomes, err := bp.ProcessBatch(ctx, cfg.Targets)
	if err != nil {
		return err
	}

	failed := 0
	for _, fo := range outcomes {
		if fo.Err != nil {
			fmt.Fprintf(os.Stderr, "Scan error for %s: %v\n", fo.Path, fo.Err)
			failed++
			continue
		}

		rep := reporter.New(fo.Outcome.Result, fo.Outcome.Dataset)
		if _, err := writer.Write(rep); err != nil {
			logger.Error("report failed", "target", fo.Path, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scans failed", failed, len(cfg.Targets))
	}
	return nil
}

// reportOutput resolves where reports are written. The returned close
// function is a no-op for stdout.
func reportOutput(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() {}, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// buildReportWriter selects the report format requested by the config.
func buildReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	case cfg.CSVReport:
		return report.NewCSVWriter(output)
	default:
		return report.NewTextWriter(output)
	}
}
