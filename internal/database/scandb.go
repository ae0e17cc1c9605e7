package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/datascan/internal/model"
)

// ScanDB provides SQLite-based storage for scan history.
// It manages connection pooling and provides methods for saving and
// querying past scans.
type ScanDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ScanDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// read performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ScanDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
func Open(dbDir string, opts Options) (*ScanDB, error) {
	dbPath := filepath.Join(dbDir, "datascan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to refuse creating new files and
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; multiple readers don't help for
	// our append-then-list access pattern.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &ScanDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *ScanDB) Close() error {
	return sdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (sdb *ScanDB) createTables() error {
	schema := `
	-- Scans store one row per completed checker run
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		total_rows INTEGER NOT NULL,
		total_columns INTEGER NOT NULL,
		total_issues INTEGER NOT NULL,
		quality_score INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scans_source ON scans(source);
	CREATE INDEX IF NOT EXISTS idx_scans_timestamp ON scans(timestamp);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveScan stores a completed scan result under its source name
// (typically the CSV file path). Returns the new record's ID.
func (sdb *ScanDB) SaveScan(ctx context.Context, source string, result *model.ScanResult) (int64, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize scan result: %w", err)
	}

	query := `
	INSERT INTO scans (source, total_rows, total_columns, total_issues, quality_score, result_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := sdb.db.ExecContext(ctx, query,
		source,
		result.Summary.TotalRows,
		result.Summary.TotalColumns,
		result.Summary.TotalIssues,
		result.Summary.DataQualityScore,
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save scan: %w", err)
	}

	return res.LastInsertId()
}

// ScanMetadata contains summary information about a stored scan.
// This is used for displaying scan history without loading full results.
type ScanMetadata struct {
	// ID is the unique identifier of the scan in the database.
	ID int64

	// Source is the scanned file path or dataset name.
	Source string

	// Timestamp is when the scan was performed.
	Timestamp time.Time

	// TotalRows is the scanned row count.
	TotalRows int

	// TotalColumns is the scanned column count.
	TotalColumns int

	// TotalIssues is the detected issue-category count.
	TotalIssues int

	// QualityScore is the derived quality score.
	QualityScore int
}

// ListScans returns metadata for the most recent scans, newest first.
// A limit of 0 returns all scans.
func (sdb *ScanDB) ListScans(ctx context.Context, limit int) ([]ScanMetadata, error) {
	query := `
	SELECT id, source, timestamp, total_rows, total_columns, total_issues, quality_score
	FROM scans
	ORDER BY timestamp DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := sdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var results []ScanMetadata
	for rows.Next() {
		var meta ScanMetadata
		var timestamp string
		if err := rows.Scan(&meta.ID, &meta.Source, &timestamp,
			&meta.TotalRows, &meta.TotalColumns, &meta.TotalIssues, &meta.QualityScore); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}
		meta.Timestamp = parseTimestamp(timestamp)
		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetScan retrieves a stored scan result by its database ID.
// Returns nil without error when no scan has that ID.
func (sdb *ScanDB) GetScan(ctx context.Context, id int64) (*model.ScanResult, error) {
	query := `SELECT result_json FROM scans WHERE id = ?`

	var resultJSON string
	err := sdb.db.QueryRowContext(ctx, query, id).Scan(&resultJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	var result model.ScanResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse scan result: %w", err)
	}
	return &result, nil
}

// GetLatestScan retrieves the most recent scan for a source.
// Returns nil without error when the source has never been scanned.
func (sdb *ScanDB) GetLatestScan(ctx context.Context, source string) (*model.ScanResult, error) {
	query := `
	SELECT result_json FROM scans
	WHERE source = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	var resultJSON string
	err := sdb.db.QueryRowContext(ctx, query, source).Scan(&resultJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest scan: %w", err)
	}

	var result model.ScanResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse scan result: %w", err)
	}
	return &result, nil
}

// timestampFormats are the formats SQLite may return depending on
// version and configuration.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp attempts to parse a timestamp string using multiple
// formats. If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
