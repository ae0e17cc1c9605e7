package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/datascan/internal/model"
)

// sampleResult returns a small scan result for storage tests.
func sampleResult(score, issues int) *model.ScanResult {
	return &model.ScanResult{
		MissingValues: map[string]model.ColumnMissingStat{
			"id": {Count: 1, Percentage: 20, HasMissing: true},
		},
		Duplicates: model.DuplicateStat{Count: 1, Percentage: 20, HasDuplicates: true, DuplicateRowIndices: []int{0, 4}},
		Summary: model.ScanSummary{
			TotalRows:        5,
			TotalColumns:     2,
			TotalIssues:      issues,
			DataQualityScore: score,
		},
	}
}

// TestOpen verifies database creation and the missing-file guard.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database with default options", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dir, "datascan.db")); err != nil {
			t.Errorf("expected database file to exist: %v", err)
		}
	})

	t.Run("refuses missing database without create option", func(t *testing.T) {
		t.Parallel()
		_, err := Open(t.TempDir(), Options{})
		if err == nil {
			t.Error("expected an error for a missing database file")
		}
	})
}

// TestSaveAndListScans verifies the save/list round trip and the
// newest-first ordering.
func TestSaveAndListScans(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	first, err := db.SaveScan(ctx, "a.csv", sampleResult(80, 2))
	if err != nil {
		t.Fatalf("failed to save first scan: %v", err)
	}
	second, err := db.SaveScan(ctx, "b.csv", sampleResult(100, 0))
	if err != nil {
		t.Fatalf("failed to save second scan: %v", err)
	}
	if first == second {
		t.Error("expected distinct scan IDs")
	}

	t.Run("lists newest first", func(t *testing.T) {
		scans, err := db.ListScans(ctx, 0)
		if err != nil {
			t.Fatalf("failed to list scans: %v", err)
		}
		if len(scans) != 2 {
			t.Fatalf("expected 2 scans, got %d", len(scans))
		}
		if scans[0].ID != second || scans[1].ID != first {
			t.Errorf("expected order [%d %d], got [%d %d]", second, first, scans[0].ID, scans[1].ID)
		}
		if scans[0].Source != "b.csv" || scans[0].QualityScore != 100 {
			t.Errorf("unexpected metadata: %+v", scans[0])
		}
		if scans[1].TotalRows != 5 || scans[1].TotalColumns != 2 || scans[1].TotalIssues != 2 {
			t.Errorf("unexpected metadata: %+v", scans[1])
		}
	})

	t.Run("limit caps the list", func(t *testing.T) {
		scans, err := db.ListScans(ctx, 1)
		if err != nil {
			t.Fatalf("failed to list scans: %v", err)
		}
		if len(scans) != 1 {
			t.Errorf("expected 1 scan, got %d", len(scans))
		}
	})
}

// TestGetScan verifies full-result retrieval by ID.
func TestGetScan(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	id, err := db.SaveScan(ctx, "a.csv", sampleResult(80, 2))
	if err != nil {
		t.Fatalf("failed to save scan: %v", err)
	}

	t.Run("round trips the stored result", func(t *testing.T) {
		result, err := db.GetScan(ctx, id)
		if err != nil {
			t.Fatalf("failed to get scan: %v", err)
		}
		if result == nil {
			t.Fatal("expected a result")
		}
		if result.Summary.DataQualityScore != 80 {
			t.Errorf("expected score 80, got %d", result.Summary.DataQualityScore)
		}
		if stat := result.MissingValues["id"]; stat.Count != 1 || !stat.HasMissing {
			t.Errorf("unexpected missing stat: %+v", stat)
		}
		if len(result.Duplicates.DuplicateRowIndices) != 2 {
			t.Errorf("expected duplicate indices to survive, got %v", result.Duplicates.DuplicateRowIndices)
		}
	})

	t.Run("unknown id returns nil without error", func(t *testing.T) {
		result, err := db.GetScan(ctx, id+1000)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != nil {
			t.Errorf("expected nil result, got %+v", result)
		}
	})
}

// TestGetLatestScan verifies per-source retrieval.
func TestGetLatestScan(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.SaveScan(ctx, "a.csv", sampleResult(80, 2)); err != nil {
		t.Fatalf("failed to save scan: %v", err)
	}
	if _, err := db.SaveScan(ctx, "a.csv", sampleResult(100, 0)); err != nil {
		t.Fatalf("failed to save scan: %v", err)
	}

	t.Run("returns the most recent scan for the source", func(t *testing.T) {
		result, err := db.GetLatestScan(ctx, "a.csv")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result == nil || result.Summary.DataQualityScore != 100 {
			t.Errorf("expected latest score 100, got %+v", result)
		}
	})

	t.Run("unknown source returns nil without error", func(t *testing.T) {
		result, err := db.GetLatestScan(ctx, "never-scanned.csv")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != nil {
			t.Errorf("expected nil result, got %+v", result)
		}
	})
}
