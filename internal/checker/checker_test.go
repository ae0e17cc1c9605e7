package checker

import (
	"reflect"
	"testing"

	"github.com/nao1215/datascan/internal/dataset"
)

// mustDataset builds a dataset snapshot or fails the test.
func mustDataset(t *testing.T, columns []dataset.Column) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(columns)
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	return ds
}

// TestRunAllChecksCleanData verifies that issue-free data scores 100
// with no findings in any category.
func TestRunAllChecksCleanData(t *testing.T) {
	t.Parallel()

	ds := mustDataset(t, []dataset.Column{
		{Name: "id", Values: []dataset.Value{dataset.Int(1), dataset.Int(2), dataset.Int(3)}},
		{Name: "name", Values: []dataset.Value{dataset.String("alice"), dataset.String("bobby"), dataset.String("carol")}},
	})

	result := New(ds).RunAllChecks()

	if result.Summary.TotalIssues != 0 {
		t.Errorf("expected 0 issues, got %d", result.Summary.TotalIssues)
	}
	if result.Summary.DataQualityScore != 100 {
		t.Errorf("expected score 100, got %d", result.Summary.DataQualityScore)
	}
	if result.Summary.TotalRows != 3 || result.Summary.TotalColumns != 2 {
		t.Errorf("expected 3x2 summary, got %dx%d",
			result.Summary.TotalRows, result.Summary.TotalColumns)
	}
	if result.Duplicates.HasDuplicates {
		t.Error("expected no duplicates")
	}
	if len(result.SchemaIssues) != 0 {
		t.Errorf("expected no schema issues, got %v", result.SchemaIssues)
	}
	for name, stat := range result.MissingValues {
		if stat.HasMissing {
			t.Errorf("expected no missing values in %q", name)
		}
	}
}

// TestCheckMissingValues verifies the per-column null counts and their
// percentage rounding.
func TestCheckMissingValues(t *testing.T) {
	t.Parallel()

	t.Run("one null in five rows is 20 percent", func(t *testing.T) {
		t.Parallel()
		ds := mustDataset(t, []dataset.Column{
			{Name: "id", Values: []dataset.Value{
				dataset.Int(1), dataset.Int(2), dataset.Null(), dataset.Int(4), dataset.Int(1),
			}},
		})

		stats := New(ds).CheckMissingValues()
		stat := stats["id"]
		if stat.Count != 1 {
			t.Errorf("expected count 1, got %d", stat.Count)
		}
		if stat.Percentage != 20 {
			t.Errorf("expected percentage 20, got %v", stat.Percentage)
		}
		if !stat.HasMissing {
			t.Error("expected HasMissing to be true")
		}
	})

	t.Run("percentage rounds to two decimals", func(t *testing.T) {
		t.Parallel()
		ds := mustDataset(t, []dataset.Column{
			{Name: "v", Values: []dataset.Value{
				dataset.Null(), dataset.Int(1), dataset.Int(2),
			}},
		})

		stats := New(ds).CheckMissingValues()
		if got := stats["v"].Percentage; got != 33.33 {
			t.Errorf("expected 33.33, got %v", got)
		}
	})

	t.Run("zero rows yields zero percentage", func(t *testing.T) {
		t.Parallel()
		ds := mustDataset(t, []dataset.Column{{Name: "v"}})

		stats := New(ds).CheckMissingValues()
		stat := stats["v"]
		if stat.Count != 0 || stat.Percentage != 0 || stat.HasMissing {
			t.Errorf("expected zero stat for empty column, got %+v", stat)
		}
	})
}

// TestCheckDuplicates verifies full-row duplicate detection, including
// the count/indices asymmetry: the count excludes each group's first
// occurrence while the index list includes it.
func TestCheckDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("one duplicate pair", func(t *testing.T) {
		t.Parallel()
		ds := mustDataset(t, []dataset.Column{
			{Name: "a", Values: []dataset.Value{
				dataset.Int(1), dataset.Int(2), dataset.Int(3), dataset.Int(4), dataset.Int(1),
			}},
			{Name: "b", Values: []dataset.Value{
				dataset.String("x"), dataset.String("y"), dataset.String("z"), dataset.String("w"), dataset.String("x"),
			}},
		})

		stat := New(ds).CheckDuplicates()
		if stat.Count != 1 {
			t.Errorf("expected count 1, got %d", stat.Count)
		}
		if stat.Percentage != 20 {
			t.Errorf("expected percentage 20, got %v", stat.Percentage)
		}
		if !reflect.DeepEqual(stat.DuplicateRowIndices, []int{0, 4}) {
			t.Errorf("expected indices [0 4], got %v", stat.DuplicateRowIndices)
		}
	})

	t.Run("null cells participate in equality", func(t *testing.T) {
		t.Parallel()
		ds := mustDataset(t, []dataset.Column{
			{Name: "a", Values: []dataset.Value{dataset.Null(), dataset.Null(), dataset.Int(1)}},
		})

		stat := New(ds).CheckDuplicates()
		if stat.Count != 1 {
			t.Errorf("expected rows of nulls to be duplicates, got count %d", stat.Count)
		}
		if !reflect.DeepEqual(stat.DuplicateRowIndices, []int{0, 1}) {
			t.Errorf("expected indices [0 1], got %v", stat.DuplicateRowIndices)
		}
	})

	t.Run("same display different kind is not a duplicate", func(t *testing.T) {
		t.Parallel()
		ds := mustDataset(t, []dataset.Column{
			{Name: "a", Values: []dataset.Value{dataset.Int(1), dataset.String("1")}},
		})

		stat := New(ds).CheckDuplicates()
		if stat.HasDuplicates {
			t.Errorf("expected no duplicates, got %+v", stat)
		}
	})

	t.Run("triple counts as two duplicates", func(t *testing.T) {
		t.Parallel()
		ds := mustDataset(t, []dataset.Column{
			{Name: "a", Values: []dataset.Value{
				dataset.Int(7), dataset.Int(7), dataset.Int(7), dataset.Int(8),
			}},
		})

		stat := New(ds).CheckDuplicates()
		if stat.Count != 2 {
			t.Errorf("expected count 2, got %d", stat.Count)
		}
		if !reflect.DeepEqual(stat.DuplicateRowIndices, []int{0, 1, 2}) {
			t.Errorf("expected indices [0 1 2], got %v", stat.DuplicateRowIndices)
		}
	})
}

// TestScoreDerivation verifies TotalIssues counting and the score floor.
func TestScoreDerivation(t *testing.T) {
	t.Parallel()

	t.Run("two issue categories score 80", func(t *testing.T) {
		t.Parallel()
		// One column with missing values plus a duplicate pair.
		ds := mustDataset(t, []dataset.Column{
			{Name: "a", Values: []dataset.Value{
				dataset.Int(1), dataset.Int(1), dataset.Null(),
			}},
		})

		result := New(ds).RunAllChecks()
		if result.Summary.TotalIssues != 2 {
			t.Fatalf("expected 2 issues, got %d", result.Summary.TotalIssues)
		}
		if result.Summary.DataQualityScore != 80 {
			t.Errorf("expected score 80, got %d", result.Summary.DataQualityScore)
		}
	})

	t.Run("score floors at zero", func(t *testing.T) {
		t.Parallel()
		// Eleven columns, each with a missing value, push past ten issues.
		columns := make([]dataset.Column, 11)
		for i := range columns {
			columns[i] = dataset.Column{
				Name:   string(rune('a' + i)),
				Values: []dataset.Value{dataset.Int(int64(i)), dataset.Null()},
			}
		}
		ds := mustDataset(t, columns)

		result := New(ds).RunAllChecks()
		if result.Summary.TotalIssues != 11 {
			t.Fatalf("expected 11 issues, got %d", result.Summary.TotalIssues)
		}
		if result.Summary.DataQualityScore != 0 {
			t.Errorf("expected score 0, got %d", result.Summary.DataQualityScore)
		}
	})
}

// TestRunAllChecksIdempotent verifies that repeated runs over the same
// snapshot yield identical results.
func TestRunAllChecksIdempotent(t *testing.T) {
	t.Parallel()

	ds := mustDataset(t, []dataset.Column{
		{Name: "order_date", Values: []dataset.Value{
			dataset.String("2024-01-15"), dataset.String("01/15/2024"), dataset.Null(),
		}},
		{Name: "amount", Values: []dataset.Value{
			dataset.Int(100), dataset.String("invalid"), dataset.Int(100),
		}},
	})

	c := New(ds)
	first := c.RunAllChecks()
	second := c.RunAllChecks()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results across runs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
