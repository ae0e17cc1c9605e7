package pipeline

import (
	"context"
	"testing"
)

// TestProcessBatch verifies concurrent scanning with per-file outcomes
// in input order.
func TestProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("outcomes keep input order", func(t *testing.T) {
		t.Parallel()
		paths := []string{
			writeCSV(t, "a.csv", "id\n1\n2\n"),
			writeCSV(t, "b.csv", "id\n1\n1\n"),
			writeCSV(t, "c.csv", "id,v\n,1\n2,2\n"),
		}

		bp := NewBatchProcessor(NewScanner(), WithConcurrency(2))
		outcomes, err := bp.ProcessBatch(context.Background(), paths)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(outcomes) != 3 {
			t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
		}
		for i, path := range paths {
			if outcomes[i].Path != path {
				t.Errorf("expected outcome %d for %q, got %q", i, path, outcomes[i].Path)
			}
			if outcomes[i].Err != nil {
				t.Errorf("expected no error for %q, got %v", path, outcomes[i].Err)
			}
		}

		if outcomes[0].Outcome.Result.Summary.DataQualityScore != 100 {
			t.Errorf("expected clean file to score 100, got %d",
				outcomes[0].Outcome.Result.Summary.DataQualityScore)
		}
		if !outcomes[1].Outcome.Result.Duplicates.HasDuplicates {
			t.Error("expected duplicate detection in b.csv")
		}
		if outcomes[2].Outcome.Result.ColumnsWithMissing() != 1 {
			t.Error("expected missing detection in c.csv")
		}
	})

	t.Run("a failing file does not stop the batch", func(t *testing.T) {
		t.Parallel()
		good := writeCSV(t, "good.csv", "id\n1\n")
		missing := good + ".absent"

		bp := NewBatchProcessor(NewScanner())
		outcomes, err := bp.ProcessBatch(context.Background(), []string{missing, good})
		if err != nil {
			t.Fatalf("expected no batch error, got %v", err)
		}

		if outcomes[0].Err == nil {
			t.Error("expected the missing file to record an error")
		}
		if outcomes[1].Err != nil {
			t.Errorf("expected the good file to succeed, got %v", outcomes[1].Err)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()
		path := writeCSV(t, "a.csv", "id\n1\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		bp := NewBatchProcessor(NewScanner())
		if _, err := bp.ProcessBatch(ctx, []string{path}); err == nil {
			t.Error("expected an error from a cancelled context")
		}
	})

	t.Run("empty batch succeeds", func(t *testing.T) {
		t.Parallel()
		bp := NewBatchProcessor(NewScanner())
		outcomes, err := bp.ProcessBatch(context.Background(), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(outcomes) != 0 {
			t.Errorf("expected no outcomes, got %d", len(outcomes))
		}
	})
}
