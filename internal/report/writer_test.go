package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nao1215/datascan/internal/checker"
	"github.com/nao1215/datascan/internal/dataset"
	"github.com/nao1215/datascan/internal/reporter"
)

// scannedReporter builds a dataset, runs all checks, and returns a
// Reporter for writer tests.
func scannedReporter(t *testing.T, columns []dataset.Column) *reporter.Reporter {
	t.Helper()
	ds, err := dataset.New(columns)
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	return reporter.New(checker.New(ds).RunAllChecks(), ds)
}

// issueReporter has one missing-value column and a duplicate pair.
func issueReporter(t *testing.T) *reporter.Reporter {
	t.Helper()
	return scannedReporter(t, []dataset.Column{
		{Name: "id", Values: []dataset.Value{
			dataset.Int(1), dataset.Int(1), dataset.Null(),
		}},
		{Name: "name", Values: []dataset.Value{
			dataset.String("x"), dataset.String("x"), dataset.String("y"),
		}},
	})
}

// TestTextWriter verifies the text format passthrough.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewTextWriter(&buf).Write(issueReporter(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != buf.Len() {
		t.Errorf("expected byte count %d, got %d", buf.Len(), n)
	}
	if !strings.Contains(buf.String(), "DATA QUALITY ANALYSIS REPORT") {
		t.Errorf("expected text report header, got:\n%s", buf.String())
	}
}

// TestJSONWriter verifies the raw result JSON output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output is valid JSON", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(issueReporter(t)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("expected valid JSON, got %v\noutput: %s", err, buf.String())
		}
		for _, key := range []string{"missing_values", "duplicates", "schema_issues", "summary"} {
			if _, ok := decoded[key]; !ok {
				t.Errorf("expected key %q in output", key)
			}
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(issueReporter(t)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("output ends with newline", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(issueReporter(t)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("expected trailing newline")
		}
	})
}

// TestFullJSONWriter verifies the metadata wrapper around the result.
func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewFullJSONWriter(&buf, "v1.2.3").Write(issueReporter(t)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var decoded JSONReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if decoded.Version != "v1.2.3" {
		t.Errorf("expected version v1.2.3, got %q", decoded.Version)
	}
	if decoded.Result == nil {
		t.Fatal("expected result to be present")
	}
	if decoded.Stats.TotalRows != 3 {
		t.Errorf("expected stats with 3 rows, got %+v", decoded.Stats)
	}
}

// TestCSVWriter verifies the issue-table export.
func TestCSVWriter(t *testing.T) {
	t.Parallel()

	t.Run("header plus one line per issue", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		n, err := NewCSVWriter(&buf).Write(issueReporter(t))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected byte count %d, got %d", buf.Len(), n)
		}

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if lines[0] != "Type,Column,Severity,Details" {
			t.Errorf("expected fixed header, got %q", lines[0])
		}
		// One missing-value column and the duplicates row.
		if len(lines) != 3 {
			t.Errorf("expected 3 lines, got %d: %v", len(lines), lines)
		}
	})

	t.Run("clean scan produces only the header", func(t *testing.T) {
		t.Parallel()
		rep := scannedReporter(t, []dataset.Column{
			{Name: "a", Values: []dataset.Value{dataset.Int(1), dataset.Int(2)}},
		})
		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf).Write(rep); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := strings.TrimRight(buf.String(), "\n"); got != "Type,Column,Severity,Details" {
			t.Errorf("expected header only, got %q", got)
		}
	})

	t.Run("custom separator", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf, WithComma('\t')).Write(issueReporter(t)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.HasPrefix(buf.String(), "Type\tColumn\tSeverity\tDetails") {
			t.Errorf("expected tab-separated header, got %q", buf.String())
		}
	})
}

// TestMarkdownWriter verifies the section structure of the Markdown
// report.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("report with issues", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(issueReporter(t)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"# Data Quality Report",
			"## Issues",
			"## Data Types",
			"## Duplicate Rows",
			"## Recommendations",
			"Missing Values",
			"Duplicates",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q\noutput:\n%s", want, out)
			}
		}
	})

	t.Run("clean report has no issue rows", func(t *testing.T) {
		t.Parallel()
		rep := scannedReporter(t, []dataset.Column{
			{Name: "a", Values: []dataset.Value{dataset.Int(1), dataset.Int(2)}},
		})
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(rep); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "No issues detected.") {
			t.Errorf("expected no-issues note, got:\n%s", out)
		}
		if strings.Contains(out, "## Duplicate Rows") {
			t.Error("expected no duplicate preview section")
		}
		if !strings.Contains(out, "No action needed.") {
			t.Errorf("expected no-action note, got:\n%s", out)
		}
	})
}

// TestMultiWriter verifies fan-out across formats.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, csv bytes.Buffer
	mw := NewMultiWriter(NewTextWriter(&text), NewCSVWriter(&csv))

	n, err := mw.Write(issueReporter(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != text.Len()+csv.Len() {
		t.Errorf("expected total %d, got %d", text.Len()+csv.Len(), n)
	}
	if text.Len() == 0 || csv.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}

// TestTruncateString verifies detail truncation in Markdown tables.
func TestTruncateString(t *testing.T) {
	t.Parallel()

	if got := truncateString("short", 80); got != "short" {
		t.Errorf("expected passthrough, got %q", got)
	}
	long := strings.Repeat("x", 100)
	got := truncateString(long, 80)
	if len(got) != 80 || !strings.HasSuffix(got, "...") {
		t.Errorf("expected 80 chars ending in ellipsis, got %d chars", len(got))
	}
}
