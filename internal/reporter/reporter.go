package reporter

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nao1215/datascan/internal/dataset"
	"github.com/nao1215/datascan/internal/model"
)

// Reporter builds derived views over one scan result.
// It holds the dataset alongside the result because two views (the
// duplicate-row preview and the column kind distribution) need raw
// lookups the result structure doesn't carry.
type Reporter struct {
	result *model.ScanResult
	ds     *dataset.Dataset
}

// New creates a Reporter for the given scan result and dataset snapshot.
func New(result *model.ScanResult, ds *dataset.Dataset) *Reporter {
	return &Reporter{result: result, ds: ds}
}

// Result returns the underlying scan result.
func (r *Reporter) Result() *model.ScanResult {
	return r.result
}

// SummaryStats is the flattened dashboard summary.
type SummaryStats struct {
	TotalRows          int  `json:"total_rows"`
	TotalColumns       int  `json:"total_columns"`
	DataQualityScore   int  `json:"data_quality_score"`
	ColumnsWithMissing int  `json:"columns_with_missing"`
	TotalMissingCells  int  `json:"total_missing_cells"`
	DuplicateRows      int  `json:"duplicate_rows"`
	SchemaIssuesCount  int  `json:"schema_issues_count"`
	HasIssues          bool `json:"has_issues"`
}

// SummaryStats flattens the scan summary plus the derived counts.
func (r *Reporter) SummaryStats() SummaryStats {
	return SummaryStats{
		TotalRows:          r.result.Summary.TotalRows,
		TotalColumns:       r.result.Summary.TotalColumns,
		DataQualityScore:   r.result.Summary.DataQualityScore,
		ColumnsWithMissing: r.result.ColumnsWithMissing(),
		TotalMissingCells:  r.result.TotalMissingCells(),
		DuplicateRows:      r.result.Duplicates.Count,
		SchemaIssuesCount:  len(r.result.SchemaIssues),
		HasIssues:          r.result.HasIssues(),
	}
}

// IssueRow is one row of the issue summary table.
type IssueRow struct {
	Type     string `json:"Type"`
	Column   string `json:"Column"`
	Severity string `json:"Severity"`
	Details  string `json:"Details"`
}

// IssueTable returns one row per detected issue: missing-value columns
// first (in column order), then the dataset-wide duplicate row, then
// schema issues in column order and detector-key order within a column.
func (r *Reporter) IssueTable() []IssueRow {
	rows := make([]IssueRow, 0)

	for _, name := range r.ds.ColumnNames() {
		stat, ok := r.result.MissingValues[name]
		if !ok || !stat.HasMissing {
			continue
		}
		rows = append(rows, IssueRow{
			Type:     "Missing Values",
			Column:   name,
			Severity: model.MissingSeverity(stat.Percentage).String(),
			Details:  fmt.Sprintf("%d missing (%s%%)", stat.Count, formatPercent(stat.Percentage)),
		})
	}

	if r.result.Duplicates.HasDuplicates {
		rows = append(rows, IssueRow{
			Type:     "Duplicates",
			Column:   "All",
			Severity: model.SeverityMedium.String(),
			Details:  fmt.Sprintf("%d duplicate rows", r.result.Duplicates.Count),
		})
	}

	for _, name := range r.ds.ColumnNames() {
		issues, ok := r.result.SchemaIssues[name]
		if !ok {
			continue
		}
		for _, kd := range issues.Kinds() {
			rows = append(rows, IssueRow{
				Type:     "Schema Issue: " + kd.Kind,
				Column:   name,
				Severity: model.SchemaSeverity(kd.Kind).String(),
				Details:  formatDetail(kd.Detail),
			})
		}
	}

	return rows
}

// DuplicateRowPreview returns up to limit duplicate rows as display
// strings, preceded by the column names. Returns nil when the dataset
// has no duplicates.
func (r *Reporter) DuplicateRowPreview(limit int) [][]string {
	indices := r.result.Duplicates.DuplicateRowIndices
	if len(indices) == 0 {
		return nil
	}
	if limit > 0 && len(indices) > limit {
		indices = indices[:limit]
	}

	preview := make([][]string, 0, len(indices)+1)
	preview = append(preview, append([]string{"row"}, r.ds.ColumnNames()...))
	for _, idx := range indices {
		cells := make([]string, 0, r.ds.NumColumns()+1)
		cells = append(cells, strconv.Itoa(idx))
		for _, v := range r.ds.Row(idx) {
			cells = append(cells, v.Display())
		}
		preview = append(preview, cells)
	}
	return preview
}

// KindDistribution returns the number of columns per storage kind.
func (r *Reporter) KindDistribution() map[string]int {
	return r.ds.KindDistribution()
}

// formatDetail renders a schema issue detail record as compact JSON.
// JSON keeps the output deterministic (map keys are sorted) and
// machine-recoverable from the table text.
func formatDetail(detail any) string {
	data, err := json.Marshal(detail)
	if err != nil {
		return fmt.Sprintf("%+v", detail)
	}
	return string(data)
}

// formatPercent renders a percentage without trailing zeros, so 20.0
// prints as "20" and 33.33 stays "33.33".
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
