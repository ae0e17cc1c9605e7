package reporter

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// sectionRule is the separator line width in the text report.
const sectionRule = 50

// TextReport renders the fixed-section plain text report:
// SUMMARY, MISSING VALUES, DUPLICATES, SCHEMA ISSUES, RECOMMENDATIONS.
// Section order and wording are part of the output contract; consumers
// diff reports across runs.
func (r *Reporter) TextReport() string {
	stats := r.SummaryStats()
	// Large row counts read better with thousands separators.
	p := message.NewPrinter(language.English)

	var sb strings.Builder
	rule := strings.Repeat("=", sectionRule)
	sb.WriteString(rule + "\n")
	sb.WriteString("DATA QUALITY ANALYSIS REPORT\n")
	sb.WriteString(rule + "\n\n")

	sb.WriteString("SUMMARY:\n")
	sb.WriteString(p.Sprintf("  Total Rows: %d\n", stats.TotalRows))
	sb.WriteString(fmt.Sprintf("  Total Columns: %d\n", stats.TotalColumns))
	sb.WriteString(fmt.Sprintf("  Data Quality Score: %d/100\n", stats.DataQualityScore))
	sb.WriteString("\n")

	if stats.ColumnsWithMissing > 0 {
		sb.WriteString("MISSING VALUES:\n")
		for _, name := range r.ds.ColumnNames() {
			stat, ok := r.result.MissingValues[name]
			if !ok || !stat.HasMissing {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s: %d missing (%s%%)\n",
				name, stat.Count, formatPercent(stat.Percentage)))
		}
		sb.WriteString("\n")
	}

	if stats.DuplicateRows > 0 {
		sb.WriteString("DUPLICATES:\n")
		sb.WriteString(fmt.Sprintf("  %d duplicate rows found\n", stats.DuplicateRows))
		sb.WriteString("\n")
	}

	if stats.SchemaIssuesCount > 0 {
		sb.WriteString("SCHEMA ISSUES:\n")
		for _, name := range r.ds.ColumnNames() {
			issues, ok := r.result.SchemaIssues[name]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s:\n", name))
			for _, kd := range issues.Kinds() {
				sb.WriteString(fmt.Sprintf("    - %s: %s\n", kd.Kind, formatDetail(kd.Detail)))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("RECOMMENDATIONS:\n")
	switch {
	case stats.DataQualityScore < 70:
		sb.WriteString("  WARNING: Data quality is poor. Immediate attention required.\n")
	case stats.DataQualityScore < 90:
		sb.WriteString("  WARNING: Data quality is fair. Consider addressing identified issues.\n")
	default:
		sb.WriteString("  SUCCESS: Data quality is good. Minor improvements recommended.\n")
	}
	if stats.ColumnsWithMissing > 0 {
		sb.WriteString("  - Address missing values in affected columns\n")
	}
	if stats.DuplicateRows > 0 {
		sb.WriteString("  - Remove or investigate duplicate rows\n")
	}
	if stats.SchemaIssuesCount > 0 {
		sb.WriteString("  - Standardize data formats in affected columns\n")
	}

	return sb.String()
}
