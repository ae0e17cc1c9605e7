package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/datascan/internal/model"
	"github.com/nao1215/datascan/internal/reporter"
	"github.com/nao1215/markdown"
)

// duplicatePreviewLimit caps how many duplicate rows the Markdown report
// shows. The full index list remains in the JSON output.
const duplicatePreviewLimit = 10

// MarkdownWriter outputs the report in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides type-safe tables, lists, and
// GitHub-flavored alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(rep *reporter.Reporter) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, rep)
	w.writeIssueTable(md, rep)
	w.writeDataTypes(md, rep)
	w.writeDuplicatePreview(md, rep)
	w.writeRecommendations(md, rep)

	return len(md.String()), md.Build()
}

// writeHeader writes the summary table and the score alert.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, rep *reporter.Reporter) {
	stats := rep.SummaryStats()

	md.H1("Data Quality Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Total Rows", strconv.Itoa(stats.TotalRows)},
			{"Total Columns", strconv.Itoa(stats.TotalColumns)},
			{"Data Quality Score", strconv.Itoa(stats.DataQualityScore) + "/100"},
			{"Columns With Missing", strconv.Itoa(stats.ColumnsWithMissing)},
			{"Missing Cells", strconv.Itoa(stats.TotalMissingCells)},
			{"Duplicate Rows", strconv.Itoa(stats.DuplicateRows)},
			{"Columns With Schema Issues", strconv.Itoa(stats.SchemaIssuesCount)},
		},
	})
	md.PlainText("")

	switch model.ScoreTier(stats.DataQualityScore) {
	case "poor":
		md.Cautionf("Data quality is poor (score %d/100). Immediate attention required.", stats.DataQualityScore)
	case "fair":
		md.Warningf("Data quality is fair (score %d/100). Consider addressing identified issues.", stats.DataQualityScore)
	default:
		md.Tip(fmt.Sprintf("Data quality is good (score %d/100).", stats.DataQualityScore))
	}
	md.PlainText("")
}

// writeIssueTable writes the ordered issue summary table.
func (w *MarkdownWriter) writeIssueTable(md *markdown.Markdown, rep *reporter.Reporter) {
	md.H2("Issues")
	md.PlainText("")

	table := rep.IssueTable()
	if len(table) == 0 {
		md.PlainText("No issues detected.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(table))
	for i, row := range table {
		rows[i] = []string{row.Type, row.Column, row.Severity, truncateString(row.Details, 80)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Type", "Column", "Severity", "Details"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeDataTypes writes the column storage kind distribution.
func (w *MarkdownWriter) writeDataTypes(md *markdown.Markdown, rep *reporter.Reporter) {
	md.H2("Data Types")
	md.PlainText("")

	dist := rep.KindDistribution()
	kinds := make([]string, 0, len(dist))
	for kind := range dist {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	rows := make([][]string, len(kinds))
	for i, kind := range kinds {
		rows[i] = []string{kind, strconv.Itoa(dist[kind])}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Storage Kind", "Columns"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeDuplicatePreview writes the first rows of each duplicate group.
func (w *MarkdownWriter) writeDuplicatePreview(md *markdown.Markdown, rep *reporter.Reporter) {
	preview := rep.DuplicateRowPreview(duplicatePreviewLimit)
	if preview == nil {
		return
	}

	md.H2("Duplicate Rows")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: preview[0],
		Rows:   preview[1:],
	})
	md.PlainText("")
}

// writeRecommendations writes one line per issue category present.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, rep *reporter.Reporter) {
	stats := rep.SummaryStats()

	md.H2("Recommendations")
	md.PlainText("")

	var items []string
	if stats.ColumnsWithMissing > 0 {
		items = append(items, "Address missing values in affected columns")
	}
	if stats.DuplicateRows > 0 {
		items = append(items, "Remove or investigate duplicate rows")
	}
	if stats.SchemaIssuesCount > 0 {
		items = append(items, "Standardize data formats in affected columns")
	}

	if len(items) == 0 {
		md.PlainText("No action needed.")
		md.PlainText("")
		return
	}
	md.BulletList(items...)
	md.PlainText("")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
