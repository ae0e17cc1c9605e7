package checker

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/datascan/internal/dataset"
	"github.com/nao1215/datascan/internal/model"
)

// Column-name keywords gating the date and numeric detectors.
// These lists are user-facing contract: changing them changes which
// columns get profiled, so tests pin them exactly.
var (
	dateKeywords    = []string{"date", "time", "created", "updated", "timestamp"}
	numericKeywords = []string{"id", "count", "amount", "price", "quantity", "number", "total"}
)

// datePattern pairs a display label with its prefix-matching regex.
type datePattern struct {
	label string
	re    *regexp.Regexp
}

// datePatterns is the fixed ordered list of recognized date layouts.
// Matching is anchored at the start only, so a value may credit every
// pattern whose prefix it satisfies.
var datePatterns = []datePattern{
	{label: "YYYY-MM-DD", re: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)},
	{label: "MM/DD/YYYY", re: regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)},
	{label: "MM-DD-YYYY", re: regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)},
	{label: "YYYY/MM/DD", re: regexp.MustCompile(`^\d{4}/\d{2}/\d{2}`)},
}

// emailRegex validates whole values as email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// lengthStdRatio is the threshold for the string length detector: the
// sample standard deviation of lengths must exceed this fraction of the
// mean length to count as inconsistent.
const lengthStdRatio = 0.5

// emailValidRatio is the minimum fraction of values that must match the
// email pattern before the email detector stays quiet.
const emailValidRatio = 0.8

// CheckSchema profiles every column with at least one non-missing value
// and reports whichever detectors fire. Columns with no findings are
// absent from the returned map.
func (c *Checker) CheckSchema() map[string]model.ColumnIssues {
	issues := make(map[string]model.ColumnIssues)

	for _, name := range c.ds.ColumnNames() {
		col, err := c.ds.Column(name)
		if err != nil {
			continue // Unreachable: names come from the snapshot itself
		}
		nonNull := col.NonNull()
		if len(nonNull) == 0 {
			continue
		}

		ci := c.detectColumnIssues(name, col, nonNull)
		if !ci.Empty() {
			issues[name] = ci
		}
	}

	c.schema = issues
	return issues
}

// detectColumnIssues runs the independent detectors over one column.
// Detector order does not affect any detector's own output; the
// aggregate record simply collects whichever found something.
func (c *Checker) detectColumnIssues(name string, col *dataset.Column, nonNull []dataset.Value) model.ColumnIssues {
	var ci model.ColumnIssues

	ci.MixedTypes = detectMixedTypes(nonNull)

	if nameContainsAny(name, dateKeywords) {
		ci.DateFormats = detectDateFormats(nonNull)
	}

	if nameContainsAny(name, numericKeywords) {
		ci.NumericIssues = detectNumericIssues(nonNull)
	}

	if col.StorageKind() == "text" {
		ci.StringIssues = detectStringIssues(name, nonNull)
	}

	return ci
}

// nameContainsAny reports whether the column name contains any keyword,
// case-insensitively.
func nameContainsAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// detectMixedTypes reports a finding when the non-missing cells span
// more than one runtime kind.
func detectMixedTypes(nonNull []dataset.Value) *model.MixedTypeIssue {
	kinds := make(map[string]bool)
	for _, v := range nonNull {
		kinds[v.Kind().String()] = true
	}
	if len(kinds) <= 1 {
		return nil
	}

	labels := make([]string, 0, len(kinds))
	for k := range kinds {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	return &model.MixedTypeIssue{
		DetectedTypes: labels,
		Count:         len(nonNull),
	}
}

// detectDateFormats tests every stringified value against the known date
// patterns and reports a finding when two or more distinct patterns have
// at least one match.
func detectDateFormats(nonNull []dataset.Value) *model.DateFormatIssue {
	counts := make(map[string]int)
	for _, p := range datePatterns {
		for _, v := range nonNull {
			if p.re.MatchString(v.Display()) {
				counts[p.label]++
			}
		}
	}
	if len(counts) <= 1 {
		return nil
	}

	return &model.DateFormatIssue{
		MultipleFormats:    true,
		FormatDistribution: counts,
		TotalRecords:       len(nonNull),
	}
}

// detectNumericIssues coerces every value to a number and reports
// coercion failures and IQR outliers among the coercible subset.
func detectNumericIssues(nonNull []dataset.Value) *model.NumericIssue {
	numeric := make([]float64, 0, len(nonNull))
	nonNumeric := 0
	for _, v := range nonNull {
		f, ok := v.Float()
		if !ok {
			nonNumeric++
			continue
		}
		numeric = append(numeric, f)
	}

	var issue model.NumericIssue
	if nonNumeric > 0 {
		issue.NonNumericValues = &model.NonNumericStat{
			Count:      nonNumeric,
			Percentage: round2(float64(nonNumeric) / float64(len(nonNull)) * 100),
		}
	}

	if len(numeric) > 0 {
		issue.Outliers = detectOutliers(numeric)
	}

	if issue.NonNumericValues == nil && issue.Outliers == nil {
		return nil
	}
	return &issue
}

// detectOutliers applies the IQR rule over the coerced numeric values.
// Values outside [Q1-1.5*IQR, Q3+1.5*IQR] are outliers, reported in
// original order.
func detectOutliers(numeric []float64) *model.OutlierStat {
	sorted := append([]float64(nil), numeric...)
	sort.Float64s(sorted)

	q1 := percentile(sorted, 0.25)
	q3 := percentile(sorted, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	var outliers []float64
	for _, f := range numeric {
		if f < lower || f > upper {
			outliers = append(outliers, f)
		}
	}
	if len(outliers) == 0 {
		return nil
	}

	return &model.OutlierStat{
		Count:      len(outliers),
		Percentage: round2(float64(len(outliers)) / float64(len(numeric)) * 100),
		Values:     outliers,
	}
}

// detectStringIssues checks length consistency over the column's string
// cells and, for email-like columns, the share of values matching the
// email pattern.
func detectStringIssues(name string, nonNull []dataset.Value) *model.StringIssue {
	var issue model.StringIssue

	lengths := make([]float64, 0, len(nonNull))
	min, max := 0, 0
	for _, v := range nonNull {
		if v.Kind() != dataset.KindString {
			continue
		}
		n := utf8.RuneCountInString(v.Display())
		if len(lengths) == 0 || n < min {
			min = n
		}
		if n > max {
			max = n
		}
		lengths = append(lengths, float64(n))
	}

	// A single string has no spread; skip rather than divide by zero.
	if len(lengths) >= 2 {
		m := mean(lengths)
		std := sampleStd(lengths, m)
		if std > m*lengthStdRatio {
			issue.LengthInconsistency = &model.LengthStat{
				MeanLength: round2(m),
				StdLength:  round2(std),
				MinLength:  min,
				MaxLength:  max,
			}
		}
	}

	if strings.Contains(strings.ToLower(name), "email") {
		issue.EmailFormat = detectEmailFormat(nonNull)
	}

	if issue.LengthInconsistency == nil && issue.EmailFormat == nil {
		return nil
	}
	return &issue
}

// detectEmailFormat validates every value against the email pattern and
// reports a finding when fewer than 80% match. Non-string values never
// match and count as invalid.
func detectEmailFormat(nonNull []dataset.Value) *model.EmailFormatStat {
	valid := 0
	for _, v := range nonNull {
		if v.Kind() == dataset.KindString && emailRegex.MatchString(v.Display()) {
			valid++
		}
	}
	total := len(nonNull)
	if float64(valid) >= float64(total)*emailValidRatio {
		return nil
	}

	return &model.EmailFormatStat{
		ValidCount:      valid,
		InvalidCount:    total - valid,
		ValidPercentage: round2(float64(valid) / float64(total) * 100),
	}
}
