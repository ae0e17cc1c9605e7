package model

// Schema issue kind identifiers.
// These are the keys a column's issue record is reported under, and the
// fixed detector-key order used by the reporter's issue table.
const (
	IssueKindMixedTypes    = "mixed_types"
	IssueKindDateFormats   = "date_formats"
	IssueKindNumericIssues = "numeric_issues"
	IssueKindStringIssues  = "string_issues"
)

// IssueKindOrder is the canonical ordering of schema issue kinds.
var IssueKindOrder = []string{
	IssueKindMixedTypes,
	IssueKindDateFormats,
	IssueKindNumericIssues,
	IssueKindStringIssues,
}

// ColumnMissingStat holds missing-value statistics for one column.
type ColumnMissingStat struct {
	// Count is the number of cells holding the null sentinel.
	Count int `json:"count"`

	// Percentage is 100*Count/rowCount rounded to 2 decimals.
	// Defined as 0 when the dataset has no rows.
	Percentage float64 `json:"percentage"`

	// HasMissing is true when Count > 0.
	HasMissing bool `json:"has_missing"`
}

// DuplicateStat holds full-row duplicate statistics for the dataset.
//
// Count and DuplicateRowIndices are intentionally asymmetric: Count
// excludes the first occurrence of each duplicate group (standard
// duplicate-row counting) while DuplicateRowIndices lists every row that
// belongs to a group of size >= 2, first occurrence included. This is
// observable behavior and must not be unified.
type DuplicateStat struct {
	// Count is the number of rows that are not the first occurrence of
	// their full-row value tuple.
	Count int `json:"count"`

	// Percentage is 100*Count/rowCount rounded to 2 decimals.
	Percentage float64 `json:"percentage"`

	// HasDuplicates is true when Count > 0.
	HasDuplicates bool `json:"has_duplicates"`

	// DuplicateRowIndices lists every row index participating in any
	// duplicate group, ordered by original row index.
	DuplicateRowIndices []int `json:"duplicate_rows"`
}

// MixedTypeIssue reports a column whose non-missing cells span more than
// one runtime kind.
type MixedTypeIssue struct {
	// DetectedTypes are the kind labels seen in the column.
	// Sorted for deterministic output; the set itself is unordered.
	DetectedTypes []string `json:"detected_types"`

	// Count is the number of non-missing cells inspected.
	Count int `json:"count"`
}

// DateFormatIssue reports a date-like column matching two or more of the
// known date patterns.
type DateFormatIssue struct {
	// MultipleFormats is always true when the issue is present.
	MultipleFormats bool `json:"multiple_formats"`

	// FormatDistribution maps each matching pattern to its match count.
	// Patterns with zero matches are omitted.
	FormatDistribution map[string]int `json:"format_distribution"`

	// TotalRecords is the number of non-missing cells tested.
	TotalRecords int `json:"total_records"`
}

// NonNumericStat reports values that failed numeric coercion in a
// numeric-like column.
type NonNumericStat struct {
	// Count is the number of non-coercible values.
	Count int `json:"count"`

	// Percentage is relative to the column's non-missing count.
	Percentage float64 `json:"percentage"`
}

// OutlierStat reports IQR outliers among a column's coercible values.
type OutlierStat struct {
	// Count is the number of values outside [Q1-1.5*IQR, Q3+1.5*IQR].
	Count int `json:"count"`

	// Percentage is relative to the coerced-numeric count.
	Percentage float64 `json:"percentage"`

	// Values holds the outlier values in original row order.
	Values []float64 `json:"values"`
}

// NumericIssue aggregates the numeric-consistency sub-findings.
// Both sub-findings may co-occur.
type NumericIssue struct {
	NonNumericValues *NonNumericStat `json:"non_numeric_values,omitempty"`
	Outliers         *OutlierStat    `json:"outliers,omitempty"`
}

// LengthStat reports high variance in string lengths.
type LengthStat struct {
	MeanLength float64 `json:"mean_length"`
	StdLength  float64 `json:"std_length"`
	MinLength  int     `json:"min_length"`
	MaxLength  int     `json:"max_length"`
}

// EmailFormatStat reports an email-like column where fewer than 80% of
// values match the email pattern.
type EmailFormatStat struct {
	ValidCount      int     `json:"valid_count"`
	InvalidCount    int     `json:"invalid_count"`
	ValidPercentage float64 `json:"valid_percentage"`
}

// StringIssue aggregates the string-consistency sub-findings.
type StringIssue struct {
	LengthInconsistency *LengthStat      `json:"length_inconsistency,omitempty"`
	EmailFormat         *EmailFormatStat `json:"email_format,omitempty"`
}

// ColumnIssues is the per-column schema issue record.
//
// Design decision: The original result shape is an open mapping from
// issue kind to a kind-specific record. We model it as a closed union
// over the four known kinds instead: each detector gets a fixed field,
// nil meaning "detector found nothing". This keeps type safety while the
// JSON form reproduces the same observable shape (absent keys for absent
// findings).
type ColumnIssues struct {
	MixedTypes    *MixedTypeIssue  `json:"mixed_types,omitempty"`
	DateFormats   *DateFormatIssue `json:"date_formats,omitempty"`
	NumericIssues *NumericIssue    `json:"numeric_issues,omitempty"`
	StringIssues  *StringIssue     `json:"string_issues,omitempty"`
}

// Empty reports whether no detector fired for the column.
func (c ColumnIssues) Empty() bool {
	return c.MixedTypes == nil && c.DateFormats == nil &&
		c.NumericIssues == nil && c.StringIssues == nil
}

// KindDetail pairs an issue kind with its detail record.
type KindDetail struct {
	// Kind is one of the IssueKind constants.
	Kind string

	// Detail is the kind-specific record (*MixedTypeIssue,
	// *DateFormatIssue, *NumericIssue, or *StringIssue).
	Detail any
}

// Kinds returns the present findings in canonical detector-key order.
func (c ColumnIssues) Kinds() []KindDetail {
	var kinds []KindDetail
	if c.MixedTypes != nil {
		kinds = append(kinds, KindDetail{Kind: IssueKindMixedTypes, Detail: c.MixedTypes})
	}
	if c.DateFormats != nil {
		kinds = append(kinds, KindDetail{Kind: IssueKindDateFormats, Detail: c.DateFormats})
	}
	if c.NumericIssues != nil {
		kinds = append(kinds, KindDetail{Kind: IssueKindNumericIssues, Detail: c.NumericIssues})
	}
	if c.StringIssues != nil {
		kinds = append(kinds, KindDetail{Kind: IssueKindStringIssues, Detail: c.StringIssues})
	}
	return kinds
}

// ScanSummary holds the derived scan totals.
type ScanSummary struct {
	TotalRows    int `json:"total_rows"`
	TotalColumns int `json:"total_columns"`

	// TotalIssues counts issue categories: one per column with missing
	// values, one if any duplicates exist, and one per column with at
	// least one schema issue.
	TotalIssues int `json:"total_issues"`

	// DataQualityScore is max(0, 100 - 10*TotalIssues).
	DataQualityScore int `json:"data_quality_score"`
}

// ScanResult is the complete output of one checker run over one dataset
// snapshot. It is produced once and immutable thereafter.
type ScanResult struct {
	// MissingValues maps column name to its missing-value statistics.
	MissingValues map[string]ColumnMissingStat `json:"missing_values"`

	// Duplicates holds the full-row duplicate statistics.
	Duplicates DuplicateStat `json:"duplicates"`

	// SchemaIssues maps column name to its issue record. Columns with
	// no detected issues are absent.
	SchemaIssues map[string]ColumnIssues `json:"schema_issues"`

	// Summary holds the derived totals and quality score.
	Summary ScanSummary `json:"summary"`
}

// ColumnsWithMissing returns the number of columns with missing values.
func (r *ScanResult) ColumnsWithMissing() int {
	count := 0
	for _, stat := range r.MissingValues {
		if stat.HasMissing {
			count++
		}
	}
	return count
}

// TotalMissingCells returns the sum of missing counts over all columns.
func (r *ScanResult) TotalMissingCells() int {
	total := 0
	for _, stat := range r.MissingValues {
		total += stat.Count
	}
	return total
}

// HasIssues reports whether any issue category was detected.
func (r *ScanResult) HasIssues() bool {
	return r.Summary.TotalIssues > 0
}
