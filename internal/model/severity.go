package model

// Severity represents how urgently an issue should be addressed.
//
// Design decision: We use iota-based constants rather than string
// constants for efficiency in comparisons and sorting. The String()
// method provides the display text used in the issue table.
type Severity int

const (
	// SeverityLow indicates issues with limited impact on downstream use.
	SeverityLow Severity = iota

	// SeverityMedium indicates issues that warrant attention.
	// Examples: duplicate rows, inconsistent date formats, outliers.
	SeverityMedium

	// SeverityHigh indicates issues that likely break downstream
	// processing. Examples: mixed types in one column, heavy missingness.
	SeverityHigh
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// MissingSeverity rates a missing-value finding by its percentage.
// More than 10% missing is High, anything else Medium.
func MissingSeverity(percentage float64) Severity {
	if percentage > 10 {
		return SeverityHigh
	}
	return SeverityMedium
}

// SchemaSeverity rates a schema issue by its kind.
// Mixed types are High because they usually break type-sensitive
// consumers; the remaining kinds are Medium.
func SchemaSeverity(kind string) Severity {
	if kind == IssueKindMixedTypes {
		return SeverityHigh
	}
	return SeverityMedium
}

// ScoreTier labels a data quality score for recommendations and alerts.
// Below 70 is "poor", below 90 "fair", everything else "good".
func ScoreTier(score int) string {
	switch {
	case score < 70:
		return "poor"
	case score < 90:
		return "fair"
	default:
		return "good"
	}
}
