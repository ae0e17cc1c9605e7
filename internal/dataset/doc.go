// Package dataset provides the in-memory tabular data model used by the
// quality checks.
//
// A Dataset is an immutable snapshot of named columns with typed cell
// values. The checker and reporter packages only read from it; all
// mutation happens during construction (typically via ReadCSV).
package dataset
