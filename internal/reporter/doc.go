// Package reporter derives presentation-ready views from a scan result:
// flattened summary statistics, the ordered issue table, and the plain
// text report.
//
// Everything here is a pure transformation. The reporter never re-runs
// detection logic; it only reads the result structure, plus the dataset
// for two raw lookups (duplicate-row preview and column kind
// distribution).
package reporter
