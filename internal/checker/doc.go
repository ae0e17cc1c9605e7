// Package checker implements the data quality checks: missing-value
// analysis, full-row duplicate analysis, and per-column schema profiling,
// aggregated into a scan result with a derived quality score.
//
// A scan is a pure, synchronous function of one immutable dataset
// snapshot. Running the same check twice on the same snapshot yields
// identical results.
package checker
