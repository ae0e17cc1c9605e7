// Package main provides the entry point for the datascan CLI.
//
// datascan analyzes CSV files for data quality problems: missing
// values, duplicate rows, and schema inconsistencies such as mixed
// types, inconsistent date formats, and malformed values in
// numeric-looking or email columns.
//
// Usage:
//
//	datascan scan <file.csv>
//	datascan scan data/*.csv
//
// See --help for all available options.
package main

// main is the entry point for datascan.
func main() {
	Execute()
}
