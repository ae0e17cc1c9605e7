// Package pipeline orchestrates scans: loading a CSV file into a
// dataset snapshot, running the quality checks, and optionally
// persisting the result to the scan history database.
//
// A single scan is synchronous and single-threaded; parallelism only
// exists across files in batch mode, where every file gets its own
// Checker instance over its own snapshot.
package pipeline
