// Package database provides SQLite-based storage for scan history.
//
// Each completed scan is stored with its summary columns (rows, columns,
// issue count, quality score) plus the full result as JSON, so past scans
// of the same file can be compared without re-running them.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of
// other databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
