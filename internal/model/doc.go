// Package model defines the scan result structures produced by the
// checker and consumed by the reporter and report writers.
//
// All structures in this package are created once per scan and never
// mutated afterward. Serialization (JSON for download, CSV for the issue
// table) works directly off these types.
package model
