package checker

import (
	"github.com/nao1215/datascan/internal/dataset"
	"github.com/nao1215/datascan/internal/model"
)

// Checker runs data quality checks over one immutable dataset snapshot.
//
// The three sub-checks may be invoked independently and are idempotent:
// repeated calls on the same snapshot yield identical results. A Checker
// accumulates its partial results internally during a run, so a single
// instance must not be used from multiple goroutines; scan independent
// datasets with independent Checker instances instead.
type Checker struct {
	ds *dataset.Dataset

	// Partial results accumulated by the sub-checks. RunAllChecks reads
	// these to build the summary.
	missing    map[string]model.ColumnMissingStat
	duplicates model.DuplicateStat
	schema     map[string]model.ColumnIssues
}

// New creates a Checker over the given dataset snapshot.
// The dataset is read-only for the lifetime of the Checker.
func New(ds *dataset.Dataset) *Checker {
	return &Checker{ds: ds}
}

// RunAllChecks executes all three analyses and aggregates them into the
// full scan result. This is the entry point external callers are
// expected to use.
func (c *Checker) RunAllChecks() *model.ScanResult {
	missing := c.CheckMissingValues()
	duplicates := c.CheckDuplicates()
	schema := c.CheckSchema()

	// One issue per column with missing values, one if any duplicates
	// exist, one per column with at least one schema issue.
	totalIssues := 0
	for _, stat := range missing {
		if stat.HasMissing {
			totalIssues++
		}
	}
	if duplicates.HasDuplicates {
		totalIssues++
	}
	totalIssues += len(schema)

	score := 100 - 10*totalIssues
	if score < 0 {
		score = 0
	}

	return &model.ScanResult{
		MissingValues: missing,
		Duplicates:    duplicates,
		SchemaIssues:  schema,
		Summary: model.ScanSummary{
			TotalRows:        c.ds.NumRows(),
			TotalColumns:     c.ds.NumColumns(),
			TotalIssues:      totalIssues,
			DataQualityScore: score,
		},
	}
}
