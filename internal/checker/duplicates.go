package checker

import (
	"sort"

	"github.com/nao1215/datascan/internal/model"
)

// CheckDuplicates detects exact full-row duplicates.
// Two rows are duplicates when every column value compares equal, with
// null equal to null.
//
// Count excludes the first occurrence of each duplicate group while
// DuplicateRowIndices includes it; see model.DuplicateStat for why this
// asymmetry is kept.
func (c *Checker) CheckDuplicates() model.DuplicateStat {
	totalRows := c.ds.NumRows()

	// Group rows by their full-row value tuple, preserving row order
	// within each group.
	groups := make(map[string][]int)
	for i := 0; i < totalRows; i++ {
		key := c.ds.RowKey(i)
		groups[key] = append(groups[key], i)
	}

	count := 0
	indices := make([]int, 0)
	for _, rows := range groups {
		if len(rows) < 2 {
			continue
		}
		count += len(rows) - 1
		indices = append(indices, rows...)
	}
	sort.Ints(indices)

	percentage := 0.0
	if totalRows > 0 {
		percentage = round2(float64(count) / float64(totalRows) * 100)
	}

	stat := model.DuplicateStat{
		Count:               count,
		Percentage:          percentage,
		HasDuplicates:       count > 0,
		DuplicateRowIndices: indices,
	}
	c.duplicates = stat
	return stat
}
