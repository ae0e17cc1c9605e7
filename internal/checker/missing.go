package checker

import "github.com/nao1215/datascan/internal/model"

// CheckMissingValues counts null-sentinel cells per column.
// A dataset with zero rows yields a zero-valued stat for every column;
// the percentage is defined as 0 in that case to avoid division by zero.
func (c *Checker) CheckMissingValues() map[string]model.ColumnMissingStat {
	totalRows := c.ds.NumRows()
	stats := make(map[string]model.ColumnMissingStat, c.ds.NumColumns())

	for _, name := range c.ds.ColumnNames() {
		col, err := c.ds.Column(name)
		if err != nil {
			continue // Unreachable: names come from the snapshot itself
		}

		count := 0
		for _, v := range col.Values {
			if v.IsNull() {
				count++
			}
		}

		percentage := 0.0
		if totalRows > 0 {
			percentage = round2(float64(count) / float64(totalRows) * 100)
		}

		stats[name] = model.ColumnMissingStat{
			Count:      count,
			Percentage: percentage,
			HasMissing: count > 0,
		}
	}

	c.missing = stats
	return stats
}
