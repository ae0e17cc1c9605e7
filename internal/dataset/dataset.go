package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Dataset construction and lookup errors.
var (
	// ErrNoColumns is returned when a dataset is built without any columns.
	ErrNoColumns = errors.New("dataset has no columns")

	// ErrRaggedColumns is returned when columns have differing lengths.
	ErrRaggedColumns = errors.New("dataset columns have differing row counts")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrColumnNotFound is returned by Column for an unknown name.
	// Per the error policy this is the one lookup that surfaces as a
	// fatal condition to the caller.
	ErrColumnNotFound = errors.New("column not found")
)

// Column is a named, ordered sequence of cell values spanning all rows.
type Column struct {
	// Name is the column header.
	Name string

	// Values holds one cell per row, in row order.
	Values []Value
}

// NonNull returns the column's non-missing values in row order.
func (c *Column) NonNull() []Value {
	out := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsNull() {
			out = append(out, v)
		}
	}
	return out
}

// StorageKind returns the column's storage kind label, mirroring how a
// dataframe would type the column as a whole:
//   - "int64" when every cell is an integer and none are missing
//   - "float64" when every non-missing cell is numeric (int or float)
//     and at least one cell is a float or missing
//   - "bool" when every cell is a boolean and none are missing
//   - "text" otherwise (strings or mixed kinds)
//
// The string-consistency detector is gated on "text"; the kind
// distribution view also reads this.
func (c *Column) StorageKind() string {
	var ints, floats, bools, strs, nulls int
	for _, v := range c.Values {
		switch v.Kind() {
		case KindInt:
			ints++
		case KindFloat:
			floats++
		case KindBool:
			bools++
		case KindString:
			strs++
		case KindNull:
			nulls++
		}
	}
	nonNull := len(c.Values) - nulls

	switch {
	case nonNull == 0:
		return "text"
	case strs == 0 && bools == 0 && floats == 0 && nulls == 0 && ints > 0:
		return "int64"
	case strs == 0 && bools == 0 && ints+floats == nonNull:
		return "float64"
	case bools == nonNull && nulls == 0:
		return "bool"
	default:
		return "text"
	}
}

// Dataset is an immutable snapshot of named columns.
// Row count and column set are fixed for the duration of a scan, and no
// checker or reporter mutates the snapshot after construction.
type Dataset struct {
	columns []Column
	byName  map[string]int
	rows    int
}

// New builds a Dataset from ordered columns.
// All columns must have the same length and unique names. A dataset with
// zero rows is valid; a dataset with zero columns is not.
func New(columns []Column) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	byName := make(map[string]int, len(columns))
	rows := len(columns[0].Values)
	for i, col := range columns {
		if len(col.Values) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				ErrRaggedColumns, col.Name, len(col.Values), rows)
		}
		if _, ok := byName[col.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Name)
		}
		byName[col.Name] = i
	}

	return &Dataset{columns: columns, byName: byName, rows: rows}, nil
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return d.rows
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// ColumnNames returns the column names in column order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name.
func (d *Dataset) Column(name string) (*Column, error) {
	i, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return &d.columns[i], nil
}

// Row returns the cells of row i in column order.
// The slice is freshly allocated; callers may not reach the snapshot
// through it.
func (d *Dataset) Row(i int) []Value {
	row := make([]Value, len(d.columns))
	for c := range d.columns {
		row[c] = d.columns[c].Values[i]
	}
	return row
}

// RowKey returns a hash key identifying the full-row value tuple.
// Two rows share a key exactly when every column value compares Equal,
// with null equal to null.
func (d *Dataset) RowKey(i int) string {
	var sb strings.Builder
	for c := range d.columns {
		sb.WriteString(d.columns[c].Values[i].hashKey())
		sb.WriteByte(0x1f) // unit separator keeps adjacent cells apart
	}
	return sb.String()
}

// KindDistribution returns the number of columns per storage kind.
// This feeds the data-types view in rendered reports.
func (d *Dataset) KindDistribution() map[string]int {
	dist := make(map[string]int)
	for i := range d.columns {
		dist[d.columns[i].StorageKind()]++
	}
	return dist
}
