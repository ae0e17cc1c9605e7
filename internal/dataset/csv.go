package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSV ingestion errors.
var (
	// ErrEmptyCSV is returned when the input contains no header row.
	ErrEmptyCSV = errors.New("csv input is empty")
)

// DefaultNullTokens are the cell strings treated as the missing sentinel
// during CSV ingestion. The set mirrors what spreadsheet exports and
// dataframe round trips commonly produce.
var DefaultNullTokens = []string{"", "NA", "N/A", "null", "NULL", "NaN", "nan", "None"}

// ReadOptions configures CSV ingestion.
type ReadOptions struct {
	// Delimiter is the field separator. Zero means comma.
	Delimiter rune

	// NullTokens are cell strings mapped to the null sentinel.
	// Nil means DefaultNullTokens.
	NullTokens []string
}

// ReadCSV materializes a Dataset from CSV input.
// The first record is the header; every following record is one row.
// Cell values are inferred per cell: null token, integer, float, boolean,
// then text. Ingestion is the only place raw files are parsed; the checks
// operate purely on the returned snapshot.
func ReadCSV(r io.Reader, opts ReadOptions) (*Dataset, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCSV
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	nulls := opts.NullTokens
	if nulls == nil {
		nulls = DefaultNullTokens
	}
	nullSet := make(map[string]bool, len(nulls))
	for _, tok := range nulls {
		nullSet[tok] = true
	}

	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: strings.TrimSpace(name)}
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		for i := range columns {
			var cell string
			if i < len(record) {
				cell = record[i]
			}
			columns[i].Values = append(columns[i].Values, inferValue(cell, nullSet))
		}
	}

	return New(columns)
}

// ReadCSVFile opens path and materializes a Dataset from it.
func ReadCSVFile(path string, opts ReadOptions) (*Dataset, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	ds, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// inferValue converts a raw CSV cell to a typed Value.
// Inference order matters: null tokens win over everything, and integer
// parsing is tried before float so "4" stays an int.
func inferValue(cell string, nullSet map[string]bool) Value {
	if nullSet[cell] {
		return Null()
	}
	trimmed := strings.TrimSpace(cell)
	if nullSet[trimmed] {
		return Null()
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Float(f)
	}
	switch trimmed {
	case "true", "false", "True", "False", "TRUE", "FALSE":
		return Bool(trimmed == "true" || trimmed == "True" || trimmed == "TRUE")
	}
	return String(cell)
}
