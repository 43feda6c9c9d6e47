package cmd

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/kernelshap/kernelshap/shap"
)

// LoadBackgroundCSV reads a headerless CSV of background rows (one row
// per sample, one column per feature) into a shap.Matrix. Every field
// must parse as a finite float64; the first row encountered fixes the
// expected column count for every subsequent row.
func LoadBackgroundCSV(path string) (*shap.Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open background CSV: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read background CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("background CSV is empty")
	}

	cols := len(records[0])
	if cols == 0 {
		return nil, fmt.Errorf("background CSV row 1 has no columns")
	}

	m := shap.NewMatrix(len(records), cols)
	for i, record := range records {
		if len(record) != cols {
			return nil, fmt.Errorf("background CSV row %d: expected %d columns, got %d", i+1, cols, len(record))
		}
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("background CSV row %d, column %d: invalid float: %w", i+1, j+1, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("background CSV row %d, column %d: must be finite, got %v", i+1, j+1, v)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// ParseQueryRow parses a comma-separated list of floats into a query
// vector, validating it against the background's feature count.
func ParseQueryRow(raw string, d int) ([]float64, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	record, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	if len(record) != d {
		return nil, fmt.Errorf("query has %d values, background has %d features", len(record), d)
	}
	x := make([]float64, len(record))
	for j, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("query value %d: invalid float: %w", j+1, err)
		}
		x[j] = v
	}
	return x, nil
}
