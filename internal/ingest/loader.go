// Package ingest loads raw housing records from CSV datasets.
// Records stay keyed by source column name; field mapping into houses
// happens in the engine.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
)

// RequiredColumns are the source fields the simulation needs from a
// housing dataset.
var RequiredColumns = []string{"Id", "SalePrice", "GrLivArea", "BedroomAbvGr", "YearBuilt"}

// LoadCSV reads a CSV file into one record per row, keyed by header column.
// An unreadable or empty file is an error.
func LoadCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// ValidateColumns checks that every required column is present in the
// records. Only the first record is inspected — CSV rows share a header.
func ValidateColumns(records []map[string]string, required []string) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to validate")
	}
	for _, col := range required {
		if _, ok := records[0][col]; !ok {
			return fmt.Errorf("dataset missing required column %q", col)
		}
	}
	return nil
}
