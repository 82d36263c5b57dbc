package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/facetpager/facetpager/pkg/dataset"
)

// ReadCSV decodes CSV data from r into a dataset.
//
// The first record is the header. Columns whose cells all parse as floats
// become numeric columns; everything else becomes a string column. An empty
// input (no header) and records with a different field count than the header
// are errors.
//
// The returned dataset is independent of r. ReadCSV does not close r.
func ReadCSV(r io.Reader) (*dataset.Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("decode: missing header record")
	}

	header := records[0]
	rows := records[1:]

	d := dataset.New()
	for col, name := range header {
		values := make([]string, len(rows))
		for i, rec := range rows {
			values[i] = rec[col]
		}
		if numbers, ok := parseNumbers(values); ok {
			err = d.AddNumberColumn(name, numbers)
		} else {
			err = d.AddStringColumn(name, values)
		}
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
	}
	return d, nil
}

// parseNumbers converts values to floats. A single unparsable, non-empty cell
// makes the whole column a string column; an all-empty column stays string.
func parseNumbers(values []string) ([]float64, bool) {
	if len(values) == 0 {
		return nil, false
	}
	numbers := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		numbers[i] = f
	}
	return numbers, true
}

// ImportCSV reads a CSV file at path and returns the decoded dataset.
//
// ImportCSV opens the file, decodes it using [ReadCSV], and closes the file.
// Errors wrap the underlying cause with the file path for context.
func ImportCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

type jsonTable struct {
	Columns []jsonColumn `json:"columns"`
}

type jsonColumn struct {
	Name   string            `json:"name"`
	Values []json.RawMessage `json:"values"`
}

// ReadJSON decodes a columnar JSON table from r into a dataset.
//
// The input must be an object with a "columns" array; each column has a
// "name" and a "values" array. A column is numeric when every value is a
// JSON number, string when every value is a JSON string; mixed columns are
// rejected. Column lengths must agree.
//
// The returned dataset is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dataset.Dataset, error) {
	var table jsonTable
	if err := json.NewDecoder(r).Decode(&table); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	d := dataset.New()
	for _, col := range table.Columns {
		if err := addJSONColumn(d, col); err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
	}
	return d, nil
}

func addJSONColumn(d *dataset.Dataset, col jsonColumn) error {
	numbers := make([]float64, len(col.Values))
	numeric := true
	for i, raw := range col.Values {
		if err := json.Unmarshal(raw, &numbers[i]); err != nil {
			numeric = false
			break
		}
	}
	if numeric && len(col.Values) > 0 {
		return d.AddNumberColumn(col.Name, numbers)
	}

	strings := make([]string, len(col.Values))
	for i, raw := range col.Values {
		if err := json.Unmarshal(raw, &strings[i]); err != nil {
			return fmt.Errorf("value %d: not a string or number", i)
		}
	}
	return d.AddStringColumn(col.Name, strings)
}

// ImportJSON reads a columnar JSON file at path and returns the decoded
// dataset. See [ReadJSON] for the format.
func ImportJSON(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
