package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/facetpager/facetpager/pkg/dataset"
)

// Manifest summarizes one paginated render.
type Manifest struct {
	Title  string         `json:"title,omitempty"`
	Facets []string       `json:"facets"`
	NRow   int            `json:"nrow"`
	NCol   int            `json:"ncol"`
	Scales string         `json:"scales"`
	Pages  []ManifestPage `json:"pages"`
}

// ManifestPage describes one rendered page.
type ManifestPage struct {
	Index  int      `json:"index"`
	Total  int      `json:"total"`
	Levels []string `json:"levels"`
	Rows   int      `json:"rows"`
	Files  []string `json:"files,omitempty"`
}

// WriteManifest encodes a render manifest as indented JSON and writes it to w.
func WriteManifest(m Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportManifest writes a render manifest to a JSON file at path.
// This is a convenience wrapper around [WriteManifest] for file-based output.
func ExportManifest(m Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteManifest(m, f)
}

type jsonTableOut struct {
	Columns []jsonColumnOut `json:"columns"`
}

type jsonColumnOut struct {
	Name   string `json:"name"`
	Values []any  `json:"values"`
}

// WriteDataset encodes a dataset in the columnar JSON format read by
// [ReadJSON]. Column order and value types are preserved, so the encoding is
// deterministic for a given dataset and safe to use as cache key material.
func WriteDataset(d *dataset.Dataset, w io.Writer) error {
	out := jsonTableOut{Columns: make([]jsonColumnOut, 0, d.NumColumns())}
	for _, name := range d.Columns() {
		ref, err := d.Column(name)
		if err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
		col := jsonColumnOut{Name: name, Values: make([]any, d.NumRows())}
		for i := 0; i < d.NumRows(); i++ {
			if ref.IsNumeric() {
				col.Values[i] = ref.Number(i)
			} else {
				col.Values[i] = ref.Value(i)
			}
		}
		out.Columns = append(out.Columns, col)
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalDataset is a convenience wrapper around [WriteDataset] returning the
// encoded bytes.
func MarshalDataset(d *dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDataset(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
