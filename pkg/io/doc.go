// Package io provides dataset import and page manifest export.
//
// # Overview
//
// This package reads tabular data into a [dataset.Dataset] and writes a
// machine-readable summary of a paginated render. It supports:
//
//   - CSV import with numeric column inference
//   - Columnar JSON import with explicit value types
//   - JSON page manifest export for external tools
//
// # CSV Format
//
// The first record is the header; every following record is one row. A
// column whose cells all parse as floating point numbers becomes a numeric
// column, anything else stays a string column:
//
//	species,sepal_length,sepal_width
//	setosa,5.1,3.5
//	setosa,4.9,3.0
//
// # JSON Format
//
// The columnar JSON format carries the column order and value types
// explicitly:
//
//	{
//	  "columns": [
//	    {"name": "species", "values": ["setosa", "setosa"]},
//	    {"name": "sepal_length", "values": [5.1, 4.9]}
//	  ]
//	}
//
// A column is numeric when every value is a JSON number; mixed columns are
// rejected.
//
// # Import
//
// Use [ImportCSV] or [ImportJSON] to read from a file path, or [ReadCSV] and
// [ReadJSON] to read from any io.Reader:
//
//	d, err := io.ImportCSV("iris.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Manifest Export
//
// Use [ExportManifest] to write a render summary next to the page artifacts,
// or [WriteManifest] to write to any io.Writer. The manifest lists each
// page's facet levels, row count, and output files so downstream tools can
// pick up a render without re-running it.
package io
