package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const irisCSV = `species,sepal_length,notes
setosa,5.1,first
setosa,4.9,
virginica,6.3,checked
`

func TestReadCSV(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(irisCSV))
	if err != nil {
		t.Fatal(err)
	}

	if d.NumRows() != 3 {
		t.Fatalf("rows = %d, want 3", d.NumRows())
	}
	want := []string{"species", "sepal_length", "notes"}
	got := d.Columns()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %v, want %v", got, want)
		}
	}

	num, err := d.Column("sepal_length")
	if err != nil {
		t.Fatal(err)
	}
	if !num.IsNumeric() {
		t.Error("sepal_length should be inferred numeric")
	}
	if num.Number(0) != 5.1 {
		t.Errorf("sepal_length[0] = %v", num.Number(0))
	}

	str, err := d.Column("species")
	if err != nil {
		t.Fatal(err)
	}
	if str.IsNumeric() {
		t.Error("species should stay a string column")
	}
	if str.Value(2) != "virginica" {
		t.Errorf("species[2] = %q", str.Value(2))
	}

	// A column with an empty cell cannot be numeric.
	if notes, _ := d.Column("notes"); notes.IsNumeric() {
		t.Error("notes should stay a string column")
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "ragged record", input: "a,b\n1\n"},
		{name: "duplicate header", input: "a,a\n1,2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestImportCSVMissingFile(t *testing.T) {
	_, err := ImportCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "absent.csv") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestReadJSON(t *testing.T) {
	input := `{
	  "columns": [
	    {"name": "grp", "values": ["a", "b"]},
	    {"name": "x", "values": [1, 2.5]}
	  ]
	}`
	d, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if d.NumRows() != 2 || d.NumColumns() != 2 {
		t.Fatalf("shape = %dx%d", d.NumRows(), d.NumColumns())
	}
	x, err := d.Column("x")
	if err != nil {
		t.Fatal(err)
	}
	if !x.IsNumeric() || x.Number(1) != 2.5 {
		t.Errorf("x = numeric %v, x[1] = %v", x.IsNumeric(), x.Number(1))
	}
}

func TestReadJSONMixedColumn(t *testing.T) {
	input := `{"columns": [{"name": "x", "values": [1, "two"]}]}`
	if _, err := ReadJSON(strings.NewReader(input)); err == nil {
		t.Error("mixed column should be rejected")
	}
}

func TestReadJSONLengthMismatch(t *testing.T) {
	input := `{"columns": [
	  {"name": "a", "values": ["x", "y"]},
	  {"name": "b", "values": [1]}
	]}`
	_, err := ReadJSON(strings.NewReader(input))
	if err == nil {
		t.Error("length mismatch should be rejected")
	}
}

func TestDatasetRoundTrip(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(irisCSV))
	if err != nil {
		t.Fatal(err)
	}

	data, err := MarshalDataset(d)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if back.NumRows() != d.NumRows() || back.NumColumns() != d.NumColumns() {
		t.Fatalf("shape = %dx%d, want %dx%d", back.NumRows(), back.NumColumns(), d.NumRows(), d.NumColumns())
	}
	sl, err := back.Column("sepal_length")
	if err != nil {
		t.Fatal(err)
	}
	if !sl.IsNumeric() || sl.Number(2) != 6.3 {
		t.Errorf("sepal_length survived as numeric=%v, [2]=%v", sl.IsNumeric(), sl.Number(2))
	}

	// Deterministic encoding
	again, err := MarshalDataset(d)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Error("encoding should be deterministic")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	m := Manifest{
		Title:  "Survey",
		Facets: []string{"region"},
		NRow:   2,
		NCol:   2,
		Scales: "fixed",
		Pages: []ManifestPage{
			{Index: 1, Total: 2, Levels: []string{"north", "south"}, Rows: 40, Files: []string{"page-01.svg"}},
			{Index: 2, Total: 2, Levels: []string{"west"}, Rows: 18, Files: []string{"page-02.svg"}},
		},
	}

	var buf bytes.Buffer
	if err := WriteManifest(m, &buf); err != nil {
		t.Fatal(err)
	}

	var decoded Manifest
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Title != m.Title || len(decoded.Pages) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Pages[1].Levels[0] != "west" {
		t.Errorf("page 2 levels = %v", decoded.Pages[1].Levels)
	}
}

func TestExportManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	m := Manifest{Facets: []string{"grp"}, NRow: 1, NCol: 1, Scales: "free"}
	if err := ExportManifest(m, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Manifest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Scales != "free" {
		t.Errorf("scales = %q", decoded.Scales)
	}
}
