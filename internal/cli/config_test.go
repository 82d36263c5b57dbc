package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/facetpager/facetpager/pkg/pipeline"
)

const testConfig = `
title = "Iris measurements"
x = "sepal_length"
y = "sepal_width"
facets = ["species"]
nrow = 3
ncol = 1
scales = "free_y"
format = "svg,json"
`

func writeConfigFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plot.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlotConfig(t *testing.T) {
	cfg, err := loadPlotConfig(writeConfigFixture(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Title != "Iris measurements" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.X != "sepal_length" || cfg.Y != "sepal_width" {
		t.Errorf("aes = %q/%q", cfg.X, cfg.Y)
	}
	if len(cfg.Facets) != 1 || cfg.Facets[0] != "species" {
		t.Errorf("facets = %v", cfg.Facets)
	}
	if cfg.NRow != 3 || cfg.NCol != 1 {
		t.Errorf("grid = %dx%d", cfg.NRow, cfg.NCol)
	}
	if cfg.Scales != "free_y" {
		t.Errorf("scales = %q", cfg.Scales)
	}
	if cfg.Format != "svg,json" {
		t.Errorf("format = %q", cfg.Format)
	}
}

func TestLoadPlotConfigUnknownKey(t *testing.T) {
	path := writeConfigFixture(t, "title = \"x\"\nncols = 2\n")
	if _, err := loadPlotConfig(path); err == nil {
		t.Error("unknown key should fail")
	}
}

func TestLoadPlotConfigMissingFile(t *testing.T) {
	if _, err := loadPlotConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestPlotConfigApply(t *testing.T) {
	cfg, err := loadPlotConfig(writeConfigFixture(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Options{}
	cfg.apply(&opts)

	if opts.Title != "Iris measurements" {
		t.Errorf("title = %q", opts.Title)
	}
	if opts.Aes.X != "sepal_length" {
		t.Errorf("x = %q", opts.Aes.X)
	}
	if opts.NRow != 3 || opts.NCol != 1 {
		t.Errorf("grid = %dx%d", opts.NRow, opts.NCol)
	}
	if opts.Scales != "free_y" {
		t.Errorf("scales = %q", opts.Scales)
	}
}

func TestPlotConfigApplyFlagsWin(t *testing.T) {
	cfg, err := loadPlotConfig(writeConfigFixture(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}

	// Values already set by flags are left alone.
	opts := pipeline.Options{
		Title:  "From flags",
		Facets: []string{"site"},
		NRow:   4,
	}
	cfg.apply(&opts)

	if opts.Title != "From flags" {
		t.Errorf("title = %q, flag value should win", opts.Title)
	}
	if len(opts.Facets) != 1 || opts.Facets[0] != "site" {
		t.Errorf("facets = %v, flag value should win", opts.Facets)
	}
	if opts.NRow != 4 {
		t.Errorf("nrow = %d, flag value should win", opts.NRow)
	}
	// Unset fields still come from the config.
	if opts.NCol != 1 {
		t.Errorf("ncol = %d, want config value 1", opts.NCol)
	}
}
