// Package pipeline provides the core load → paginate → render pipeline.
//
// This package implements the complete flow from a tabular data file to a
// directory of rendered page artifacts. By centralizing this logic, the CLI
// and any embedding program get identical behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a CSV or columnar JSON file into a dataset
//  2. Paginate: Split the faceted plot into "Page i of N" pages
//  3. Render: Generate each page in the requested formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Data:    "iris.csv",
//	    Aes:     pipeline.Aes{X: "sepal_length", Y: "sepal_width"},
//	    Facets:  []string{"species"},
//	    NRow:    2,
//	    NCol:    2,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[1]["svg"]
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/facetpager/facetpager/pkg/cache"
	"github.com/facetpager/facetpager/pkg/dataset"
	"github.com/facetpager/facetpager/pkg/paginate"
	"github.com/facetpager/facetpager/pkg/plot"
	"github.com/facetpager/facetpager/pkg/render/grid"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and embedders
// =============================================================================

const (
	// DefaultNRow is the default number of panel rows per page.
	DefaultNRow = 2

	// DefaultNCol is the default number of panel columns per page.
	DefaultNCol = 2

	// DefaultScales is the default facet scale mode.
	DefaultScales = "fixed"

	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = grid.DefaultWidth

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = grid.DefaultHeight

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Data format constants for input files.
const (
	DataFormatCSV  = "csv"
	DataFormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	"simple": true,
}

// ValidDataFormats is the set of supported input data formats.
var ValidDataFormats = map[string]bool{
	DataFormatCSV:  true,
	DataFormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Aes mirrors the plot aesthetic mapping with JSON tags for serialization.
type Aes struct {
	X     string `json:"x,omitempty"`
	Y     string `json:"y,omitempty"`
	Color string `json:"color,omitempty"`
}

// Options contains all configuration for the pagination pipeline.
// This struct supports JSON serialization for config files and embedders.
type Options struct {
	// Load options
	Data       string `json:"data,omitempty"`        // Input file path
	DataFormat string `json:"data_format,omitempty"` // "csv" or "json"; inferred from extension when empty
	Refresh    bool   `json:"refresh,omitempty"`     // Bypass the cache

	// Plot options
	Title  string   `json:"title,omitempty"`
	Aes    Aes      `json:"aes,omitempty"`
	Facets []string `json:"facets,omitempty"`
	NRow   int      `json:"nrow,omitempty"`
	NCol   int      `json:"ncol,omitempty"`
	Scales string   `json:"scales,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger      `json:"-"`
	Dataset *dataset.Dataset `json:"-"` // Pre-loaded dataset; skips the load stage

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// Dataset is the loaded dataset.
	Dataset *dataset.Dataset

	// DatasetHash is the content hash of the dataset.
	DatasetHash string

	// Pages is the full ordered page sequence.
	Pages []paginate.Page

	// Artifacts contains rendered outputs keyed by page index, then format.
	Artifacts map[int]map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowCount     int
	PageCount    int
	LoadTime     time.Duration
	PaginateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for the pipeline's cacheable stages.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that an output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all output formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be: simple)", style)
	}
	return nil
}

// ValidateDataFormat checks that an input data format is valid.
func ValidateDataFormat(format string) error {
	if !ValidDataFormats[format] {
		return fmt.Errorf("invalid data format: %q (must be one of: csv, json)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForPaginate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.Dataset == nil && o.Data == "" {
		return fmt.Errorf("data path is required")
	}
	if o.Dataset == nil {
		if o.DataFormat == "" {
			o.DataFormat = inferDataFormat(o.Data)
		}
		if err := ValidateDataFormat(o.DataFormat); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// ValidateForPaginate applies grid defaults and validates the scale mode.
// Grid shape errors themselves surface from the paginate stage.
func (o *Options) ValidateForPaginate() error {
	if o.NRow == 0 {
		o.NRow = DefaultNRow
	}
	if o.NCol == 0 {
		o.NCol = DefaultNCol
	}
	if o.Scales == "" {
		o.Scales = DefaultScales
	}
	o.setLogger()
	_, err := plot.ParseScaleMode(o.Scales)
	return err
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	o.setLogger()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ScaleMode returns the parsed scale mode. Call after validation.
func (o *Options) ScaleMode() plot.ScaleMode {
	m, err := plot.ParseScaleMode(o.Scales)
	if err != nil {
		return plot.ScaleFixed
	}
	return m
}

// PageKeyOpts returns cache key options for the pagination stage.
func (o *Options) PageKeyOpts() cache.PageKeyOpts {
	return cache.PageKeyOpts{
		Facets: o.Facets,
		NRow:   o.NRow,
		NCol:   o.NCol,
		Scales: o.Scales,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered page artifact.
func (o *Options) ArtifactKeyOpts(page int, format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Page:   page,
		Format: format,
		Style:  o.Style,
		Width:  o.Width,
		Height: o.Height,
	}
}

// inferDataFormat maps a file extension to a data format name.
func inferDataFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return DataFormatCSV
	case ".json":
		return DataFormatJSON
	default:
		return ""
	}
}
