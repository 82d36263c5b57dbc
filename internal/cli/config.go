package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/facetpager/facetpager/pkg/pipeline"
)

// plotConfig mirrors the pipeline options that make sense in a config file.
// A config file lets a dataset carry its plot definition alongside the data,
// so the render command only needs the file path:
//
//	title = "Iris measurements"
//	x = "sepal_length"
//	y = "sepal_width"
//	facets = ["species"]
//	nrow = 2
//	ncol = 2
//	scales = "fixed"
type plotConfig struct {
	Title  string   `toml:"title"`
	X      string   `toml:"x"`
	Y      string   `toml:"y"`
	Color  string   `toml:"color"`
	Facets []string `toml:"facets"`
	NRow   int      `toml:"nrow"`
	NCol   int      `toml:"ncol"`
	Scales string   `toml:"scales"`
	Style  string   `toml:"style"`
	Format string   `toml:"format"`
	Width  float64  `toml:"width"`
	Height float64  `toml:"height"`
}

// loadPlotConfig reads a TOML plot configuration file.
// Unknown keys are an error so typos surface instead of being ignored.
func loadPlotConfig(path string) (*plotConfig, error) {
	var cfg plotConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

// apply copies config values into opts for every option the flags left unset.
// Flags win over the config file; pipeline defaults fill whatever remains.
func (cfg *plotConfig) apply(opts *pipeline.Options) {
	if opts.Title == "" {
		opts.Title = cfg.Title
	}
	if opts.Aes.X == "" {
		opts.Aes.X = cfg.X
	}
	if opts.Aes.Y == "" {
		opts.Aes.Y = cfg.Y
	}
	if opts.Aes.Color == "" {
		opts.Aes.Color = cfg.Color
	}
	if len(opts.Facets) == 0 {
		opts.Facets = cfg.Facets
	}
	if opts.NRow == 0 {
		opts.NRow = cfg.NRow
	}
	if opts.NCol == 0 {
		opts.NCol = cfg.NCol
	}
	if opts.Scales == "" {
		opts.Scales = cfg.Scales
	}
	if opts.Style == "" {
		opts.Style = cfg.Style
	}
	if opts.Width == 0 {
		opts.Width = cfg.Width
	}
	if opts.Height == 0 {
		opts.Height = cfg.Height
	}
}
