package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pio "github.com/facetpager/facetpager/pkg/io"
	"github.com/facetpager/facetpager/pkg/pipeline"
)

// renderCommand creates the render command for generating paginated plots.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath string
		facetsStr  string
		formatsStr string
		output     string
		noCache    bool
		redisURL   string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [data.csv]",
		Short: "Split a faceted dataset into pages and render them",
		Long: `Split a faceted dataset into pages and render them.

The render command loads a CSV or columnar JSON file, splits the faceted
plot into as many pages as the grid requires, and writes one file per page
and format plus a manifest.json describing the page assignment.

A dataset with 7 facet levels on a 2x2 grid produces 2 pages of 4 panels
and a final page with the remaining 3. Each page carries a "Page i of N"
subtitle.

Plot settings can come from flags or from a TOML config file (--config);
flags win when both are given.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Data = args[0]
			opts.Facets = parseColumns(facetsStr)
			if configPath != "" {
				cfg, err := loadPlotConfig(configPath)
				if err != nil {
					return err
				}
				cfg.apply(&opts)
				if formatsStr == "" {
					formatsStr = cfg.Format
				}
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output, noCache, redisURL)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default: alongside the input file)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML plot configuration file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis:// URL for a shared artifact cache")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")

	// Plot flags
	cmd.Flags().StringVar(&opts.Title, "title", "", "plot title")
	cmd.Flags().StringVar(&opts.Aes.X, "x", "", "column mapped to the x axis")
	cmd.Flags().StringVar(&opts.Aes.Y, "y", "", "column mapped to the y axis")
	cmd.Flags().StringVar(&opts.Aes.Color, "color", "", "column mapped to point color")
	cmd.Flags().StringVar(&facetsStr, "facets", "", "facet column(s), comma-separated")
	cmd.Flags().IntVar(&opts.NRow, "nrow", 0, "panel rows per page (default 2)")
	cmd.Flags().IntVar(&opts.NCol, "ncol", 0, "panel columns per page (default 2)")
	cmd.Flags().StringVar(&opts.Scales, "scales", "", "facet scales: fixed (default), free, free_x, free_y")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default)")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "frame width in pixels (default 800)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "frame height in pixels (default 600)")

	return cmd
}

// runRender executes the pipeline and writes the rendered pages to disk.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool, redisURL string) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache, redisURL)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	ctx = withLogger(ctx, c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(opts.Data)))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if len(opts.Facets) == 0 {
		printWarning("No facet columns given; rendered the plot unchanged")
	}
	printSuccess("Render complete")
	return writeArtifacts(ctx, result, opts, output)
}

// writeArtifacts writes every rendered page plus the manifest describing the
// page assignment. File names derive from the input file: measurements.csv
// rendered to SVG across three pages becomes measurements_page1.svg through
// measurements_page3.svg plus measurements_manifest.json.
func writeArtifacts(ctx context.Context, result *pipeline.Result, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)

	dir := output
	if dir == "" {
		dir = filepath.Dir(opts.Data)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	base := strings.TrimSuffix(filepath.Base(opts.Data), filepath.Ext(opts.Data))

	m := pio.Manifest{
		Title:  opts.Title,
		Facets: opts.Facets,
		NRow:   opts.NRow,
		NCol:   opts.NCol,
		Scales: opts.Scales,
	}

	for _, pg := range result.Pages {
		mp := pio.ManifestPage{Index: pg.Index, Total: pg.Total, Rows: pg.Rows}
		for _, lvl := range pg.Levels {
			mp.Levels = append(mp.Levels, lvl.Label())
		}
		for _, format := range opts.Formats {
			data := result.Artifacts[pg.Index][format]
			path := artifactPath(dir, base, pg.Index, format)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			logger.Debugf("Wrote %s: %d bytes", path, len(data))
			mp.Files = append(mp.Files, path)
			printFile(path)
		}
		m.Pages = append(m.Pages, mp)
	}

	manifestPath := filepath.Join(dir, base+"_manifest.json")
	if err := pio.ExportManifest(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	printFile(manifestPath)
	printStats(result.Stats.RowCount, result.Stats.PageCount, result.CacheInfo.RenderHit)
	return nil
}

// artifactPath builds the output file name for one rendered page.
func artifactPath(dir, base string, page int, format string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_page%d.%s", base, page, format))
}
