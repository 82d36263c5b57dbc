package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/facetpager/facetpager/pkg/pipeline"
)

// inspectCommand creates the inspect command for previewing page assignment.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		configPath  string
		facetsStr   string
		noCache     bool
		redisURL    string
		interactive bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "inspect [data.csv]",
		Short: "Show which facet levels land on which page",
		Long: `Show which facet levels land on which page, without rendering.

The inspect command loads the dataset, computes the page split for the
requested grid, and prints one line per page with its facet levels and row
count. Use it to pick a grid shape before committing to a render.

The page assignment is cached under the dataset's content hash, so repeated
inspections of an unchanged file are instant.`,
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
			}
			return c.runInspect(cmd.Context(), opts, noCache, redisURL, interactive)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML plot configuration file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis:// URL for a shared cache")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse pages in an interactive list")

	cmd.Flags().StringVar(&opts.Title, "title", "", "plot title")
	cmd.Flags().StringVar(&facetsStr, "facets", "", "facet column(s), comma-separated")
	cmd.Flags().IntVar(&opts.NRow, "nrow", 0, "panel rows per page (default 2)")
	cmd.Flags().IntVar(&opts.NCol, "ncol", 0, "panel columns per page (default 2)")
	cmd.Flags().StringVar(&opts.Scales, "scales", "", "facet scales: fixed (default), free, free_x, free_y")

	return cmd
}

// runInspect computes the page assignment and displays it.
func (c *CLI) runInspect(ctx context.Context, opts pipeline.Options, noCache bool, redisURL string, interactive bool) error {
	runner, err := c.newRunner(ctx, noCache, redisURL)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	m, cacheHit, err := runner.Inspect(ctx, opts)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	levels := 0
	for _, pg := range m.Pages {
		levels += len(pg.Levels)
	}
	prog.done(fmt.Sprintf("Assigned %d facet levels to %d pages", levels, len(m.Pages)))

	if interactive {
		if _, err := tea.NewProgram(NewPageListModel(*m)).Run(); err != nil {
			return fmt.Errorf("interactive view: %w", err)
		}
		return nil
	}

	printKeyValue("Facets", strings.Join(m.Facets, ", "))
	printKeyValue("Grid", fmt.Sprintf("%dx%d", m.NRow, m.NCol))
	printKeyValue("Scales", m.Scales)
	printNewline()
	for _, pg := range m.Pages {
		printInfo("Page %d of %d", pg.Index, pg.Total)
		printDetail("levels: %s", strings.Join(pg.Levels, ", "))
		printDetail("rows:   %d", pg.Rows)
	}
	totalRows := 0
	for _, pg := range m.Pages {
		totalRows += pg.Rows
	}
	printNewline()
	printStats(totalRows, len(m.Pages), cacheHit)
	printNextStep("Render", fmt.Sprintf("%s render %s --facets %s --nrow %d --ncol %d",
		appName, opts.Data, strings.Join(m.Facets, ","), m.NRow, m.NCol))

	return nil
}
