// Package grid computes panel geometry for one page of a faceted plot.
//
// A page frame is divided into an nrow x ncol grid of panels, filled
// row-major in facet level order. Each panel reserves a strip at its top for
// the facet label; the frame reserves a title block at the top when the plot
// carries a title. All coordinates are in user units (pixels in SVG) with the
// origin at the top-left, y increasing downward.
package grid

import (
	"github.com/facetpager/facetpager/pkg/errors"
	"github.com/facetpager/facetpager/pkg/facet"
	"github.com/facetpager/facetpager/pkg/plot"
)

// Default frame geometry, shared with the pipeline defaults.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0

	defaultMarginX     = 32.0
	defaultMarginY     = 24.0
	defaultGutter      = 14.0
	defaultStripHeight = 18.0
	defaultTitleHeight = 46.0
	defaultAxisGutterX = 30.0 // left gutter inside each panel for y tick labels
	defaultAxisGutterY = 18.0 // bottom gutter inside each panel for x tick labels
)

// Panel is one facet panel's drawing area within the page frame.
type Panel struct {
	Key      facet.Key
	Row, Col int // 0-based cell position, row-major fill

	// Full cell rect, including the strip and axis gutters.
	X, Y, W, H float64
}

// StripRect returns the facet label strip at the top of the panel.
func (p Panel) StripRect() (x, y, w, h float64) {
	return p.X, p.Y, p.W, defaultStripHeight
}

// PlotRect returns the inner data-drawing area: the cell minus the strip and
// the axis gutters.
func (p Panel) PlotRect() (x, y, w, h float64) {
	x = p.X + defaultAxisGutterX
	y = p.Y + defaultStripHeight
	w = p.W - defaultAxisGutterX
	h = p.H - defaultStripHeight - defaultAxisGutterY
	return x, y, w, h
}

// Layout positions the panels of one page.
type Layout struct {
	FrameWidth  float64
	FrameHeight float64
	MarginX     float64
	MarginY     float64
	TitleHeight float64 // 0 when the plot has no title block
	NRow, NCol  int
	Panels      []Panel
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	width, height float64
}

// WithFrameSize overrides the default 800x600 frame.
func WithFrameSize(width, height float64) Option {
	return func(b *builder) {
		if width > 0 {
			b.width = width
		}
		if height > 0 {
			b.height = height
		}
	}
}

// Build computes the panel layout for a page plot. The plot must carry a
// facet directive; levels are read from the page's bound dataset and fill the
// grid row-major in first-appearance order.
func Build(p plot.Spec, opts ...Option) (Layout, error) {
	b := builder{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&b)
	}

	f, ok := p.Facet()
	if !ok {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "plot has no facet directive")
	}
	if p.Data() == nil {
		return Layout{}, errors.New(errors.ErrCodeMissingArgument, "plot is not bound to a dataset")
	}
	if err := errors.ValidateGridShape(f.NRow, f.NCol); err != nil {
		return Layout{}, err
	}

	keyer, err := facet.NewKeyer(p.Data(), f.Columns)
	if err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeUnknownFacetColumn, err, "resolve facet columns")
	}
	levels := facet.Levels(keyer, p.Data().NumRows())

	l := Layout{
		FrameWidth:  b.width,
		FrameHeight: b.height,
		MarginX:     defaultMarginX,
		MarginY:     defaultMarginY,
		NRow:        f.NRow,
		NCol:        f.NCol,
	}
	if p.Title() != "" || p.Subtitle() != "" {
		l.TitleHeight = defaultTitleHeight
	}

	innerW := b.width - 2*l.MarginX
	innerH := b.height - 2*l.MarginY - l.TitleHeight
	cellW := (innerW - float64(f.NCol-1)*defaultGutter) / float64(f.NCol)
	cellH := (innerH - float64(f.NRow-1)*defaultGutter) / float64(f.NRow)

	l.Panels = make([]Panel, 0, len(levels))
	for i, key := range levels {
		if i >= f.NRow*f.NCol {
			// More levels than cells means the plot was not paginated;
			// overflow panels are dropped rather than drawn off-frame.
			break
		}
		row, col := i/f.NCol, i%f.NCol
		l.Panels = append(l.Panels, Panel{
			Key: key,
			Row: row,
			Col: col,
			X:   l.MarginX + float64(col)*(cellW+defaultGutter),
			Y:   l.MarginY + l.TitleHeight + float64(row)*(cellH+defaultGutter),
			W:   cellW,
			H:   cellH,
		})
	}
	return l, nil
}
