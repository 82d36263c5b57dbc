package styles

import "bytes"

// Style defines the visual appearance for facet grid rendering.
// Implementations control how panels, strips, points, axes, and the title
// block are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderPanel writes the SVG for a panel's background frame.
	RenderPanel(buf *bytes.Buffer, p PanelBox)
	// RenderStrip writes the SVG for a panel's facet label strip.
	RenderStrip(buf *bytes.Buffer, s Strip)
	// RenderPoint writes the SVG for one data point.
	RenderPoint(buf *bytes.Buffer, pt Point)
	// RenderAxes writes the SVG for a panel's tick labels.
	RenderAxes(buf *bytes.Buffer, a Axes)
	// RenderTitle writes the SVG for the page title block.
	RenderTitle(buf *bytes.Buffer, t TitleBlock)
}

// PanelBox is the drawing area of one facet panel.
type PanelBox struct {
	X, Y, W, H float64
}

// Strip is a facet label strip above a panel.
type Strip struct {
	Label      string // Facet level label, already joined for multi-column facets
	X, Y, W, H float64
}

// Point is one positioned data mark.
type Point struct {
	X, Y  float64
	R     float64 // Radius; 0 means the style's default
	Color string  // Fill color; "" means the style's default
}

// Tick is one axis tick: a frame position and its label.
type Tick struct {
	Pos   float64
	Label string
}

// Axes holds the tick labels for one panel. X ticks sit below the panel, Y
// ticks sit left of it.
type Axes struct {
	PanelX, PanelY float64 // Panel drawing area origin
	PanelW, PanelH float64
	XTicks         []Tick
	YTicks         []Tick
}

// TitleBlock is the page heading: the plot title plus the page subtitle.
type TitleBlock struct {
	Title    string
	Subtitle string // "Page i of N" on multi-page sequences
	CX       float64
	Y        float64 // Baseline of the title line
	H        float64
}
