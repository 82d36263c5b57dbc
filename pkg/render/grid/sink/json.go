package sink

import (
	"encoding/json"

	"github.com/facetpager/facetpager/pkg/plot"
	"github.com/facetpager/facetpager/pkg/render/grid"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	plot  *plot.Spec
	style string
}

// WithJSONPlot attaches the page plot so the JSON carries the page heading,
// aesthetic mapping, and facet directive alongside the geometry.
func WithJSONPlot(p plot.Spec) JSONOption { return func(r *jsonRenderer) { r.plot = &p } }

// WithJSONStyle records the style name (e.g., "simple") in the JSON output
// for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	MarginX  float64     `json:"margin_x"`
	MarginY  float64     `json:"margin_y"`
	NRow     int         `json:"nrow"`
	NCol     int         `json:"ncol"`
	Style    string      `json:"style,omitempty"`
	Title    string      `json:"title,omitempty"`
	Subtitle string      `json:"subtitle,omitempty"`
	Facets   []string    `json:"facets,omitempty"`
	Scales   string      `json:"scales,omitempty"`
	Aes      *jsonAes    `json:"aes,omitempty"`
	Panels   []jsonPanel `json:"panels"`
}

type jsonAes struct {
	X     string `json:"x,omitempty"`
	Y     string `json:"y,omitempty"`
	Color string `json:"color,omitempty"`
}

type jsonPanel struct {
	Level  string  `json:"level"`
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON exports the page layout as pretty-printed JSON.
func RenderJSON(l grid.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:   l.FrameWidth,
		Height:  l.FrameHeight,
		MarginX: l.MarginX,
		MarginY: l.MarginY,
		NRow:    l.NRow,
		NCol:    l.NCol,
		Style:   r.style,
		Panels:  make([]jsonPanel, 0, len(l.Panels)),
	}
	for _, pn := range l.Panels {
		out.Panels = append(out.Panels, jsonPanel{
			Level:  pn.Key.Label(),
			Row:    pn.Row,
			Col:    pn.Col,
			X:      pn.X,
			Y:      pn.Y,
			Width:  pn.W,
			Height: pn.H,
		})
	}

	if r.plot != nil {
		out.Title = r.plot.Title()
		out.Subtitle = r.plot.Subtitle()
		if a := r.plot.Aes(); a != (plot.Aes{}) {
			out.Aes = &jsonAes{X: a.X, Y: a.Y, Color: a.Color}
		}
		if f, ok := r.plot.Facet(); ok {
			out.Facets = f.Columns
			out.Scales = f.Scales.String()
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
