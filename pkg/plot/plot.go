// Package plot defines the plot specification consumed by the paginator and
// the renderer.
//
// A Spec is an immutable value: every augmentation (aesthetics, title, scales,
// coordinate limits, facet directive) returns a new Spec and leaves the
// receiver untouched. This avoids the aliasing problems of accumulating
// directives onto a shared mutable plot object - two Specs derived from the
// same base never observe each other's changes.
//
// The Spec references its dataset; it does not own or copy it. Rebinding a
// Spec to a per-page subset is done with WithData.
package plot

import (
	"github.com/facetpager/facetpager/pkg/dataset"
)

// Aes maps aesthetic channels to dataset column names.
// X and Y drive point positions; Color optionally drives point coloring by
// a categorical column. Empty strings mean the channel is unmapped.
type Aes struct {
	X     string
	Y     string
	Color string
}

// FacetSpec is the facet-layout directive: which columns split the data into
// panels, the page grid shape, and the panel scale mode. It governs
// intra-page panel arrangement.
type FacetSpec struct {
	Columns []string
	NRow    int
	NCol    int
	Scales  ScaleMode
}

// Spec is an immutable plot specification bound to a dataset.
// The zero value is not usable - use New.
type Spec struct {
	data      *dataset.Dataset
	aes       Aes
	title     string
	subtitle  string
	scaleMode ScaleMode

	// Explicit per-axis scales set by the caller. When present, the
	// paginator must not override them with full-dataset limits.
	xScale *Limits
	yScale *Limits

	// Coordinate limits. Set by the paginator to lock fixed axes across
	// pages, or by the caller directly.
	xLim *Limits
	yLim *Limits

	facet *FacetSpec
}

// New creates a plot spec bound to the given dataset.
func New(data *dataset.Dataset) Spec {
	return Spec{data: data}
}

// WithData rebinds the spec to a different dataset, typically a per-page
// subset. All other directives carry over.
func (s Spec) WithData(data *dataset.Dataset) Spec {
	s.data = data
	return s
}

// WithAes sets the aesthetic mappings.
func (s Spec) WithAes(a Aes) Spec {
	s.aes = a
	return s
}

// WithTitle sets the plot title.
func (s Spec) WithTitle(title string) Spec {
	s.title = title
	return s
}

// WithSubtitle sets the plot subtitle, rendered in italic below the title.
func (s Spec) WithSubtitle(subtitle string) Spec {
	s.subtitle = subtitle
	return s
}

// WithScaleMode sets the panel scale mode.
func (s Spec) WithScaleMode(m ScaleMode) Spec {
	s.scaleMode = m
	return s
}

// WithXScale sets an explicit x-axis scale. The paginator treats an explicit
// scale as authoritative and will not lock the axis to dataset bounds.
func (s Spec) WithXScale(lim Limits) Spec {
	s.xScale = &lim
	return s
}

// WithYScale sets an explicit y-axis scale.
func (s Spec) WithYScale(lim Limits) Spec {
	s.yScale = &lim
	return s
}

// WithXLim sets shared x coordinate limits.
func (s Spec) WithXLim(lim Limits) Spec {
	s.xLim = &lim
	return s
}

// WithYLim sets shared y coordinate limits.
func (s Spec) WithYLim(lim Limits) Spec {
	s.yLim = &lim
	return s
}

// WithFacet applies the facet-layout directive.
func (s Spec) WithFacet(f FacetSpec) Spec {
	cols := make([]string, len(f.Columns))
	copy(cols, f.Columns)
	f.Columns = cols
	s.facet = &f
	return s
}

// Data returns the bound dataset. Nil when the spec was built without one.
func (s Spec) Data() *dataset.Dataset { return s.data }

// Aes returns the aesthetic mappings.
func (s Spec) Aes() Aes { return s.aes }

// Title returns the plot title.
func (s Spec) Title() string { return s.title }

// Subtitle returns the plot subtitle.
func (s Spec) Subtitle() string { return s.subtitle }

// ScaleMode returns the panel scale mode.
func (s Spec) ScaleMode() ScaleMode { return s.scaleMode }

// XScale returns the explicit x scale, if one was set.
func (s Spec) XScale() (Limits, bool) {
	if s.xScale == nil {
		return Limits{}, false
	}
	return *s.xScale, true
}

// YScale returns the explicit y scale, if one was set.
func (s Spec) YScale() (Limits, bool) {
	if s.yScale == nil {
		return Limits{}, false
	}
	return *s.yScale, true
}

// XLim returns the shared x coordinate limits, if set.
func (s Spec) XLim() (Limits, bool) {
	if s.xLim == nil {
		return Limits{}, false
	}
	return *s.xLim, true
}

// YLim returns the shared y coordinate limits, if set.
func (s Spec) YLim() (Limits, bool) {
	if s.yLim == nil {
		return Limits{}, false
	}
	return *s.yLim, true
}

// Facet returns the facet directive, if one was applied.
func (s Spec) Facet() (FacetSpec, bool) {
	if s.facet == nil {
		return FacetSpec{}, false
	}
	f := *s.facet
	cols := make([]string, len(f.Columns))
	copy(cols, f.Columns)
	f.Columns = cols
	return f, true
}
