package plot

import (
	"github.com/facetpager/facetpager/pkg/errors"
)

// ScaleMode controls whether axis ranges are shared across facet panels
// (and, after pagination, across pages).
type ScaleMode int

const (
	// ScaleFixed shares both axis ranges across all panels.
	ScaleFixed ScaleMode = iota
	// ScaleFree gives every panel its own ranges on both axes.
	ScaleFree
	// ScaleFreeX frees the x axis; y remains shared.
	ScaleFreeX
	// ScaleFreeY frees the y axis; x remains shared.
	ScaleFreeY
)

// scaleModeNames maps the recognized call-surface spellings to modes.
var scaleModeNames = map[string]ScaleMode{
	"fixed":  ScaleFixed,
	"free":   ScaleFree,
	"free_x": ScaleFreeX,
	"free_y": ScaleFreeY,
}

// ParseScaleMode parses a scale mode string. Recognized values are
// "fixed", "free", "free_x", and "free_y". Anything else fails with
// INVALID_SCALE_MODE rather than silently defaulting.
func ParseScaleMode(s string) (ScaleMode, error) {
	if m, ok := scaleModeNames[s]; ok {
		return m, nil
	}
	return ScaleFixed, errors.New(errors.ErrCodeInvalidScaleMode,
		"invalid scales: %q (must be one of: fixed, free, free_x, free_y)", s)
}

// String returns the call-surface spelling of the mode.
func (m ScaleMode) String() string {
	switch m {
	case ScaleFree:
		return "free"
	case ScaleFreeX:
		return "free_x"
	case ScaleFreeY:
		return "free_y"
	default:
		return "fixed"
	}
}

// FreesX reports whether the mode gives panels independent x ranges.
func (m ScaleMode) FreesX() bool { return m == ScaleFree || m == ScaleFreeX }

// FreesY reports whether the mode gives panels independent y ranges.
func (m ScaleMode) FreesY() bool { return m == ScaleFree || m == ScaleFreeY }

// Limits is an inclusive axis range.
type Limits struct {
	Min, Max float64
}
