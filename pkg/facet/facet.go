// Package facet buckets dataset rows into panels and panels into pages.
//
// A Key identifies one facet panel: the tuple of facet column values for a
// row. Distinct keys are ordered by first appearance in the dataset - that
// order is the canonical level order for pagination, documented here rather
// than inherited from any library internal, so page membership is
// deterministic.
package facet

import (
	"strings"

	"github.com/facetpager/facetpager/pkg/dataset"
)

// keySep separates the column values inside a Key. The unit separator keeps
// composite keys unambiguous for any printable column values.
const keySep = "\x1f"

// Key identifies a facet panel: the joined tuple of facet column values.
type Key string

// MakeKey builds a Key from column values in facet-column order.
func MakeKey(values []string) Key {
	return Key(strings.Join(values, keySep))
}

// Values splits the key back into its column values.
func (k Key) Values() []string {
	return strings.Split(string(k), keySep)
}

// Label returns a human-readable form of the key for panel strips and
// inspection output, e.g. "6, manual".
func (k Key) Label() string {
	return strings.Join(k.Values(), ", ")
}

// Keyer computes the Key for each dataset row. The facet columns are resolved
// to typed accessors once at construction; Key reads by row index only.
type Keyer struct {
	refs []dataset.ColumnRef
}

// NewKeyer resolves the facet columns against the dataset. It returns
// dataset.ErrUnknownColumn when any column does not exist; callers that need
// the full list of missing columns should check existence first.
func NewKeyer(d *dataset.Dataset, columns []string) (Keyer, error) {
	refs := make([]dataset.ColumnRef, len(columns))
	for i, name := range columns {
		ref, err := d.Column(name)
		if err != nil {
			return Keyer{}, err
		}
		refs[i] = ref
	}
	return Keyer{refs: refs}, nil
}

// Key returns the facet key for row i.
func (k Keyer) Key(i int) Key {
	values := make([]string, len(k.refs))
	for j, ref := range k.refs {
		values[j] = ref.Value(i)
	}
	return MakeKey(values)
}

// Levels returns the distinct facet keys over rows [0, n) in first-appearance
// order.
func Levels(k Keyer, n int) []Key {
	seen := make(map[Key]struct{})
	var levels []Key
	for i := 0; i < n; i++ {
		key := k.Key(i)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		levels = append(levels, key)
	}
	return levels
}

// NumPages returns ceil(levels / perPage). Zero levels means zero pages.
func NumPages(levels, perPage int) int {
	if levels <= 0 || perPage <= 0 {
		return 0
	}
	pages := levels / perPage
	if levels%perPage > 0 {
		pages++
	}
	return pages
}

// Assignment maps every facet level to a 1-based page index. Levels are
// bucketed into consecutive groups of perPage in level order, so only the
// last page can hold fewer than perPage panels.
type Assignment struct {
	levels  []Key
	perPage int
	pages   map[Key]int
}

// Assign buckets levels into pages of at most perPage panels each.
func Assign(levels []Key, perPage int) Assignment {
	pages := make(map[Key]int, len(levels))
	for i, key := range levels {
		pages[key] = 1 + i/perPage
	}
	return Assignment{levels: levels, perPage: perPage, pages: pages}
}

// NumPages returns the total page count.
func (a Assignment) NumPages() int {
	return NumPages(len(a.levels), a.perPage)
}

// NumLevels returns the total number of facet levels.
func (a Assignment) NumLevels() int { return len(a.levels) }

// PageOf returns the 1-based page index for a facet key, or 0 when the key
// was not among the assigned levels.
func (a Assignment) PageOf(key Key) int {
	return a.pages[key]
}

// LevelsForPage returns the facet keys shown on page i (1-based), in level
// order. It returns nil for out-of-range pages.
func (a Assignment) LevelsForPage(i int) []Key {
	if i < 1 || i > a.NumPages() {
		return nil
	}
	start := (i - 1) * a.perPage
	end := start + a.perPage
	if end > len(a.levels) {
		end = len(a.levels)
	}
	out := make([]Key, end-start)
	copy(out, a.levels[start:end])
	return out
}
