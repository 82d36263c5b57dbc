// Package dataset provides the tabular data model consumed by plots.
//
// A Dataset is an ordered collection of named, typed columns of equal length.
// Columns are either numeric (float64) or categorical (string). Datasets are
// built once with AddNumberColumn/AddStringColumn and are immutable in shape
// afterwards: pagination never adds or removes columns, it only materializes
// row subsets via Subset.
//
// Column access goes through ColumnRef, a typed accessor resolved once by name.
// Callers resolve every column they need during validation and then read values
// by row index, so no per-row name lookup happens on hot paths.
package dataset

import (
	"errors"
	"strconv"
)

var (
	// ErrEmptyColumnName is returned by the Add*Column methods when the
	// column name is empty. All columns must have non-empty names.
	ErrEmptyColumnName = errors.New("column name must not be empty")

	// ErrDuplicateColumn is returned by the Add*Column methods when a column
	// with the same name already exists. Column names must be unique.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrUnknownColumn is returned by Column when no column with the
	// requested name exists in the dataset.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrLengthMismatch is returned by the Add*Column methods when the new
	// column's length differs from the dataset's established row count.
	ErrLengthMismatch = errors.New("column length mismatch")
)

// Type identifies the value type of a column.
type Type int

const (
	// TypeString is a categorical column of string values.
	TypeString Type = iota
	// TypeNumber is a numeric column of float64 values.
	TypeNumber
)

// String returns the type name ("string" or "number").
func (t Type) String() string {
	if t == TypeNumber {
		return "number"
	}
	return "string"
}

// column is the internal storage for one named column. Exactly one of nums
// and strs is populated, depending on typ.
type column struct {
	name string
	typ  Type
	nums []float64
	strs []string
}

// Dataset is an ordered sequence of rows over named, typed columns.
// The zero value is not usable - use New to create a Dataset.
// Dataset is not safe for concurrent modification, but concurrent reads
// (including Subset) are safe once construction is complete.
type Dataset struct {
	rows    int
	started bool // whether the row count has been established
	order   []string
	cols    map[string]*column
}

// New creates an empty dataset with no columns and no rows.
func New() *Dataset {
	return &Dataset{cols: make(map[string]*column)}
}

// AddNumberColumn appends a numeric column. The first column added
// establishes the dataset's row count; subsequent columns must match it.
func (d *Dataset) AddNumberColumn(name string, values []float64) error {
	if err := d.checkAdd(name, len(values)); err != nil {
		return err
	}
	d.cols[name] = &column{name: name, typ: TypeNumber, nums: values}
	d.order = append(d.order, name)
	return nil
}

// AddStringColumn appends a categorical column. The first column added
// establishes the dataset's row count; subsequent columns must match it.
func (d *Dataset) AddStringColumn(name string, values []string) error {
	if err := d.checkAdd(name, len(values)); err != nil {
		return err
	}
	d.cols[name] = &column{name: name, typ: TypeString, strs: values}
	d.order = append(d.order, name)
	return nil
}

func (d *Dataset) checkAdd(name string, length int) error {
	if name == "" {
		return ErrEmptyColumnName
	}
	if _, exists := d.cols[name]; exists {
		return ErrDuplicateColumn
	}
	if d.started && length != d.rows {
		return ErrLengthMismatch
	}
	if !d.started {
		d.rows = length
		d.started = true
	}
	return nil
}

// NumRows returns the number of rows in the dataset.
func (d *Dataset) NumRows() int { return d.rows }

// NumColumns returns the number of columns in the dataset.
func (d *Dataset) NumColumns() int { return len(d.order) }

// Columns returns the column names in insertion order.
// The returned slice is a copy and safe to modify.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// HasColumn reports whether a column with the given name exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.cols[name]
	return ok
}

// Column resolves a column name to a typed accessor. Resolution happens once;
// the returned ColumnRef reads values by row index without further lookups.
func (d *Dataset) Column(name string) (ColumnRef, error) {
	c, ok := d.cols[name]
	if !ok {
		return ColumnRef{}, ErrUnknownColumn
	}
	return ColumnRef{col: c}, nil
}

// Subset materializes a new dataset containing the given rows, in order.
// Column names, types, and insertion order are preserved. Row indices may
// repeat; out-of-range indices panic, matching slice semantics.
func (d *Dataset) Subset(rows []int) *Dataset {
	out := New()
	out.rows = len(rows)
	out.started = true
	for _, name := range d.order {
		src := d.cols[name]
		dst := &column{name: name, typ: src.typ}
		switch src.typ {
		case TypeNumber:
			dst.nums = make([]float64, len(rows))
			for i, r := range rows {
				dst.nums[i] = src.nums[r]
			}
		case TypeString:
			dst.strs = make([]string, len(rows))
			for i, r := range rows {
				dst.strs[i] = src.strs[r]
			}
		}
		out.cols[name] = dst
		out.order = append(out.order, name)
	}
	return out
}

// ColumnRef is a typed accessor for a single column, resolved once by name.
// The zero value is not usable - obtain refs from Dataset.Column.
type ColumnRef struct {
	col *column
}

// Valid reports whether the ref points at a column.
func (r ColumnRef) Valid() bool { return r.col != nil }

// Name returns the column name.
func (r ColumnRef) Name() string { return r.col.name }

// Type returns the column's value type.
func (r ColumnRef) Type() Type { return r.col.typ }

// IsNumeric reports whether the column holds float64 values.
func (r ColumnRef) IsNumeric() bool { return r.col.typ == TypeNumber }

// Number returns the numeric value at row i.
// It panics if the column is not numeric.
func (r ColumnRef) Number(i int) float64 {
	if r.col.typ != TypeNumber {
		panic("dataset: Number called on string column " + r.col.name)
	}
	return r.col.nums[i]
}

// Value returns the value at row i formatted as a string. Numeric values use
// the shortest representation that round-trips, so facet keys built from
// numeric columns are stable.
func (r ColumnRef) Value(i int) string {
	if r.col.typ == TypeNumber {
		return strconv.FormatFloat(r.col.nums[i], 'g', -1, 64)
	}
	return r.col.strs[i]
}

// Range returns the minimum and maximum of a numeric column over all rows.
// ok is false when the column is not numeric or the dataset has no rows.
func (r ColumnRef) Range() (lo, hi float64, ok bool) {
	if r.col.typ != TypeNumber || len(r.col.nums) == 0 {
		return 0, 0, false
	}
	lo, hi = r.col.nums[0], r.col.nums[0]
	for _, v := range r.col.nums[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}
