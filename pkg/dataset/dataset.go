// Package dataset provides the in-memory tabular model shared by the
// reconciliation pipeline. A Dataset is an ordered set of named columns
// holding text, numeric, or missing cells; all columns have equal length.
// Datasets are treated as immutable once built - transformations such as
// Normalize and Clean return new datasets rather than mutating in place.
package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind classifies a cell value or a column.
type Kind int

const (
	// KindMissing marks an absent cell value.
	KindMissing Kind = iota
	// KindText marks a textual cell value.
	KindText
	// KindNumber marks a numeric cell value.
	KindNumber
)

// String returns the kind name for logging and error messages.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "missing"
	}
}

// Value is a single cell. The zero value is a missing cell.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Missing is the absent cell value.
var Missing = Value{}

// Text returns a textual cell value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number returns a numeric cell value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Kind returns the value's classification.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell is absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric content of the cell. The boolean is false for
// text and missing cells.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String renders the cell for display and key building. Numbers use the
// shortest exact decimal form, missing cells render empty.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Dataset is an ordered sequence of named, equal-length columns.
type Dataset struct {
	name    string
	columns []string
	index   map[string]int
	cells   [][]Value // column-major, aligned with columns
	rows    int
}

// New creates an empty dataset with the given logical name and column order.
func New(name string, columns []string) *Dataset {
	d := &Dataset{
		name:    name,
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		cells:   make([][]Value, len(columns)),
	}
	for i, col := range columns {
		d.index[col] = i
	}
	return d
}

// Name returns the dataset's logical name (e.g. "Cognos" or "PBI").
func (d *Dataset) Name() string { return d.name }

// Columns returns the column names in order. The returned slice must not be
// modified.
func (d *Dataset) Columns() []string { return d.columns }

// Rows returns the number of rows.
func (d *Dataset) Rows() int { return d.rows }

// HasColumn reports whether the dataset contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// AppendRow adds one row of cells. The number of values must match the
// number of columns.
func (d *Dataset) AppendRow(values ...Value) error {
	if len(values) != len(d.columns) {
		return fmt.Errorf("row has %d values, dataset has %d columns", len(values), len(d.columns))
	}
	for i, v := range values {
		d.cells[i] = append(d.cells[i], v)
	}
	d.rows++
	return nil
}

// Cell returns the value at the named column and row, or Missing if the
// column does not exist.
func (d *Dataset) Cell(column string, row int) Value {
	i, ok := d.index[column]
	if !ok {
		return Missing
	}
	return d.cells[i][row]
}

// ColumnKind classifies a column: text if any cell is textual, otherwise
// numeric (an all-missing column counts as numeric, matching the usual
// spreadsheet convention for empty columns).
func (d *Dataset) ColumnKind(column string) Kind {
	i, ok := d.index[column]
	if !ok {
		return KindMissing
	}
	for _, v := range d.cells[i] {
		if v.kind == KindText {
			return KindText
		}
	}
	return KindNumber
}

// SharedColumns returns the columns of d that also exist in other,
// preserving d's column order.
func (d *Dataset) SharedColumns(other *Dataset) []string {
	var shared []string
	for _, col := range d.columns {
		if other.HasColumn(col) {
			shared = append(shared, col)
		}
	}
	return shared
}

// apply returns a new dataset with fn applied to every cell.
func (d *Dataset) apply(fn func(Value) Value) *Dataset {
	out := New(d.name, d.columns)
	for i := range d.cells {
		col := make([]Value, len(d.cells[i]))
		for j, v := range d.cells[i] {
			col[j] = fn(v)
		}
		out.cells[i] = col
	}
	out.rows = d.rows
	return out
}

var upper = cases.Upper(language.English)

// Clean returns a new dataset with every text cell upper-cased and
// whitespace-trimmed. Numeric and missing cells are unchanged.
func (d *Dataset) Clean() *Dataset {
	return d.apply(func(v Value) Value {
		if v.kind != KindText {
			return v
		}
		return Text(upper.String(strings.TrimSpace(v.text)))
	})
}
