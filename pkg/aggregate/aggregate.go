// Package aggregate groups a dataset by its dimension columns and sums the
// measure columns per group, producing one row per distinct dimension-value
// combination.
package aggregate

import (
	"strings"

	"github.com/crosscheck-io/crosscheck/pkg/dataset"
)

// MissingMarker replaces missing dimension values before grouping, so rows
// with absent dimensions still group together instead of being dropped.
const MissingMarker = "NAN"

// groupSep joins dimension values into internal grouping keys. A control
// character keeps distinct tuples from colliding here; the user-visible
// unified key has its own, documented, separator semantics.
const groupSep = "\x1f"

// Table is an aggregated dataset: one Row per distinct dimension tuple.
type Table struct {
	Name       string
	Dimensions []string
	Measures   []string
	Rows       []Row
}

// Row holds one dimension-value combination and its summed measures.
// Dimension values are display strings with missing values replaced by
// MissingMarker; Measures aligns with Table.Measures.
type Row struct {
	Dimensions []string
	Measures   []float64
}

// Aggregate groups d by dims and sums the measure columns per group.
// Missing dimension cells are replaced with MissingMarker; non-numeric and
// missing measure cells contribute 0 to their group's sum. Row order follows
// first appearance in the input, so equal inputs aggregate identically.
func Aggregate(d *dataset.Dataset, dims, measures []string) *Table {
	t := &Table{
		Name:       d.Name(),
		Dimensions: append([]string(nil), dims...),
		Measures:   append([]string(nil), measures...),
	}

	groups := make(map[string]int) // grouping key -> index into t.Rows
	for row := 0; row < d.Rows(); row++ {
		values := make([]string, len(dims))
		for i, dim := range dims {
			v := d.Cell(dim, row)
			if v.IsMissing() {
				values[i] = MissingMarker
			} else {
				values[i] = v.String()
			}
		}

		key := strings.Join(values, groupSep)
		idx, ok := groups[key]
		if !ok {
			idx = len(t.Rows)
			groups[key] = idx
			t.Rows = append(t.Rows, Row{
				Dimensions: values,
				Measures:   make([]float64, len(measures)),
			})
		}

		for i, m := range measures {
			if f, ok := d.Cell(m, row).Float(); ok {
				t.Rows[idx].Measures[i] += f
			}
		}
	}

	return t
}
