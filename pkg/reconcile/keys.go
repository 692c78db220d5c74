package reconcile

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crosscheck-io/crosscheck/pkg/aggregate"
)

// DefaultSeparator joins dimension values into unified keys.
const DefaultSeparator = "-"

var upper = cases.Upper(language.English)

// Key builds the canonical unified key for a dimension-value tuple: values
// joined with sep in dimension order, then upper-cased. Two tuples that
// differ only by case, or by sep appearing inside a value, collide into the
// same key; that merge is accepted behavior, inherited from the report
// tooling this replaces (see package doc).
func Key(values []string, sep string) string {
	return upper.String(strings.Join(values, sep))
}

// UnifiedKeys returns the deduplicated union of the unified keys of both
// aggregated tables, sorted so reconciliation output is stable across runs.
func UnifiedKeys(source, target *aggregate.Table, sep string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, t := range []*aggregate.Table{source, target} {
		for _, row := range t.Rows {
			k := Key(row.Dimensions, sep)
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// keyIndex builds a hash-join index from unified key to aggregated row.
// On key collisions the first row wins, matching Key's merge semantics.
func keyIndex(t *aggregate.Table, sep string) map[string]*aggregate.Row {
	index := make(map[string]*aggregate.Row, len(t.Rows))
	for i := range t.Rows {
		k := Key(t.Rows[i].Dimensions, sep)
		if _, ok := index[k]; !ok {
			index[k] = &t.Rows[i]
		}
	}
	return index
}
