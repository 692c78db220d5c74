// Package dimensions decides which shared columns act as grouping keys when
// reconciling two datasets, and which act as summed measures.
package dimensions

import (
	"context"
	"sort"
	"strings"

	"github.com/crosscheck-io/crosscheck/pkg/dataset"
	"github.com/crosscheck-io/crosscheck/pkg/errors"
	"github.com/crosscheck-io/crosscheck/pkg/logging"
)

// Rule identifies which fallback produced a dimension selection.
type Rule int

const (
	// RuleTextual selected textual columns or columns named *_id / *_key.
	RuleTextual Rule = iota
	// RuleNonNumeric selected all shared columns that are not numeric.
	RuleNonNumeric
	// RuleAllShared selected every shared column because nothing better
	// existed. The selection is underspecified and the caller is warned.
	RuleAllShared
)

// Selection is the outcome of dimension selection: the chosen grouping
// columns plus how they were chosen.
type Selection struct {
	Columns []string
	Rule    Rule

	// Warning carries the non-fatal underspecified-dimensions notice when
	// Rule is RuleAllShared, empty otherwise.
	Warning string
}

// Underspecified reports whether the selection fell through to using every
// shared column.
func (s *Selection) Underspecified() bool {
	return s.Rule == RuleAllShared
}

// Select chooses the dimension columns shared by source and target using an
// ordered fallback; the first rule yielding a non-empty set wins:
//
//  1. shared columns that are textual in the source, or whose name contains
//     "_id" or "_key" (case-insensitive)
//  2. shared columns that are not numeric
//  3. all shared columns (non-fatal warning)
//
// An empty column intersection is fatal and returns NoCommonColumnsError.
func Select(ctx context.Context, source, target *dataset.Dataset) (*Selection, error) {
	log := logging.FromContext(ctx)

	shared := source.SharedColumns(target)
	if len(shared) == 0 {
		return nil, errors.NewNoCommonColumnsError(source.Name(), target.Name())
	}

	sel := &Selection{Rule: RuleTextual}
	for _, col := range shared {
		if source.ColumnKind(col) == dataset.KindText || isKeyColumn(col) {
			sel.Columns = append(sel.Columns, col)
		}
	}

	if len(sel.Columns) == 0 {
		sel.Rule = RuleNonNumeric
		for _, col := range shared {
			if source.ColumnKind(col) != dataset.KindNumber {
				sel.Columns = append(sel.Columns, col)
			}
		}
	}

	if len(sel.Columns) == 0 {
		sel.Rule = RuleAllShared
		sel.Columns = shared
		sel.Warning = "no non-numeric columns found; using all shared columns as dimensions: " +
			strings.Join(shared, ", ")
		log.Warn().Strs("dimensions", shared).Msg("No non-numeric columns found, using all shared columns as dimensions")
	}

	log.Info().Strs("dimensions", sel.Columns).Msg("Selected dimensions for validation")
	return sel, nil
}

// Measures returns the columns shared by both datasets, outside the
// dimension set, that are numeric in both. The result is sorted by column
// name so downstream output is deterministic.
func Measures(source, target *dataset.Dataset, dims []string) []string {
	inDims := make(map[string]bool, len(dims))
	for _, d := range dims {
		inDims[d] = true
	}

	var measures []string
	for _, col := range source.SharedColumns(target) {
		if inDims[col] {
			continue
		}
		if source.ColumnKind(col) == dataset.KindNumber && target.ColumnKind(col) == dataset.KindNumber {
			measures = append(measures, col)
		}
	}
	sort.Strings(measures)
	return measures
}

func isKeyColumn(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "_id") || strings.Contains(lower, "_key")
}
