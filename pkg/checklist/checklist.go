// Package checklist provides the fixed manual sign-off checklist emitted
// with every report, and the column-alignment checklist comparing source
// and target column layouts.
package checklist

import (
	"github.com/crosscheck-io/crosscheck/pkg/dataset"
)

// Item is one sign-off checklist entry with two independently settable
// status fields for two review levels.
type Item struct {
	Number       int    `json:"s_no"`
	Text         string `json:"checklist"`
	StatusLevel1 string `json:"status_level1"`
	StatusLevel2 string `json:"status_level2"`
}

// items is the fixed process checklist, reproduced verbatim on every export
// for manual sign-off. Built once at process start; never recomputed.
var items = buildItems([]string{
	"Database & Warehouse is parameterized (In case of DESQL Reports)",
	"All the columns of Cognos replicated in PBI (No extra columns)",
	"All the filters of Cognos replicated in PBI",
	"Filters working as expected (single/multi select as usual)",
	"Column names matching with Cognos",
	"Currency symbols to be replicated",
	"Filters need to be aligned vertically/horizontally",
	"Report Name & Package name to be written",
	"Entire model to be refreshed before publishing to PBI service",
	"Date Last refreshed to be removed from filter/table",
	"Table's column header to be bold",
	"Table style to not have grey bars",
	"Pre-applied filters while generating validation report?",
	"Dateformat to be YYYY-MM-DD [hh:mm:ss] in refresh date as well",
	"Sorting is replicated",
	"Filter pane to be hidden before publishing to PBI service",
	"Mentioned the exception in our validation document like numbers/columns/values mismatch (if any)",
})

func buildItems(texts []string) []Item {
	out := make([]Item, len(texts))
	for i, text := range texts {
		out[i] = Item{Number: i + 1, Text: text}
	}
	return out
}

// Items returns a copy of the sign-off checklist.
func Items() []Item {
	return append([]Item(nil), items...)
}

// Headers are the column headers of the sign-off checklist table.
func Headers() []string {
	return []string{"S.No", "Checklist", "Status - Level1", "Status - Level2"}
}

// ColumnPair aligns source column i with target column i. Either side is
// blank when that dataset has fewer columns.
type ColumnPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Match  bool   `json:"match"`
}

// ColumnTable pairs the column layouts of both datasets position by
// position, with a match flag per pair.
type ColumnTable struct {
	SourceLabel string       `json:"source_label"`
	TargetLabel string       `json:"target_label"`
	Pairs       []ColumnPair `json:"pairs"`
}

// Matches reports whether every column pair matches.
func (t *ColumnTable) Matches() bool {
	for _, p := range t.Pairs {
		if !p.Match {
			return false
		}
	}
	return true
}

// Headers returns the table's column headers using the configured labels.
func (t *ColumnTable) Headers() []string {
	return []string{t.SourceLabel + " Columns", t.TargetLabel + " Columns", "Match"}
}

// Columns builds the column-alignment checklist for the two datasets,
// padding the shorter column list with blanks.
func Columns(source, target *dataset.Dataset, sourceLabel, targetLabel string) *ColumnTable {
	sourceCols := source.Columns()
	targetCols := target.Columns()

	n := len(sourceCols)
	if len(targetCols) > n {
		n = len(targetCols)
	}

	table := &ColumnTable{
		SourceLabel: sourceLabel,
		TargetLabel: targetLabel,
		Pairs:       make([]ColumnPair, n),
	}
	for i := 0; i < n; i++ {
		var pair ColumnPair
		if i < len(sourceCols) {
			pair.Source = sourceCols[i]
		}
		if i < len(targetCols) {
			pair.Target = targetCols[i]
		}
		pair.Match = pair.Source == pair.Target
		table.Pairs[i] = pair
	}
	return table
}
