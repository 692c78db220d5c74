package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosscheck-io/crosscheck/pkg/reconcile"
)

func TestSummarize(t *testing.T) {
	report := &reconcile.Report{
		Dimensions: []string{"Region"},
		Measures:   []string{"Sales", "Units"},
		Rows: []reconcile.Row{
			{
				Key: "EAST", Presence: reconcile.PresenceBoth,
				Measures: []reconcile.Measure{{Diff: -10}, {Diff: 1}},
			},
			{
				Key: "WEST", Presence: "Present in Cognos",
				Measures: []reconcile.Measure{{Diff: -50}, {Diff: 0}},
			},
			{
				Key: "NORTH", Presence: "Present in PBI",
				Measures: []reconcile.Measure{{Diff: 20}, {Diff: -1}},
			},
		},
	}

	s := reconcile.Summarize(report)

	require.Len(t, s.Entries, 2)
	assert.Equal(t, reconcile.SummaryEntry{Column: "Sales_Diff", Total: -40}, s.Entries[0])
	assert.Equal(t, reconcile.SummaryEntry{Column: "Units_Diff", Total: 0}, s.Entries[1])
	assert.False(t, s.AllPresent)

	records := s.Records()
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Sales_Diff", "-40"}, records[0])
	assert.Equal(t, []string{"Units_Diff", "0"}, records[1])
	assert.Equal(t, []string{reconcile.CompletenessLabel, "No"}, records[2])
}

func TestSummarizeAllPresent(t *testing.T) {
	report := &reconcile.Report{
		Measures: []string{"Sales"},
		Rows: []reconcile.Row{
			{Key: "EAST", Presence: reconcile.PresenceBoth, Measures: []reconcile.Measure{{Diff: 0}}},
		},
	}

	s := reconcile.Summarize(report)
	assert.True(t, s.AllPresent)
	assert.Equal(t, "Yes", s.Completeness())
}

func TestSummarizeEmptyReport(t *testing.T) {
	s := reconcile.Summarize(&reconcile.Report{})
	assert.Empty(t, s.Entries)
	// Vacuously complete, matching the original tool's behavior.
	assert.True(t, s.AllPresent)
}
