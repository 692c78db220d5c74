package reconcile

// Summary is the compact diff summary derived from a reconciliation report:
// the sum of each measure's Diff column, plus a completeness flag.
type Summary struct {
	Entries []SummaryEntry `json:"entries"`

	// AllPresent is true when every reconciliation row is present in both
	// datasets. Vacuously true for an empty report.
	AllPresent bool `json:"all_present"`
}

// SummaryEntry is the total difference for one measure's Diff column.
type SummaryEntry struct {
	Column string  `json:"diff_column"`
	Total  float64 `json:"sum_of_difference"`
}

// Summarize derives the diff summary from a reconciliation report.
func Summarize(report *Report) *Summary {
	s := &Summary{
		Entries:    make([]SummaryEntry, len(report.Measures)),
		AllPresent: true,
	}

	for i, m := range report.Measures {
		s.Entries[i] = SummaryEntry{Column: m + "_Diff"}
	}
	for _, row := range report.Rows {
		if row.Presence != PresenceBoth {
			s.AllPresent = false
		}
		for i, m := range row.Measures {
			s.Entries[i].Total += m.Diff
		}
	}
	return s
}

// CompletenessLabel is the trailing summary row's name.
const CompletenessLabel = "All rows present in both"

// Completeness renders the completeness flag as the yes/no indicator used
// in the exported summary.
func (s *Summary) Completeness() string {
	if s.AllPresent {
		return "Yes"
	}
	return "No"
}

// Records renders the summary as display rows: one per measure, then the
// completeness row.
func (s *Summary) Records() [][]string {
	records := make([][]string, 0, len(s.Entries)+1)
	for _, e := range s.Entries {
		records = append(records, []string{e.Column, formatNumber(e.Total)})
	}
	records = append(records, []string{CompletenessLabel, s.Completeness()})
	return records
}

// Headers are the summary table's column headers.
func (s *Summary) Headers() []string {
	return []string{"Diff Column Name", "Sum of Difference"}
}
