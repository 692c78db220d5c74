package reconcile

import (
	"fmt"
	"time"

	"github.com/crosscheck-io/crosscheck/pkg/aggregate"
	"github.com/crosscheck-io/crosscheck/pkg/checklist"
)

// Result represents the outcome of one reconciliation run. It is built in
// one pass and read-only afterwards; nothing is shared between runs.
type Result struct {
	// Core data. Report, Summary and the aggregates are nil in
	// structure-only mode.
	Report    *Report          `json:"report,omitempty"`
	Summary   *Summary         `json:"summary,omitempty"`
	SourceAgg *aggregate.Table `json:"source_agg,omitempty"`
	TargetAgg *aggregate.Table `json:"target_agg,omitempty"`

	// Columns is the column-alignment checklist, produced in both modes.
	Columns *checklist.ColumnTable `json:"columns"`

	// Selected column roles
	Dimensions []string `json:"dimensions,omitempty"`
	Measures   []string `json:"measures,omitempty"`

	// Separator is the unified-key separator used for this run.
	Separator string `json:"separator,omitempty"`

	// Warnings are non-fatal notices (e.g. underspecified dimensions).
	Warnings []string `json:"warnings,omitempty"`

	// Metadata about the run
	Metadata Metadata `json:"metadata"`
}

// Metadata contains metadata about the reconciliation run.
type Metadata struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	Mode      Mode          `json:"mode"`
}

// NewResult creates an empty result for the given mode.
func NewResult(mode Mode) *Result {
	return &Result{
		Metadata: Metadata{
			StartTime: time.Now(),
			Mode:      mode,
		},
	}
}

// Finalize records completion time and duration.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}

// Complete reports whether every reconciliation row was present in both
// datasets. Structure-only results report column-layout equality instead.
func (r *Result) Complete() bool {
	if r.Metadata.Mode == ModeStructureOnly {
		return r.Columns != nil && r.Columns.Matches()
	}
	return r.Summary != nil && r.Summary.AllPresent
}

// String returns a human-readable one-line summary of the run.
func (r *Result) String() string {
	if r.Metadata.Mode == ModeStructureOnly {
		if r.Complete() {
			return "Structure check passed. All column pairs match."
		}
		return "Structure check found column mismatches."
	}
	if r.Report == nil {
		return "Reconciliation produced no report."
	}
	if r.Complete() {
		return fmt.Sprintf("Reconciliation complete. %d keys, all present in both.", len(r.Report.Rows))
	}
	missing := 0
	for _, row := range r.Report.Rows {
		if row.Presence != PresenceBoth {
			missing++
		}
	}
	return fmt.Sprintf("Reconciliation complete. %d of %d keys missing from one side.", missing, len(r.Report.Rows))
}
