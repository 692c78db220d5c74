// Package reconcile aligns two aggregated datasets on a unified key space
// and reports, per key, where the row appears and how each measure differs.
// It is the core of the crosscheck pipeline: dimension selection,
// aggregation, the key-space union, the reconciliation join, and the diff
// summary all run from Reconciler.Run in one synchronous pass.
//
// Known limitation: unified keys are case-normalized and separator-joined,
// so genuinely different dimension tuples can normalize to the same key
// (values differing only by case, or containing the separator). Colliding
// tuples are treated as one reconciliation row.
package reconcile

import (
	"context"
	"strconv"

	"github.com/crosscheck-io/crosscheck/pkg/aggregate"
	"github.com/crosscheck-io/crosscheck/pkg/checklist"
	"github.com/crosscheck-io/crosscheck/pkg/dataset"
	"github.com/crosscheck-io/crosscheck/pkg/dimensions"
	"github.com/crosscheck-io/crosscheck/pkg/logging"
)

// Mode selects how much of the pipeline runs.
type Mode string

const (
	// ModeFull runs aggregation, the reconciliation join, and the summary.
	ModeFull Mode = "full"
	// ModeStructureOnly compares column layouts only.
	ModeStructureOnly Mode = "structure"
)

// PresenceBoth classifies keys present in both aggregates. Keys on one side
// only are classified "Present in <label>" for that side's label.
const PresenceBoth = "Present in Both"

// Report is the reconciliation table: one row per unified key. Logical
// column order is key, dimensions, presence, then a Source/Target/Diff
// triple per measure.
type Report struct {
	Dimensions []string `json:"dimensions"`
	Measures   []string `json:"measures"`
	Rows       []Row    `json:"rows"`
}

// Row is one reconciliation row. Dimension values come from the source
// aggregate when the key exists there, otherwise from the target.
type Row struct {
	Key        string    `json:"unique_key"`
	Dimensions []string  `json:"dimension_values"`
	Presence   string    `json:"presence"`
	Measures   []Measure `json:"measures"`
}

// Measure is one Source/Target/Diff triple. InSource/InTarget distinguish a
// true 0 from a missing side: missing sides count as 0 in Diff but render
// blank in Source/Target columns.
type Measure struct {
	Source   float64 `json:"source"`
	InSource bool    `json:"in_source"`
	Target   float64 `json:"target"`
	InTarget bool    `json:"in_target"`
	Diff     float64 `json:"diff"`
}

// Reconciler runs the reconciliation pipeline over two cleaned datasets.
type Reconciler struct {
	sourceLabel string
	targetLabel string
	separator   string
	mode        Mode
}

// New creates a Reconciler with default settings: full mode, "-" separator,
// Cognos/PBI labels.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		sourceLabel: "Cognos",
		targetLabel: "PBI",
		separator:   DefaultSeparator,
		mode:        ModeFull,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SourceLabel returns the display label of the source dataset.
func (r *Reconciler) SourceLabel() string { return r.sourceLabel }

// TargetLabel returns the display label of the target dataset.
func (r *Reconciler) TargetLabel() string { return r.targetLabel }

// Run executes the pipeline for one pair of datasets and returns the
// result. All failures abort the whole run; there is no partial report.
// The inputs are read only - every stage produces new values.
func (r *Reconciler) Run(ctx context.Context, source, target *dataset.Dataset) (*Result, error) {
	log := logging.FromContext(ctx)
	result := NewResult(r.mode)
	result.Separator = r.separator
	result.Columns = checklist.Columns(source, target, r.sourceLabel, r.targetLabel)

	if r.mode == ModeStructureOnly {
		log.Info().
			Int("pairs", len(result.Columns.Pairs)).
			Bool("match", result.Columns.Matches()).
			Msg("Compared column structure")
		result.Finalize()
		return result, nil
	}

	sel, err := dimensions.Select(ctx, source, target)
	if err != nil {
		return nil, err
	}
	if sel.Warning != "" {
		result.Warnings = append(result.Warnings, sel.Warning)
	}
	result.Dimensions = sel.Columns
	result.Measures = dimensions.Measures(source, target, sel.Columns)

	result.SourceAgg = aggregate.Aggregate(source, result.Dimensions, result.Measures)
	result.TargetAgg = aggregate.Aggregate(target, result.Dimensions, result.Measures)

	result.Report = r.join(result.SourceAgg, result.TargetAgg, result.Dimensions, result.Measures)
	result.Summary = Summarize(result.Report)

	log.Info().
		Int("keys", len(result.Report.Rows)).
		Int("measures", len(result.Measures)).
		Bool("complete", result.Summary.AllPresent).
		Msg("Reconciliation complete")

	result.Finalize()
	return result, nil
}

// join performs a hash-join of both aggregates on the unified key space and
// classifies presence per key.
func (r *Reconciler) join(sourceAgg, targetAgg *aggregate.Table, dims, measures []string) *Report {
	report := &Report{
		Dimensions: dims,
		Measures:   measures,
		Rows:       make([]Row, 0, len(sourceAgg.Rows)+len(targetAgg.Rows)),
	}

	sourceIdx := keyIndex(sourceAgg, r.separator)
	targetIdx := keyIndex(targetAgg, r.separator)

	for _, key := range UnifiedKeys(sourceAgg, targetAgg, r.separator) {
		srcRow, inSource := sourceIdx[key]
		tgtRow, inTarget := targetIdx[key]

		row := Row{Key: key, Measures: make([]Measure, len(measures))}

		switch {
		case inSource && inTarget:
			row.Presence = PresenceBoth
			row.Dimensions = srcRow.Dimensions
		case inSource:
			row.Presence = "Present in " + r.sourceLabel
			row.Dimensions = srcRow.Dimensions
		default:
			row.Presence = "Present in " + r.targetLabel
			row.Dimensions = tgtRow.Dimensions
		}

		for i := range measures {
			m := Measure{InSource: inSource, InTarget: inTarget}
			if inSource {
				m.Source = srcRow.Measures[i]
			}
			if inTarget {
				m.Target = tgtRow.Measures[i]
			}
			m.Diff = m.Target - m.Source
			row.Measures[i] = m
		}

		report.Rows = append(report.Rows, row)
	}

	return report
}

// Header returns the report's column headers in output order: key,
// dimensions, presence, then Source/Target/Diff per measure.
func (rep *Report) Header(sourceLabel, targetLabel string) []string {
	header := make([]string, 0, 2+len(rep.Dimensions)+3*len(rep.Measures))
	header = append(header, "unique_key")
	header = append(header, rep.Dimensions...)
	header = append(header, "presence")
	for _, m := range rep.Measures {
		header = append(header, m+"_"+sourceLabel, m+"_"+targetLabel, m+"_Diff")
	}
	return header
}

// Records renders the report rows as display strings in Header order.
// Measure sides absent from a dataset render blank; diffs always render.
func (rep *Report) Records() [][]string {
	records := make([][]string, len(rep.Rows))
	for i, row := range rep.Rows {
		rec := make([]string, 0, 2+len(row.Dimensions)+3*len(row.Measures))
		rec = append(rec, row.Key)
		rec = append(rec, row.Dimensions...)
		rec = append(rec, row.Presence)
		for _, m := range row.Measures {
			rec = append(rec, formatSide(m.Source, m.InSource), formatSide(m.Target, m.InTarget), formatNumber(m.Diff))
		}
		records[i] = rec
	}
	return records
}

func formatSide(f float64, present bool) string {
	if !present {
		return ""
	}
	return formatNumber(f)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
