package workbook

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/crosscheck-io/crosscheck/pkg/aggregate"
	"github.com/crosscheck-io/crosscheck/pkg/checklist"
	"github.com/crosscheck-io/crosscheck/pkg/dataset"
	"github.com/crosscheck-io/crosscheck/pkg/errors"
	"github.com/crosscheck-io/crosscheck/pkg/reconcile"
)

// Write exports a reconciliation result as an xlsx workbook at path.
//
// Full mode sheets: Checklist, <source label> (source aggregate),
// <target label> (target aggregate), Validation_Report, Column Checklist,
// Diff Checker. Structure-only mode sheets: Checklist, <source label> and
// <target label> (the cleaned input datasets), Column Checklist.
func Write(path string, result *reconcile.Result, source, target *dataset.Dataset, sourceLabel, targetLabel string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Reuse the default sheet for the checklist so sheet order starts there.
	if err := f.SetSheetName("Sheet1", "Checklist"); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := writeChecklist(f); err != nil {
		return errors.WrapIO("write", path, err)
	}

	full := result.Metadata.Mode == reconcile.ModeFull

	if full {
		if err := writeAggregate(f, sourceLabel, result.SourceAgg, result.Separator); err != nil {
			return errors.WrapIO("write", path, err)
		}
		if err := writeAggregate(f, targetLabel, result.TargetAgg, result.Separator); err != nil {
			return errors.WrapIO("write", path, err)
		}
		if err := writeReport(f, result.Report, sourceLabel, targetLabel); err != nil {
			return errors.WrapIO("write", path, err)
		}
	} else {
		if err := writeDataset(f, sourceLabel, source); err != nil {
			return errors.WrapIO("write", path, err)
		}
		if err := writeDataset(f, targetLabel, target); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if err := writeColumns(f, result.Columns); err != nil {
		return errors.WrapIO("write", path, err)
	}

	if full {
		if err := writeSummary(f, result.Summary); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Filename builds the default export filename: model and report names when
// both are set, a generic name otherwise, always date-stamped.
func Filename(model, report string, mode reconcile.Mode, now time.Time) string {
	date := now.Format("2006-01-02")
	kind, generic := "Validation", "ValidationReport"
	if mode == reconcile.ModeStructureOnly {
		kind, generic = "ColumnCheck", "ColumnCheck"
	}
	if model != "" && report != "" {
		return fmt.Sprintf("%s_%s_%s_%s.xlsx", model, report, kind, date)
	}
	return fmt.Sprintf("%s_%s.xlsx", generic, date)
}

func writeChecklist(f *excelize.File) error {
	rows := make([][]any, 0, 17)
	for _, item := range checklist.Items() {
		rows = append(rows, []any{item.Number, item.Text, item.StatusLevel1, item.StatusLevel2})
	}
	return writeSheet(f, "Checklist", checklist.Headers(), rows)
}

func writeAggregate(f *excelize.File, sheet string, agg *aggregate.Table, separator string) error {
	headers := make([]string, 0, len(agg.Dimensions)+len(agg.Measures)+1)
	headers = append(headers, agg.Dimensions...)
	headers = append(headers, agg.Measures...)
	headers = append(headers, "unique_key")

	rows := make([][]any, 0, len(agg.Rows))
	for _, row := range agg.Rows {
		rec := make([]any, 0, len(headers))
		for _, v := range row.Dimensions {
			rec = append(rec, v)
		}
		for _, m := range row.Measures {
			rec = append(rec, m)
		}
		rec = append(rec, reconcile.Key(row.Dimensions, separator))
		rows = append(rows, rec)
	}
	return writeSheet(f, sheet, headers, rows)
}

func writeDataset(f *excelize.File, sheet string, d *dataset.Dataset) error {
	rows := make([][]any, 0, d.Rows())
	for r := 0; r < d.Rows(); r++ {
		rec := make([]any, len(d.Columns()))
		for c, col := range d.Columns() {
			v := d.Cell(col, r)
			switch {
			case v.IsMissing():
				rec[c] = nil
			default:
				if n, ok := v.Float(); ok {
					rec[c] = n
				} else {
					rec[c] = v.String()
				}
			}
		}
		rows = append(rows, rec)
	}
	return writeSheet(f, sheet, d.Columns(), rows)
}

func writeReport(f *excelize.File, report *reconcile.Report, sourceLabel, targetLabel string) error {
	rows := make([][]any, 0, len(report.Rows))
	for _, row := range report.Rows {
		rec := make([]any, 0, 2+len(row.Dimensions)+3*len(row.Measures))
		rec = append(rec, row.Key)
		for _, v := range row.Dimensions {
			rec = append(rec, v)
		}
		rec = append(rec, row.Presence)
		for _, m := range row.Measures {
			rec = append(rec, sideCell(m.Source, m.InSource), sideCell(m.Target, m.InTarget), m.Diff)
		}
		rows = append(rows, rec)
	}
	return writeSheet(f, "Validation_Report", report.Header(sourceLabel, targetLabel), rows)
}

func writeColumns(f *excelize.File, columns *checklist.ColumnTable) error {
	rows := make([][]any, 0, len(columns.Pairs))
	for _, pair := range columns.Pairs {
		rows = append(rows, []any{pair.Source, pair.Target, pair.Match})
	}
	return writeSheet(f, "Column Checklist", columns.Headers(), rows)
}

func writeSummary(f *excelize.File, summary *reconcile.Summary) error {
	rows := make([][]any, 0, len(summary.Entries)+1)
	for _, e := range summary.Entries {
		rows = append(rows, []any{e.Column, e.Total})
	}
	rows = append(rows, []any{reconcile.CompletenessLabel, summary.Completeness()})
	return writeSheet(f, "Diff Checker", summary.Headers(), rows)
}

// writeSheet creates the sheet if needed and writes a header row followed
// by data rows. Nil cells are left blank.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	if idx, err := f.GetSheetIndex(sheet); err != nil {
		return err
	} else if idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func sideCell(f float64, present bool) any {
	if !present {
		return nil
	}
	return f
}
