package output

import (
	"strconv"

	"github.com/crosscheck-io/crosscheck/pkg/checklist"
	"github.com/crosscheck-io/crosscheck/pkg/reconcile"
)

// ReportData converts the reconciliation report to table data.
func ReportData(report *reconcile.Report, sourceLabel, targetLabel string) Data {
	return Data{
		Title:   "Validation Report",
		Headers: report.Header(sourceLabel, targetLabel),
		Rows:    report.Records(),
	}
}

// SummaryData converts the diff summary to table data.
func SummaryData(summary *reconcile.Summary) Data {
	return Data{
		Title:   "Diff Checker",
		Headers: summary.Headers(),
		Rows:    summary.Records(),
	}
}

// ColumnsData converts the column checklist to table data.
func ColumnsData(columns *checklist.ColumnTable) Data {
	rows := make([][]string, len(columns.Pairs))
	for i, pair := range columns.Pairs {
		rows[i] = []string{pair.Source, pair.Target, strconv.FormatBool(pair.Match)}
	}
	return Data{
		Title:   "Column Checklist",
		Headers: columns.Headers(),
		Rows:    rows,
	}
}
