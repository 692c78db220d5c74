package workbook_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/crosscheck-io/crosscheck/internal/workbook"
	"github.com/crosscheck-io/crosscheck/pkg/dataset"
	pkgerrors "github.com/crosscheck-io/crosscheck/pkg/errors"
	"github.com/crosscheck-io/crosscheck/pkg/reconcile"
)

// writeInput builds a two-sheet input workbook on disk for reader tests.
func writeInput(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Cognos"))
	require.NoError(t, f.SetSheetRow("Cognos", "A1", &[]any{"Region", "Code", "Sales"}))
	require.NoError(t, f.SetSheetRow("Cognos", "A2", &[]any{"East", "00045", 100}))
	require.NoError(t, f.SetSheetRow("Cognos", "A3", &[]any{"West", "12A3", 50}))

	_, err := f.NewSheet("PBI")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("PBI", "A1", &[]any{"Region", "Code", "Sales"}))
	require.NoError(t, f.SetSheetRow("PBI", "A2", &[]any{"east", "00045", 90}))

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadCoercesAndNormalizes(t *testing.T) {
	sheets, err := workbook.Read(writeInput(t))
	require.NoError(t, err)
	require.Contains(t, sheets, "Cognos")
	require.Contains(t, sheets, "PBI")

	cognos := sheets["Cognos"]
	assert.Equal(t, []string{"Region", "Code", "Sales"}, cognos.Columns())
	require.Equal(t, 2, cognos.Rows())

	// Leading-zero text became numeric via normalization.
	code, ok := cognos.Cell("Code", 0).Float()
	require.True(t, ok)
	assert.Equal(t, 45.0, code)

	// Mixed alphanumeric stayed text.
	assert.Equal(t, dataset.KindText, cognos.Cell("Code", 1).Kind())

	sales, ok := cognos.Cell("Sales", 0).Float()
	require.True(t, ok)
	assert.Equal(t, 100.0, sales)
}

func TestReadFrom(t *testing.T) {
	raw, err := os.ReadFile(writeInput(t))
	require.NoError(t, err)

	sheets, err := workbook.ReadFrom(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Contains(t, sheets, "Cognos")
}

func TestReadFromBadData(t *testing.T) {
	_, err := workbook.ReadFrom(bytes.NewReader([]byte("not an xlsx file")))
	assert.Error(t, err)
}

func TestPairMissingSheets(t *testing.T) {
	sheets, err := workbook.Read(writeInput(t))
	require.NoError(t, err)

	_, _, err = workbook.Pair(sheets, "input.xlsx", "Cognos", "Nope")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsMissingSheet(err))
	assert.Contains(t, err.Error(), "Nope")

	source, target, err := workbook.Pair(sheets, "input.xlsx", "Cognos", "PBI")
	require.NoError(t, err)
	assert.Equal(t, "Cognos", source.Name())
	assert.Equal(t, "PBI", target.Name())
}

func TestWriteFullMode(t *testing.T) {
	sheets, err := workbook.Read(writeInput(t))
	require.NoError(t, err)
	source, target, err := workbook.Pair(sheets, "input.xlsx", "Cognos", "PBI")
	require.NoError(t, err)

	result, err := reconcile.New().Run(context.Background(), source.Clean(), target.Clean())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, workbook.Write(path, result, source, target, "Cognos", "PBI"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t,
		[]string{"Checklist", "Cognos", "PBI", "Validation_Report", "Column Checklist", "Diff Checker"},
		f.GetSheetList())

	rows, err := f.GetRows("Checklist")
	require.NoError(t, err)
	require.Len(t, rows, 18) // header + 17 items
	assert.Equal(t, []string{"S.No", "Checklist", "Status - Level1", "Status - Level2"}, rows[0])

	report, err := f.GetRows("Validation_Report")
	require.NoError(t, err)
	require.NotEmpty(t, report)
	assert.Equal(t, "unique_key", report[0][0])
	assert.Equal(t, "presence", report[0][len(result.Dimensions)+1])
}

func TestWriteStructureMode(t *testing.T) {
	sheets, err := workbook.Read(writeInput(t))
	require.NoError(t, err)
	source, target, err := workbook.Pair(sheets, "input.xlsx", "Cognos", "PBI")
	require.NoError(t, err)

	r := reconcile.New(reconcile.WithMode(reconcile.ModeStructureOnly))
	result, err := r.Run(context.Background(), source, target)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, workbook.Write(path, result, source, target, "Cognos", "PBI"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t,
		[]string{"Checklist", "Cognos", "PBI", "Column Checklist"},
		f.GetSheetList())
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Model_Report_Validation_2026-08-28.xlsx",
		workbook.Filename("Model", "Report", reconcile.ModeFull, now))
	assert.Equal(t, "ValidationReport_2026-08-28.xlsx",
		workbook.Filename("", "Report", reconcile.ModeFull, now))
	assert.Equal(t, "Model_Report_ColumnCheck_2026-08-28.xlsx",
		workbook.Filename("Model", "Report", reconcile.ModeStructureOnly, now))
	assert.Equal(t, "ColumnCheck_2026-08-28.xlsx",
		workbook.Filename("", "", reconcile.ModeStructureOnly, now))
}
