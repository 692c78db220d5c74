package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crosscheck-io/crosscheck/internal/cmd/output"
	"github.com/crosscheck-io/crosscheck/internal/workbook"
	"github.com/crosscheck-io/crosscheck/pkg/logging"
	"github.com/crosscheck-io/crosscheck/pkg/reconcile"
)

// run executes the reconciliation pipeline for one workbook in the given
// mode, previews the result, and exports the report workbook.
func run(cmd *cobra.Command, workbookPath string, mode reconcile.Mode) error {
	ctx := logging.WithWorkbook(cmd.Context(), workbookPath)
	log := logging.FromContext(ctx)

	sourceSheet := viper.GetString("source-sheet")
	targetSheet := viper.GetString("target-sheet")

	sheets, err := workbook.Read(workbookPath)
	if err != nil {
		return err
	}
	source, target, err := workbook.Pair(sheets, filepath.Base(workbookPath), sourceSheet, targetSheet)
	if err != nil {
		return err
	}

	// Text cells are compared upper-cased and trimmed on both sides.
	source = source.Clean()
	target = target.Clean()

	r := reconcile.New(
		reconcile.WithLabels(sourceSheet, targetSheet),
		reconcile.WithMode(mode),
	)
	result, err := r.Run(ctx, source, target)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	if err := preview(result, output.DetectFormat(string(format)), sourceSheet, targetSheet); err != nil {
		return err
	}

	outPath := exportPath(mode)
	if err := workbook.Write(outPath, result, source, target, sourceSheet, targetSheet); err != nil {
		return err
	}

	log.Info().Str("output", outPath).Msg(result.String())
	return nil
}

// preview renders the result to stdout. Table format shows the report
// tables; json and yaml emit the whole result.
func preview(result *reconcile.Result, format output.Format, sourceLabel, targetLabel string) error {
	formatter := output.NewFormatter(format)

	if format != output.FormatTable {
		return formatter.Format(os.Stdout, result)
	}

	var tables []output.Data
	if result.Report != nil {
		tables = append(tables, output.ReportData(result.Report, sourceLabel, targetLabel))
		tables = append(tables, output.SummaryData(result.Summary))
	}
	tables = append(tables, output.ColumnsData(result.Columns))

	for _, data := range tables {
		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}
	}
	return nil
}

// exportPath resolves the output workbook path from the --out flag; a
// directory (or no flag) gets the generated date-stamped filename.
func exportPath(mode reconcile.Mode) string {
	name := workbook.Filename(viper.GetString("model"), viper.GetString("report"), mode, time.Now())

	out := viper.GetString("out")
	if out == "" {
		return name
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, name)
	}
	if strings.HasSuffix(out, string(os.PathSeparator)) {
		return filepath.Join(out, name)
	}
	return out
}
