package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crosscheck-io/crosscheck/pkg/reconcile"
)

// validateCmd runs the full reconciliation: aggregation, key alignment,
// presence classification, and per-measure diffs.
var validateCmd = &cobra.Command{
	Use:   "validate <workbook.xlsx>",
	Short: "Reconcile the source and target sheets of a workbook",
	Long: `Validate reconciles the data of the source and target sheets.

Both sheets are aggregated over shared dimension columns, joined on a
case-normalized composite key, and compared measure by measure. The result
is previewed on the terminal and exported as an xlsx validation report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0], reconcile.ModeFull)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
