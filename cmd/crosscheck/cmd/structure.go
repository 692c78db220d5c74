package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crosscheck-io/crosscheck/pkg/reconcile"
)

// structureCmd compares column layouts only, for workbooks that carry the
// report structure but no data yet.
var structureCmd = &cobra.Command{
	Use:   "structure <workbook.xlsx>",
	Short: "Compare column names of the source and target sheets",
	Long: `Structure pairs the source and target columns position by position
and flags mismatches, without aggregating or diffing any data. The result is
exported as an xlsx column-check report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0], reconcile.ModeStructureOnly)
	},
}

func init() {
	rootCmd.AddCommand(structureCmd)
}
