package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aipulse/aipulse-cli/internal/report"
)

var (
	prevSrc  sourceFlags
	prevFlt  filterFlags
	prevRows int
)

var previewCmd = &cobra.Command{
	Use:   "preview [file.csv]",
	Short: "Show the first rows of the filtered canonical dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, baseRows, err := loadFiltered(cmd.Context(), &prevSrc, &prevFlt, args)
		if err != nil {
			return err
		}
		fmt.Printf("Filtered rows: %d of %d\n\n", ds.Len(), baseRows)
		fmt.Print(report.Preview(ds, prevRows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	prevSrc.register(previewCmd)
	prevFlt.register(previewCmd)
	previewCmd.Flags().IntVarP(&prevRows, "rows", "n", 10, "number of rows to show")
}
