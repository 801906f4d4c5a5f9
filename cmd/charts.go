package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aipulse/aipulse-cli/internal/report"
)

var (
	chartsSrc  sourceFlags
	chartsFlt  filterFlags
	chartsJSON bool
)

var chartsCmd = &cobra.Command{
	Use:   "charts [file.csv]",
	Short: "Emit chart-ready tables (histogram, bar, pie, heatmap shapes)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, _, err := loadFiltered(cmd.Context(), &chartsSrc, &chartsFlt, args)
		if err != nil {
			return err
		}
		tables := report.Charts(ds)
		if chartsJSON {
			b, err := json.MarshalIndent(tables, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal charts: %w", err)
			}
			fmt.Println(string(b))
			return nil
		}
		for _, t := range tables {
			fmt.Printf("[%s] %s\n", t.Kind, t.Title)
			if t.Grid != nil {
				fmt.Print(report.RenderMatrix(*t.Grid))
			}
			for _, p := range t.Pairs {
				fmt.Printf("  - %s: %d\n", p.Value, p.Count)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsSrc.register(chartsCmd)
	chartsFlt.register(chartsCmd)
	chartsCmd.Flags().BoolVar(&chartsJSON, "json", false, "emit tables as JSON for an external renderer")
}
