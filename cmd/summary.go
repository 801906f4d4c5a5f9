package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aipulse/aipulse-cli/internal/report"
	"github.com/aipulse/aipulse-cli/internal/schema"
	"github.com/aipulse/aipulse-cli/internal/utils"
)

var (
	sumSrc        sourceFlags
	sumFlt        filterFlags
	sumOutputPath string
	sumGroupBy    string
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file.csv]",
	Short: "Summarize the survey: KPIs, frequency tables, contingency table",
	Example: `  aipulse summary survey.csv
  aipulse summary survey.csv --age 18-24,25-34 --gender Female
  aipulse summary --db warehouse.sqlite --table ai_survey
  aipulse summary survey.csv --group-by EDUCATION_LEVEL`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, baseRows, err := loadFiltered(cmd.Context(), &sumSrc, &sumFlt, args)
		if err != nil {
			return err
		}
		md := report.Summary(ds, baseRows)
		if sumGroupBy != "" {
			col := sumGroupBy
			if f, ok := schema.NormalizeName(col); ok {
				col = string(f)
			}
			md += "\n" + report.GroupMeans(ds, col)
		}
		if sumOutputPath != "" {
			if err := utils.SafeWriteFile(sumOutputPath, []byte(md)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote summary to %s\n", sumOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	sumSrc.register(summaryCmd)
	sumFlt.register(summaryCmd)
	summaryCmd.Flags().StringVarP(&sumOutputPath, "output", "o", "", "optional path to write the summary (Markdown)")
	summaryCmd.Flags().StringVar(&sumGroupBy, "group-by", "", "append mean rating per value of this column")
}
