package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aipulse/aipulse-cli/internal/report"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List canonical survey fields and their raw header forms",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(report.FieldCatalog())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
