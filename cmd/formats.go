package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultport/vaultport/internal/importers"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported export format tags",
	Run: func(cmd *cobra.Command, args []string) {
		for _, format := range importers.Formats() {
			fmt.Println(format)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
