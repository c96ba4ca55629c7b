package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vaultport/vaultport/internal/config"
	"github.com/vaultport/vaultport/internal/entrypoint"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP import server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
