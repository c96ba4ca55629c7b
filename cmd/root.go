package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "vaultport",
	Short: "Vaultport - import credentials from password manager exports into your vault",
	Long: `Vaultport parses export files from password managers (Chrome, Firefox,
LastPass, 1Password, KeePass, Dashlane and others), converts them into a
canonical cipher model, encrypts the sensitive fields and uploads the
result to the vault API in ordered batches.

Configuration is read from environment variables (VAULT_API_URL,
VAULT_API_TOKEN, CRYPTO_KEY, DATABASE_PATH, ...).`,
}

func Execute() error {
	rootCmd.Version = Version
	return rootCmd.Execute()
}
