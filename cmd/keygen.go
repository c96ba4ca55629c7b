package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultport/vaultport/internal/crypto"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new base64-encoded record encryption key",
	Long: `Generate a random 256-bit AES key and print it base64-encoded.
Export it as CRYPTO_KEY before starting the server. Losing the key makes
previously uploaded batches undecryptable by tooling that shares it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := crypto.GenerateKey()
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}
		fmt.Println(key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
