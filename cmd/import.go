package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultport/vaultport/internal/api"
	"github.com/vaultport/vaultport/internal/config"
	"github.com/vaultport/vaultport/internal/crypto"
	"github.com/vaultport/vaultport/internal/database"
	"github.com/vaultport/vaultport/internal/logging"
	"github.com/vaultport/vaultport/internal/services"
)

var (
	importFormat       string
	importOrganization string
	importPassword     string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a password manager export file into the vault",
	Long: `Parse a single export file, encrypt its records and upload them to
the vault API. The format tag selects the parser, see 'vaultport formats'
for the supported tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "export format tag (required)")
	importCmd.Flags().StringVarP(&importOrganization, "organization", "o", "", "organization ID for shared vault imports")
	importCmd.Flags().StringVarP(&importPassword, "password", "p", "", "password for encrypted export containers")
	_ = importCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()

	if cfg.Crypto.Key == "" {
		return fmt.Errorf("CRYPTO_KEY is not set, generate one with `vaultport keygen`")
	}
	encryptor, err := crypto.NewEncryptorFromBase64(cfg.Crypto.Key)
	if err != nil {
		return fmt.Errorf("invalid CRYPTO_KEY: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	log, err := logging.New("warn")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	service := services.NewImportService(
		crypto.NewRecordEncrypter(encryptor),
		api.NewClient(cfg.Vault.APIURL, cfg.Vault.Token),
		database.NewImportHistory(db.DB, log),
		log,
	)

	summary, err := service.Import(cmd.Context(), services.ImportRequest{
		Format:         importFormat,
		Data:           string(data),
		OrganizationID: importOrganization,
		Password:       importPassword,
	})
	if err != nil {
		var importErr *services.ImportError
		if errors.As(err, &importErr) && importErr.MissingPassword {
			return fmt.Errorf("%s (pass it with --password)", importErr.Message)
		}
		return err
	}

	fmt.Printf("Imported %d ciphers, %d folders, %d collections\n",
		summary.Ciphers, summary.Folders, summary.Collections)
	return nil
}
