package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Vault
		Crypto
		Database
		History
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}

	// Vault points at the server receiving encrypted import batches.
	Vault struct {
		APIURL string
		Token  string
	}

	// Crypto configures the record encryption key. Key is a
	// base64-encoded 32-byte AES key; generate one with `vaultport keygen`.
	Crypto struct {
		Key string
	}

	Database struct {
		Path string
	}

	History struct {
		RetentionDays int
		PurgeSchedule string // Cron format: "0 3 * * *" = daily at 03:00
	}

	Global struct {
		ShutdownTimeoutInSeconds int
		MaxUploadSizeMB          int
	}
)

const DefaultDatabasePath = "./vaultport.db"

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("max_upload_size_mb", 50)
	v.SetDefault("vault_api_url", "http://localhost:4000/api")
	v.SetDefault("vault_api_token", "")
	v.SetDefault("crypto_key", "")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("history_retention_days", 30)
	v.SetDefault("history_purge_schedule", "0 3 * * *") // Daily at 03:00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Vault: Vault{
			APIURL: v.GetString("VAULT_API_URL"),
			Token:  v.GetString("VAULT_API_TOKEN"),
		},
		Crypto: Crypto{
			Key: v.GetString("CRYPTO_KEY"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		History: History{
			RetentionDays: v.GetInt("HISTORY_RETENTION_DAYS"),
			PurgeSchedule: v.GetString("HISTORY_PURGE_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			MaxUploadSizeMB:          v.GetInt("MAX_UPLOAD_SIZE_MB"),
		},
	}
}
