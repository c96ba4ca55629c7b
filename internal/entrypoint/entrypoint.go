package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vaultport/vaultport/internal/api"
	"github.com/vaultport/vaultport/internal/config"
	"github.com/vaultport/vaultport/internal/crypto"
	"github.com/vaultport/vaultport/internal/database"
	http_controllers "github.com/vaultport/vaultport/internal/http"
	"github.com/vaultport/vaultport/internal/logging"
	"github.com/vaultport/vaultport/internal/scheduler"
	"github.com/vaultport/vaultport/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, log *zap.Logger, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info("starting server", zap.String("host", cfg.HTTP.Host), zap.Int32("port", cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT.
	// SIGKILL cannot be caught, no point registering it.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g. to stop the purge scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}

	log.Info("server exiting")
}

// Run wires the full import pipeline and serves it over HTTP.
func Run(cfg *config.Config, version string) {
	log, err := logging.New("info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting vaultport", zap.String("version", version))

	if cfg.Crypto.Key == "" {
		log.Fatal("CRYPTO_KEY is not set, generate one with `vaultport keygen`")
	}

	encryptor, err := crypto.NewEncryptorFromBase64(cfg.Crypto.Key)
	if err != nil {
		log.Fatal("invalid CRYPTO_KEY", zap.Error(err))
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	history := database.NewImportHistory(db.DB, log)

	vaultClient := api.NewClient(cfg.Vault.APIURL, cfg.Vault.Token)
	service := services.NewImportService(
		crypto.NewRecordEncrypter(encryptor),
		vaultClient,
		history,
		log,
	)

	purge := scheduler.NewHistoryPurgeScheduler(history, cfg.History.RetentionDays, cfg.History.PurgeSchedule, log)
	if err := purge.Start(context.Background()); err != nil {
		log.Fatal("failed to start purge scheduler", zap.Error(err))
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		ImportService:   service,
		History:         history,
		Database:        db,
		Version:         version,
		MaxUploadSizeMB: cfg.Global.MaxUploadSizeMB,
	})

	Serve(router, cfg, log, func(ctx context.Context) {
		purge.Stop()
	})
}
