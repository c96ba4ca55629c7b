package http

import (
	"github.com/gin-gonic/gin"

	"github.com/vaultport/vaultport/internal/database"
	"github.com/vaultport/vaultport/internal/services"
)

// RouterConfig groups the dependencies the router needs. Using a
// config struct keeps NewRouter testable without threading a long
// parameter list through the entrypoint.
type RouterConfig struct {
	ImportService   *services.ImportService
	History         *database.ImportHistory
	Database        *database.Database
	Version         string
	MaxUploadSizeMB int
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	importController := NewImportController(cfg.ImportService, cfg.MaxUploadSizeMB)
	historyController := NewHistoryController(cfg.History)
	health := NewHealthController(cfg.Database, cfg.Version)

	router.POST("/api/import", importController.Import)
	router.GET("/api/formats", importController.Formats)
	router.GET("/api/history", historyController.List)

	router.GET("/healthz", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	return router
}
