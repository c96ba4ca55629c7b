package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vaultport/vaultport/internal/database"
)

type HistoryController struct {
	history *database.ImportHistory
}

func NewHistoryController(history *database.ImportHistory) *HistoryController {
	return &HistoryController{history: history}
}

// List handles GET /api/history with optional limit/offset query
// parameters.
func (c *HistoryController) List(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	records, total, err := c.history.List(limit, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load import history"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"records": records,
		"total":   total,
	})
}
