package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultport/vaultport/internal/importers"
	"github.com/vaultport/vaultport/internal/services"
)

type ImportController struct {
	service       *services.ImportService
	maxUploadSize int64
}

func NewImportController(service *services.ImportService, maxUploadSizeMB int) *ImportController {
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = 50
	}
	return &ImportController{
		service:       service,
		maxUploadSize: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

type ImportResponse struct {
	Success         bool                    `json:"success"`
	Error           string                  `json:"error,omitempty"`
	MissingPassword bool                    `json:"missing_password,omitempty"`
	Summary         *services.ImportSummary `json:"summary,omitempty"`
}

// Import handles POST /api/import: a multipart upload with the export
// file plus format, organization_id and password form fields.
func (c *ImportController) Import(ctx *gin.Context) {
	format := ctx.PostForm("format")
	if format == "" {
		ctx.JSON(http.StatusBadRequest, &ImportResponse{Error: "format not provided"})
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, &ImportResponse{Error: "export file not provided"})
		return
	}
	defer file.Close()

	if header.Size > c.maxUploadSize {
		ctx.JSON(http.StatusBadRequest, &ImportResponse{
			Error: fmt.Sprintf("file too large (max %d MB)", c.maxUploadSize/(1024*1024)),
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, c.maxUploadSize))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, &ImportResponse{Error: "failed to read uploaded file"})
		return
	}

	summary, err := c.service.Import(ctx.Request.Context(), services.ImportRequest{
		Format:         format,
		Data:           string(data),
		OrganizationID: ctx.PostForm("organization_id"),
		Password:       ctx.PostForm("password"),
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &ImportResponse{Success: true, Summary: summary})
}

func (c *ImportController) renderError(ctx *gin.Context, err error) {
	if errors.Is(err, importers.ErrUnknownFormat) {
		ctx.JSON(http.StatusBadRequest, &ImportResponse{Error: "unsupported format tag"})
		return
	}

	var importErr *services.ImportError
	if errors.As(err, &importErr) {
		ctx.JSON(http.StatusUnprocessableEntity, &ImportResponse{
			Error:           importErr.Message,
			MissingPassword: importErr.MissingPassword,
		})
		return
	}

	ctx.JSON(http.StatusBadGateway, &ImportResponse{Error: err.Error()})
}

// Formats handles GET /api/formats.
func (c *ImportController) Formats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"formats": c.service.Formats()})
}
