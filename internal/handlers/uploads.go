package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/verdante/import-service/internal/storage"
	"github.com/verdante/import-service/internal/types"
)

// ListUploadsResponse lists archived upload files
type ListUploadsResponse struct {
	Uploads []storage.FileInfo `json:"uploads"`
	Total   int                `json:"total"`
}

// UploadsHandler serves the upload archive
type UploadsHandler struct {
	archive storage.Storage
}

// NewUploadsHandler creates an uploads handler; a nil archive lists nothing
func NewUploadsHandler(archive storage.Storage) *UploadsHandler {
	return &UploadsHandler{archive: archive}
}

// List returns archived uploads, optionally for one entity kind
// @Summary List archived uploads
// @Description Returns every archived import file with its metadata
// @Tags import
// @Produce json
// @Param entity query string false "Filter by entity kind" Enums(products, blogs)
// @Success 200 {object} ListUploadsResponse
// @Failure 400 {object} ErrorResponse "Unknown entity"
// @Failure 500 {object} ErrorResponse "Archive unavailable"
// @Router /admin/import/uploads [get]
func (h *UploadsHandler) List(c *gin.Context) {
	prefix := "uploads/"
	if entity := c.Query("entity"); entity != "" {
		kind, ok := types.ParseEntityKind(entity)
		if !ok {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Unknown entity: %s", entity))
			return
		}
		prefix += string(kind) + "/"
	}

	response := ListUploadsResponse{Uploads: []storage.FileInfo{}}
	if h.archive == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	files, err := h.archive.List(c.Request.Context(), prefix)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("Failed to list uploads")
		abortWithError(c, http.StatusInternalServerError, "Failed to list uploads")
		return
	}
	response.Uploads = append(response.Uploads, files...)
	response.Total = len(files)

	c.JSON(http.StatusOK, response)
}
