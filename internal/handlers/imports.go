package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/verdante/import-service/internal/pipeline"
	"github.com/verdante/import-service/internal/types"
)

// DefaultMaxUploadBytes caps an uploaded import file
const DefaultMaxUploadBytes int64 = 20 << 20

// multipartSlack allows for the multipart envelope around the file part
const multipartSlack int64 = 1 << 20

// uploadField is the multipart field carrying the import file
const uploadField = "file"

// Importer runs imports and remembers their results
type Importer interface {
	ImportProducts(ctx context.Context, filename string, content []byte) (*types.ImportResult, error)
	ImportBlogPosts(ctx context.Context, filename string, content []byte) (*types.ImportResult, error)
	LastResult(kind types.EntityKind) (types.ImportResult, bool)
}

// ImportHandler serves the admin import endpoints.
// Only one import per entity kind runs at a time.
type ImportHandler struct {
	importer Importer
	maxBytes int64
	busy     map[types.EntityKind]*sync.Mutex
}

// NewImportHandler creates an import handler; maxBytes <= 0 uses DefaultMaxUploadBytes
func NewImportHandler(importer Importer, maxBytes int64) *ImportHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &ImportHandler{
		importer: importer,
		maxBytes: maxBytes,
		busy: map[types.EntityKind]*sync.Mutex{
			types.EntityProducts:  {},
			types.EntityBlogPosts: {},
		},
	}
}

// ImportProducts imports a product spreadsheet
// @Summary Import products
// @Description Parses a CSV, TSV or XLSX product file and persists every valid row
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Product file (.csv, .tsv, .xlsx)"
// @Success 200 {object} types.ImportResult
// @Failure 400 {object} ErrorResponse "Unreadable upload or file"
// @Failure 409 {object} ErrorResponse "Product import already running"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 422 {object} ErrorResponse "No valid records"
// @Router /admin/import/products [post]
func (h *ImportHandler) ImportProducts(c *gin.Context) {
	h.serveImport(c, types.EntityProducts, h.importer.ImportProducts)
}

// ImportBlogPosts imports a WordPress export
// @Summary Import blog posts
// @Description Parses a WordPress WXR export and persists every post
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "WordPress export (.xml)"
// @Success 200 {object} types.ImportResult
// @Failure 400 {object} ErrorResponse "Unreadable upload or document"
// @Failure 409 {object} ErrorResponse "Blog import already running"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 422 {object} ErrorResponse "No valid records"
// @Router /admin/import/blogs [post]
func (h *ImportHandler) ImportBlogPosts(c *gin.Context) {
	h.serveImport(c, types.EntityBlogPosts, h.importer.ImportBlogPosts)
}

// LastResult returns the most recent result for an entity kind
// @Summary Last import result
// @Description Returns the result of the most recent import of the given kind
// @Tags import
// @Produce json
// @Param entity path string true "Entity kind" Enums(products, blogs)
// @Success 200 {object} types.ImportResult
// @Failure 400 {object} ErrorResponse "Unknown entity"
// @Failure 404 {object} ErrorResponse "No import has run yet"
// @Router /admin/import/{entity}/last [get]
func (h *ImportHandler) LastResult(c *gin.Context) {
	kind, ok := types.ParseEntityKind(c.Param("entity"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Unknown entity: %s", c.Param("entity")))
		return
	}

	result, ok := h.importer.LastResult(kind)
	if !ok {
		abortWithError(c, http.StatusNotFound, fmt.Sprintf("No %s import has run yet", kind))
		return
	}
	c.JSON(http.StatusOK, result)
}

type importFunc func(ctx context.Context, filename string, content []byte) (*types.ImportResult, error)

func (h *ImportHandler) serveImport(c *gin.Context, kind types.EntityKind, run importFunc) {
	mu := h.busy[kind]
	if !mu.TryLock() {
		abortWithError(c, http.StatusConflict, fmt.Sprintf("A %s import is already running", kind))
		return
	}
	defer mu.Unlock()

	filename, content, status, err := h.readUpload(c)
	if err != nil {
		abortWithError(c, status, err.Error())
		return
	}

	result, err := run(c.Request.Context(), filename, content)
	switch {
	case errors.Is(err, pipeline.ErrNoRecords):
		abortWithError(c, http.StatusUnprocessableEntity, "No valid records found in file")
		return
	case err != nil:
		log.Warn().Err(err).Str("entity", string(kind)).Str("filename", filename).Msg("Import rejected")
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Failed to parse file: %v", err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// readUpload returns the uploaded file, or the status and error to respond with
func (h *ImportHandler) readUpload(c *gin.Context) (string, []byte, int, error) {
	limit := h.maxBytes + multipartSlack
	if c.Request.ContentLength > limit {
		return "", nil, http.StatusRequestEntityTooLarge, h.tooLarge()
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	header, err := c.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, http.StatusRequestEntityTooLarge, h.tooLarge()
		}
		return "", nil, http.StatusBadRequest, fmt.Errorf("multipart field %q is required: %w", uploadField, err)
	}
	if header.Size > h.maxBytes {
		return "", nil, http.StatusRequestEntityTooLarge, h.tooLarge()
	}

	file, err := header.Open()
	if err != nil {
		return "", nil, http.StatusBadRequest, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		return "", nil, http.StatusBadRequest, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > h.maxBytes {
		return "", nil, http.StatusRequestEntityTooLarge, h.tooLarge()
	}
	return header.Filename, content, http.StatusOK, nil
}

func (h *ImportHandler) tooLarge() error {
	return fmt.Errorf("file exceeds the %d byte upload limit", h.maxBytes)
}
