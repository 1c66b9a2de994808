package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/verdante/import-service/internal/settings"
)

// maxSettingsBytes caps a settings request body
const maxSettingsBytes = 64 << 10

// SettingsStore loads and saves settings sections
type SettingsStore interface {
	GetSettings(ctx context.Context, name settings.SectionName) (settings.Section, error)
	PutSettings(ctx context.Context, section settings.Section) error
}

// SettingsHandler serves the site settings sections
type SettingsHandler struct {
	store SettingsStore
}

// NewSettingsHandler creates a settings handler
func NewSettingsHandler(store SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// Get returns one settings section
// @Summary Get settings section
// @Description Returns a settings section, or its defaults when it was never saved
// @Tags settings
// @Produce json
// @Param section path string true "Section name" Enums(store, shipping, social, seo)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Unknown section"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/settings/{section} [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	name, err := settings.ParseName(c.Param("section"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}

	section, err := h.store.GetSettings(c.Request.Context(), name)
	if err != nil {
		log.Error().Err(err).Str("section", string(name)).Msg("Failed to load settings")
		abortWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, section)
}

// Put replaces one settings section
// @Summary Update settings section
// @Description Validates and saves a settings section; fields left out keep their defaults
// @Tags settings
// @Accept json
// @Produce json
// @Param section path string true "Section name" Enums(store, shipping, social, seo)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Invalid settings"
// @Failure 404 {object} ErrorResponse "Unknown section"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/settings/{section} [put]
func (h *SettingsHandler) Put(c *gin.Context) {
	name, err := settings.ParseName(c.Param("section"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSettingsBytes))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	section, err := settings.Decode(name, raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.PutSettings(c.Request.Context(), section); err != nil {
		if errors.Is(err, settings.ErrInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("section", string(name)).Msg("Failed to save settings")
		abortWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, section)
}
