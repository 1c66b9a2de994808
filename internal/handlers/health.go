package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdante/import-service/internal/database"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// HealthCheck handles the health check endpoint
// @Summary Health check
// @Description Reports service liveness and database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:  "ok",
		Service: ServiceName,
	}

	if database.Pool() == nil {
		response.Database = "not configured"
		c.JSON(http.StatusOK, response)
		return
	}

	if err := database.Status(c.Request.Context()); err != nil {
		response.Status = "degraded"
		response.Database = "disconnected"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.Database = "connected"

	c.JSON(http.StatusOK, response)
}
