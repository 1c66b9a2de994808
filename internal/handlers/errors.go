package handlers

import (
	"github.com/gin-gonic/gin"
)

// ServiceName is reported by the health endpoint
const ServiceName = "import-service"

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
