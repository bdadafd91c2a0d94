package respond

import (
	"github.com/gin-gonic/gin"

	"resume-checker/internal/shared/telemetry"
)

// ErrorBody is the error payload returned for every failed request.
type ErrorBody struct {
	Message string `json:"message"`
}

// Error logs and sends a standardized error response.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}
