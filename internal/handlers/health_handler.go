package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness plus whether an AI client is configured, so
// the UI can warn that results will come from the fallback catalogue.
func HealthCheck(aiConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"aiConfigured": aiConfigured,
		})
	}
}
