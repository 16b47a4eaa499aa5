package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck GET /api/health_check
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "Health OK")
}
