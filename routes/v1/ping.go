package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Description Check that the API is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// RegisterPingRoutes registers the health check route
func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", ping)
}
