package replacements

import (
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to replacement requests
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	replacements := r.Group("/replacements")
	replacements.Use(middleware.AuthMiddleware(middleware.RoleTeam, middleware.RoleAdmin))
	{
		replacements.GET("/", GetReplacementRequests)
		replacements.POST("/", Submit)
	}

	admin := r.Group("/replacements")
	admin.Use(middleware.AuthMiddleware(middleware.RoleAdmin))
	{
		admin.PUT("/:id/approve", Approve)
		admin.PUT("/:id/reject", Reject)
	}
}
