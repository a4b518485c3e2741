package assignments

import (
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the jury assignment routes
func RegisterRoutes(r *gin.RouterGroup) {
	assignments := r.Group("/assignments")
	{
		assignments.GET("/", GetAssignments)

		admin := assignments.Group("/")
		admin.Use(middleware.AuthMiddleware(middleware.RoleAdmin))
		{
			admin.POST("/", CreateAssignment)
			admin.DELETE("/:id", DeleteAssignment)
		}
	}
}
