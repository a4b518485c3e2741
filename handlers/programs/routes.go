package programs

import (
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to programs
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public catalog
	r.GET("/programs", GetAllPrograms)

	programs := r.Group("/programs")
	programs.Use(middleware.AuthMiddleware(middleware.RoleAdmin))
	{
		programs.POST("/", CreateProgram)
		programs.PUT("/:id", UpdateProgram)
		programs.DELETE("/:id", DeleteProgram)
	}
}
