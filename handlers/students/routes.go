package students

import (
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to students
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public roster
	r.GET("/students", GetAllStudents)

	students := r.Group("/students")
	students.Use(middleware.AuthMiddleware(middleware.RoleTeam, middleware.RoleAdmin))
	{
		students.POST("/", CreateStudent)
		students.PUT("/:id", UpdateStudent)
		students.DELETE("/:id", DeleteStudent)
	}
}
