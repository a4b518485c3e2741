package registrations

import (
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to program registrations and
// the registration schedule
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// The schedule itself is public so portals can show the window state
	r.GET("/registrations/schedule", GetSchedule)

	registrations := r.Group("/registrations")
	registrations.Use(middleware.AuthMiddleware(middleware.RoleTeam, middleware.RoleAdmin))
	{
		registrations.GET("/", GetRegistrations)
		registrations.POST("/", Register)
		registrations.DELETE("/:id", Remove)
	}

	admin := r.Group("/registrations")
	admin.Use(middleware.AuthMiddleware(middleware.RoleAdmin))
	{
		admin.PUT("/schedule", UpdateSchedule)
	}
}
