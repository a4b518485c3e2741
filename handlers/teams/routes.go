package teams

import (
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to teams and jury accounts
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	r.GET("/teams", GetAllTeams)

	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware(middleware.RoleAdmin))
	{
		teams.GET("/:id", GetTeam)
		teams.POST("/", CreateTeam)
		teams.PUT("/:id", UpdateTeam)
		teams.DELETE("/:id", DeleteTeam)
	}

	juries := r.Group("/juries")
	juries.Use(middleware.AuthMiddleware(middleware.RoleAdmin))
	{
		juries.GET("/", GetAllJuries)
		juries.POST("/", CreateJury)
		juries.DELETE("/:id", DeleteJury)
	}
}
