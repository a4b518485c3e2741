package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	auth := r.Group("/auth")
	{
		auth.POST("/admin/login", AdminLogin)
		auth.POST("/team/login", TeamLogin)
		auth.POST("/jury/login", JuryLogin)
		auth.POST("/logout", Logout)
		auth.GET("/check", CheckAuth)
	}
}
