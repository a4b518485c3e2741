package scoreboard

import (
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the scoreboard routes
func RegisterRoutes(r *gin.RouterGroup) {
	board := r.Group("/scoreboard")
	{
		board.GET("/", GetScoreboard)
		board.GET("/export", middleware.AuthMiddleware(middleware.RoleAdmin), ExportScoreboardExcel)
	}
}
