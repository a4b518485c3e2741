package results

import (
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to results
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public: approved results only
	r.GET("/results", GetApprovedResults)

	jury := r.Group("/results")
	jury.Use(middleware.AuthMiddleware(middleware.RoleJury))
	{
		jury.POST("/", Submit)
	}

	admin := r.Group("/results")
	admin.Use(middleware.AuthMiddleware(middleware.RoleAdmin))
	{
		admin.GET("/pending", GetPendingResults)
		admin.GET("/export", ExportApprovedResultsExcel)
		admin.PUT("/:id/approve", Approve)
		admin.PUT("/:id/reject", Reject)
		admin.DELETE("/:id", Delete)
	}
}
