package v1

import (
	"fiesta/handlers/assignments"
	"fiesta/handlers/auth"
	"fiesta/handlers/live"
	"fiesta/handlers/programs"
	"fiesta/handlers/registrations"
	"fiesta/handlers/replacements"
	"fiesta/handlers/results"
	"fiesta/handlers/scoreboard"
	"fiesta/handlers/students"
	"fiesta/handlers/teams"
	"fiesta/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	teams.RegisterRoutes(v1)
	students.RegisterRoutes(v1)
	programs.RegisterRoutes(v1)
	registrations.RegisterRoutes(v1)
	replacements.RegisterRoutes(v1)
	results.RegisterRoutes(v1)
	scoreboard.RegisterRoutes(v1)
	assignments.RegisterRoutes(v1)
	live.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
