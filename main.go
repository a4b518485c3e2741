package main

import (
	"log"
	"time"

	"fiesta/config"
	"fiesta/database"
	_ "fiesta/docs"
	"fiesta/middleware"
	"fiesta/realtime"
	v1 "fiesta/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Fiesta API
// @version 1.0
// @description Arts festival management API covering teams, candidate registration, jury results and a live scoreboard
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	gin.SetMode(config.GinMode)

	database.InitDB()

	if config.RedisAddr != "" {
		realtime.InitRedisBridge(config.RedisAddr, config.RedisPassword)
	}

	// Periodically refresh the system gauges
	middleware.UpdateSystemMetrics()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CorsOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Listening on :%s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
