package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Server
	Port        string
	GinMode     string
	CorsOrigins string

	// Postgres
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Redis (optional realtime fanout between API instances)
	RedisAddr     string
	RedisPassword string

	// Auth
	JWTSecret     string
	AdminUsername string
	AdminPassword string
)

// LoadConfig reads the environment (optionally from a .env file) into the
// package level variables
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	Port = getEnv("PORT", "8080")
	GinMode = getEnv("GIN_MODE", "debug")
	CorsOrigins = getEnv("CORS_ORIGINS", "http://localhost:3000")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "fiesta")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "fiesta")
	PostgresDB = getEnv("POSTGRES_DB", "fiesta")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "")
	if JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")
	if AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
