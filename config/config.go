package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	JWTSecret string
	UploadDir string

	DefaultAdminPassword string
	AllowedOrigins       string
)

// Load reads the .env file if present and populates the configuration from the
// environment. Defaults target a local development setup.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	Port = getEnv("PORT", "8080")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "ctf_db")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "jwt-secret-key-change-in-production")
	UploadDir = getEnv("UPLOAD_DIR", "uploads")

	DefaultAdminPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
	AllowedOrigins = getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
