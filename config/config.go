package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	ServerPort string
	JWTSecret  string

	// DefaultAdminPassword overrides the seeded admin password when set
	DefaultAdminPassword string

	// StudentCodePrefix is the prefix of generated student codes (RV2025001, ...)
	StudentCodePrefix string
)

// LoadConfig reads the .env file (if present) and fills the package-level
// configuration variables from the environment
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "festival")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "festival")
	PostgresDB = getEnv("POSTGRES_DB", "festival")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	ServerPort = getEnv("SERVER_PORT", "8080")
	JWTSecret = getEnv("JWT_SECRET", "festival-secret")

	DefaultAdminPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
	StudentCodePrefix = getEnv("STUDENT_CODE_PREFIX", "RV2025")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
