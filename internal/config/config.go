package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	ServerPort string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	// Seed admin credentials. AdminPassword is the raw password; the
	// client-side digest and at-rest hash are derived on startup.
	AdminUsername string
	AdminPassword string
	AdminEmail    string

	MinioEnabled   bool
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTLSecs  int

	AmqpURL      string
	EventsEnable bool

	AuditRetentionDays int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "ticketdesk")
	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "ticketdesk")

	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "admin123")
	AdminEmail = getEnv("ADMIN_EMAIL", "admin@ticketdesk.local")

	MinioEnabled = getEnvBool("MINIO_ENABLED", false)
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioUseSSL = getEnvBool("MINIO_USE_SSL", false)
	MinioBucket = getEnv("MINIO_BUCKET", "ticket-attachments")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvInt("REDIS_DB", 0)
	CacheTTLSecs = getEnvInt("CACHE_TTL_SECONDS", 5)

	AmqpURL = getEnv("RABBITMQ_URL", "")
	EventsEnable = AmqpURL != ""

	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 30)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
