// config.go - environment-driven configuration

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every value the service reads from its environment.
type Config struct {
	Port       string
	MongoURI   string
	DBName     string
	JWTSecret  string
	CORSOrigin string

	// Image hosting (MinIO / S3-compatible).
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is picked up when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "4000"),
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getEnv("DB_NAME", "karigar"),
		JWTSecret:  getEnv("JWT_SECRET", "secret_ecom"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getEnv("MINIO_BUCKET", "product-images"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
