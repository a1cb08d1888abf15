package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// MongoDB
	MongoURL         string
	DatabaseName     string
	MongoMaxPoolSize uint64
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8000"),
		MongoURL:         getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName:     getEnv("DATABASE_NAME", "vehicles_db"),
		MongoMaxPoolSize: getEnvUint("MONGO_MAX_POOL_SIZE", 100),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
