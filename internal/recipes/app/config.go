package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Secret string // Required: shared HMAC secret for signing both token kinds
	Issuer string // Optional: issuer claim for tokens (default: recipebook)

	StoreBackend string // Optional: store backend (sqlite, jsonfile) (default: sqlite)
	DatabaseFile string // Optional: path to SQLite database file (default: ./recipes.db)
	DataDir      string // Optional: directory for JSON file storage (default: ./data)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Secret:              os.Getenv("RECIPES_SECRET"),
		Issuer:              getEnvOrDefault("RECIPES_ISSUER", "recipebook"),
		StoreBackend:        getEnvOrDefault("RECIPES_STORE", "sqlite"),
		DatabaseFile:        getEnvOrDefault("RECIPES_DATABASE_FILE", "recipes.db"),
		DataDir:             getEnvOrDefault("RECIPES_DATA_DIR", "data"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
