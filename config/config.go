package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

var (
	APP_NAME     string
	PORT         string
	DB_URL       string
	STORE_DRIVER string
	CORS_ORIGINS []string
	GIN_MODE     string

	LOG_LEVEL string
	LOG_JSON  bool

	FLUENTBIT_ENABLED bool
	FLUENTBIT_HOST    string
	FLUENTBIT_PORT    int
	FLUENTBIT_LEVEL   string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	APP_NAME = getEnv("APP_NAME", "artgallery-api")
	PORT = getEnv("PORT", "8080")
	GIN_MODE = getEnv("GIN_MODE", "debug")

	STORE_DRIVER = strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres))
	switch STORE_DRIVER {
	case DriverPostgres:
		DB_URL = mustEnv("DB_URL")
	case DriverMemory:
		DB_URL = getEnv("DB_URL", "")
	default:
		log.Fatalf("Unknown STORE_DRIVER %q (want %q or %q)", STORE_DRIVER, DriverPostgres, DriverMemory)
	}

	CORS_ORIGINS = getEnvAsList("CORS_ORIGINS", defaultCORSOrigins)

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_JSON = getEnvAsBool("LOG_JSON", false)

	FLUENTBIT_ENABLED = getEnvAsBool("FLUENTBIT_ENABLED", false)
	FLUENTBIT_HOST = getEnv("FLUENTBIT_HOST", "")
	FLUENTBIT_PORT = getEnvAsInt("FLUENTBIT_PORT", 24224)
	FLUENTBIT_LEVEL = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	if FLUENTBIT_ENABLED && FLUENTBIT_HOST == "" {
		log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
		FLUENTBIT_ENABLED = false
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	v, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: %s=%q is not an int, using %d", key, valueStr, fallback)
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	v, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: %s=%q is not a bool, using %t", key, valueStr, fallback)
		return fallback
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping blanks.
func getEnvAsList(key string, fallback []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
