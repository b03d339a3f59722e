package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DatabaseDSN   string
	SessionSecret string
	GinMode       string
	LogLevel      string
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development. A .env file is honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "file::memory:?cache=shared"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
