// Package config centralises configuration parsing for the activities service.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress string
	StaticDir   string
	SeedFile    string // optional TOML catalogue replacing the built-in seed
	CORSOrigin  string
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev. A .env file is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:   getEnv("STATIC_DIR", "web/static"),
		SeedFile:    getEnv("SEED_FILE", ""),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
