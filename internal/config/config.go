package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultCatalogName = "My Library"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

type Config struct {
	CatalogName string
	LogLevel    string
	LogFormat   string
}

// Load reads .env and .env.local from the working directory, then the
// process environment.
func Load() Config {
	loadEnvFiles()
	return Config{
		CatalogName: getEnv("CATALOG_NAME", defaultCatalogName),
		LogLevel:    getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", defaultLogFormat),
	}
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
