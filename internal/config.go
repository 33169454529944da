package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCatalogURL is the canonical ema-john products feed.
const DefaultCatalogURL = "https://raw.githubusercontent.com/MDAnwarHossen/ema-john/refs/heads/main/products.json"

type Config struct {
	Env            string
	LogLevel       string
	Port           uint16
	CatalogURL     string
	CatalogTimeout time.Duration
	AllowedOrigins []string
	ViewportWidth  int
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:            getEnv("ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnvInt("PORT", 3000),
		CatalogURL:     getEnv("CATALOG_URL", DefaultCatalogURL),
		CatalogTimeout: time.Duration(getEnvInt("CATALOG_TIMEOUT_SECONDS", 8)) * time.Second,
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		ViewportWidth:  int(getEnvInt("DEFAULT_VIEWPORT_WIDTH", 1000)),
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.CatalogURL == "" {
		return nil, fmt.Errorf("CATALOG_URL must not be empty")
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated origin list, dropping empty entries.
func splitOrigins(value string) []string {
	var origins []string
	for _, o := range strings.Split(value, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
