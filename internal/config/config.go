// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration values for the application.
type Config struct {
	// HTTP
	ListenAddr string

	// Storage
	DBPath string

	// Metal prices
	MetalPriceURL       string
	MetalPriceAPIKey    string
	PriceCacheTTL       time.Duration
	FallbackGoldPrice   decimal.Decimal
	FallbackSilverPrice decimal.Decimal

	// Application
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		DBPath:     getEnv("DB_PATH", "zakat.db"),

		MetalPriceURL:       getEnv("METAL_PRICE_URL", ""),
		MetalPriceAPIKey:    getEnv("METAL_PRICE_API_KEY", ""),
		PriceCacheTTL:       getEnvDuration("PRICE_CACHE_TTL", 15*time.Minute),
		FallbackGoldPrice:   getEnvDecimal("FALLBACK_GOLD_PRICE", "75.00"),
		FallbackSilverPrice: getEnvDecimal("FALLBACK_SILVER_PRICE", "0.95"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves an environment variable as seconds or returns a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getEnvDecimal retrieves an environment variable as a decimal or parses the default.
func getEnvDecimal(key, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(defaultValue)
}
