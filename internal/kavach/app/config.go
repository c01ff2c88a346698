package app

import (
	"os"
	"strconv"
	"time"

	"github.com/sevasetu/kavach/pkg/jwtx"
)

type Config struct {
	Issuer           string        // Issuer claim for access tokens
	DatabaseFile     string        // Path to the SQLite database file (default: ./kavach.db)
	FallbackDir      string        // Path to the badger fallback profile store (default: ./kavach-fallback)
	PepperFile       string        // Path to the password hashing pepper file (default: ./pepper)
	EmergencyContact string        // Helpline shown in the analytics summary
	AccessTTL        time.Duration // Access token lifetime (default: 15m)
	RefreshTTL       time.Duration // Refresh token lifetime (default: 7d)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("KAVACH_ISSUER", "kavach"),
		DatabaseFile:         getEnvOrDefault("KAVACH_DATABASE_FILE", "kavach.db"),
		FallbackDir:          getEnvOrDefault("KAVACH_FALLBACK_DIR", "kavach-fallback"),
		PepperFile:           getEnvOrDefault("KAVACH_PEPPER_FILE", "pepper"),
		EmergencyContact:     getEnvOrDefault("KAVACH_EMERGENCY_CONTACT", "1800-180-1947"),
		AccessTTL:            getEnvDurationOrDefault("KAVACH_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTTL:           getEnvDurationOrDefault("KAVACH_REFRESH_TTL", jwtx.DefaultRefreshTokenTTL),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
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
