// Package configs provides application configuration loaded from environment
// variables, with an optional .env file for local development.
package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all application configuration. Load it once at startup
// using AppLoad().
type AppConfig struct {
	// DBDSN is the ClickHouse connection string.
	DBDSN string

	// ServerPort is the API listen port.
	ServerPort string

	// SimInterval is the pause between simulation ticks.
	SimInterval time.Duration

	// APIRateLimit is the sustained API requests-per-second budget;
	// APIBurst is the token bucket size.
	APIRateLimit float64
	APIBurst     int
}

// AppLoad loads all configuration from environment variables. It attempts to
// read a .env file first. Call this once at application startup.
func AppLoad() *AppConfig {
	_ = godotenv.Load() // .env is optional

	return &AppConfig{
		DBDSN:        getDatabaseDSN(),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		SimInterval:  time.Duration(getEnvInt("SIM_INTERVAL_SECONDS", 5)) * time.Second,
		APIRateLimit: float64(getEnvInt("API_RATE_LIMIT", 50)),
		APIBurst:     getEnvInt("API_RATE_BURST", 100),
	}
}

// getDatabaseDSN composes the ClickHouse DSN from environment variables.
func getDatabaseDSN() string {
	dbUser := getEnv("CLICKHOUSE_USER", "default")
	dbPassword := getEnv("CLICKHOUSE_PASSWORD", "")
	dbHost := getEnv("CLICKHOUSE_HOST", "localhost")
	dbPort := getEnv("CLICKHOUSE_TCP_PORT", "9000")
	dbName := getEnv("CLICKHOUSE_DB", "pulseboard")

	return fmt.Sprintf(
		"clickhouse://%s:%s@%s:%s/%s?dial_timeout=10s&read_timeout=20s",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
