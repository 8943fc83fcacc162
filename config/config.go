// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend names accepted by LEDGER_STORAGE.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSqlite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Environment string
	Storage     StorageConfig
	Redis       RedisConfig
	Sqlite      SqliteConfig
}

// StorageConfig selects the key-value backend the ledger persists to.
type StorageConfig struct {
	Backend string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// SqliteConfig holds the on-device sqlite configuration.
type SqliteConfig struct {
	Path string
}

// Load loads configuration from environment variables. A .env file is picked
// up when present (development only).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("LEDGER_ENV", "development"),
		Storage: StorageConfig{
			Backend: getEnv("LEDGER_STORAGE", StorageSqlite),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Sqlite: SqliteConfig{
			Path: getEnv("LEDGER_SQLITE_PATH", "ledger.db"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
