package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// StorageDriver selects the key-value backend the store persists to.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StorageFile     StorageDriver = "file"
	StorageSQLite   StorageDriver = "sqlite"
	StoragePostgres StorageDriver = "postgres"
	StorageRedis    StorageDriver = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string

	// Storage configuration
	StorageDriver StorageDriver
	StoragePath   string // file dir or sqlite path
	PostgresDSN   string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Image hosting
	S3Enabled bool
}

// LoadConfig creates a Config from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		StorageDriver: StorageDriver(getEnv("STORAGE_DRIVER", "file")),
		StoragePath:   getEnv("STORAGE_PATH", "./data"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		S3Enabled:     os.Getenv("S3_BUCKET_NAME") != "",
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if cfg.JWTSecret == "" {
		if file := os.Getenv("JWT_SECRET_FILE"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read JWT secret file: %w", err)
			}
			cfg.JWTSecret = strings.TrimSpace(string(data))
		}
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET or JWT_SECRET_FILE must be set")
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageFile, StorageSQLite, StoragePostgres, StorageRedis:
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
	if cfg.StorageDriver == StoragePostgres && cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required with the postgres storage driver")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
