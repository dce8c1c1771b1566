// Package config loads the process configuration from the environment.
// The resulting struct is constructed once in main and injected into the
// components that need it; nothing reads the environment after startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration.
type Config struct {
	Addr      string
	StaticDir string

	PostsDir  string
	JobsFile  string
	AuditPath string

	JWTSecret string
	TokenTTL  time.Duration

	AdminUsername     string
	AdminPasswordHash string

	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load reads configuration from the environment, applying defaults for
// optional values. A .env file in the working directory is honored.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:              getEnv("ADDR", ":8080"),
		StaticDir:         getEnv("STATIC_DIR", "static"),
		PostsDir:          getEnv("POSTS_DIR", "content/posts"),
		JobsFile:          getEnv("JOBS_FILE", "content/jobs.json"),
		AuditPath:         getEnv("AUDIT_DB_PATH", "data/audit"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenTTL:          getEnvDuration("TOKEN_TTL", 12*time.Hour),
		AdminUsername:     getEnv("ADMIN_USERNAME", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		LoginRateLimit:    getEnvInt("LOGIN_RATE_LIMIT", 5),
		LoginRateWindow:   getEnvDuration("LOGIN_RATE_WINDOW", time.Minute),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminUsername == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME is required")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
