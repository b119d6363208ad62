package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN builds the lib/pq connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// Config fairchance-workflow (HTTP API) configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	Database DatabaseConfig
	Redis    struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	Events struct {
		// Stream is the Redis Stream workflow events are published to
		Stream string
	}
	CrisisWebhook CrisisWebhookConfig
	// SeedDevData enables POST /api/v1/dev/seed and startup token seeding
	SeedDevData bool
}

// CrisisWebhookConfig outbound alert settings for crisis progress notes
type CrisisWebhookConfig struct {
	Enabled        bool   // default false
	URL            string // webhook endpoint receiving crisis note alerts
	TimeoutSeconds int
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "fairchance")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	// Default to true for local dev: token lookup and the event stream fall
	// back to in-process implementations when Redis is unavailable.
	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Events.Stream = getEnv("EVENTS_STREAM", "fairchance:workflow:events")

	cfg.CrisisWebhook.Enabled = getEnv("CRISIS_WEBHOOK_ENABLED", "false") == "true"
	cfg.CrisisWebhook.URL = getEnv("CRISIS_WEBHOOK_URL", "")
	cfg.CrisisWebhook.TimeoutSeconds = parseInt(getEnv("CRISIS_WEBHOOK_TIMEOUT", "10"), 10)

	cfg.SeedDevData = getEnv("SEED_DEV_DATA", "true") == "true"

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
