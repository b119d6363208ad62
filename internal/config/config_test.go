package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "postgres", cfg.Database.Password)
	assert.Equal(t, "fairchance", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, "fairchance:workflow:events", cfg.Events.Stream)

	assert.False(t, cfg.CrisisWebhook.Enabled)
	assert.Equal(t, 10, cfg.CrisisWebhook.TimeoutSeconds)

	assert.True(t, cfg.SeedDevData)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("REDIS_ENABLED", "false")
	os.Setenv("CRISIS_WEBHOOK_ENABLED", "true")
	os.Setenv("CRISIS_WEBHOOK_URL", "https://alerts.example.com/hook")
	os.Setenv("SEED_DEV_DATA", "false")
	defer os.Clearenv()

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.CrisisWebhook.Enabled)
	assert.Equal(t, "https://alerts.example.com/hook", cfg.CrisisWebhook.URL)
	assert.False(t, cfg.SeedDevData)
}

func TestGetDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Database: "fairchance",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=fairchance sslmode=disable",
		c.GetDSN())
}

func TestParseInt_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, 42, parseInt("not-a-number", 42))
	assert.Equal(t, 7, parseInt("7", 42))
}
