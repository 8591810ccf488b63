package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_SECRET", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("UPLOAD_TIMEOUT_SECONDS", "")

	cfg := Load()

	assert.Equal(t, defaultSecret, cfg.AppSecret)
	assert.Equal(t, cfg.AppSecret, cfg.JWTSecret)
	assert.Contains(t, cfg.DatabaseURL, "/filmhub?sslmode=disable")
	assert.Equal(t, 60*time.Second, cfg.Upload.Timeout)
	assert.Equal(t, "vnd", cfg.Stripe.Currency)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("UPLOAD_SERVICE_URL", "http://upload:8080/")
	t.Setenv("UPLOAD_TIMEOUT_SECONDS", "5")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg := Load()

	assert.Equal(t, "http://upload:8080", cfg.Upload.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upload.Timeout)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
