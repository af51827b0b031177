package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for key := range defaults {
		t.Setenv(key, "")
	}
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "deals", cfg.DealsTable)
	assert.Equal(t, "deal_deposits", cfg.DepositsTable)
	assert.Equal(t, 30*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, 168*time.Hour, cfg.DraftTTL)
	assert.Equal(t, "vehicle-files", cfg.MinIO.Bucket)
	assert.False(t, cfg.PaymentGatewayMock)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("WEBHOOK_WORKSHEET_URL", " https://hooks.example.com/worksheet ")
	t.Setenv("WEBHOOK_TIMEOUT", "5s")
	t.Setenv("DRAFT_TTL", "2h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("MINIO_PUBLIC_URL", "https://cdn.example.com/")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "mock")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://hooks.example.com/worksheet", cfg.Webhooks.WorksheetURL)
	assert.Equal(t, 5*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, 2*time.Hour, cfg.DraftTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "https://cdn.example.com", cfg.MinIO.PublicURL)
	assert.True(t, cfg.PaymentGatewayMock)
}
