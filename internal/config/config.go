package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration. Values come from the environment
// (a .env file is loaded by the binary before Load runs).
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	AWSRegion        string
	DynamoDBEndpoint string
	DealsTable       string
	DepositsTable    string

	DatabaseDSN   string
	DBAutoMigrate bool

	Webhooks       WebhookConfig
	WebhookTimeout time.Duration

	MinIO MinIOConfig

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DraftTTL      time.Duration

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool
}

// WebhookConfig lists the workflow endpoints. An empty URL disables the
// operation that depends on it.
type WebhookConfig struct {
	CostURL      string
	PurchaseURL  string
	WorksheetURL string
	DeliveryURL  string
	VINURL       string
	OCRURL       string
	ImageURL     string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

var defaults = map[string]interface{}{
	"PORT":                           "8080",
	"LOG_LEVEL":                      "info",
	"LOG_FORMAT":                     "json",
	"AWS_REGION":                     "us-east-1",
	"DYNAMODB_ENDPOINT":              "",
	"DEALS_TABLE":                    "deals",
	"DEPOSITS_TABLE":                 "deal_deposits",
	"DATABASE_DSN":                   "",
	"DB_AUTO_MIGRATE":                true,
	"WEBHOOK_COST_URL":               "",
	"WEBHOOK_PURCHASE_URL":           "",
	"WEBHOOK_WORKSHEET_URL":          "",
	"WEBHOOK_DELIVERY_URL":           "",
	"WEBHOOK_VIN_URL":                "",
	"WEBHOOK_OCR_URL":                "",
	"WEBHOOK_IMAGE_URL":              "",
	"WEBHOOK_TIMEOUT":                "30s",
	"MINIO_ENDPOINT":                 "",
	"MINIO_ACCESS_KEY":               "",
	"MINIO_SECRET_KEY":               "",
	"MINIO_BUCKET":                   "vehicle-files",
	"MINIO_USE_SSL":                  false,
	"MINIO_PUBLIC_URL":               "",
	"REDIS_ADDR":                     "",
	"REDIS_PASSWORD":                 "",
	"REDIS_DB":                       0,
	"DRAFT_TTL":                      "168h",
	"MERCADOPAGO_ACCESS_TOKEN":       "",
	"MERCADOPAGO_TEST_PAYER_EMAIL":   "",
	"MERCADOPAGO_TEST_PAYER_USER_ID": "",
	"PAYMENT_GATEWAY_MOCK":           false,
}

// Load reads the configuration from the process environment.
func Load() Config {
	return load(viper.New())
}

func load(v *viper.Viper) Config {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return Config{
		Port:      strings.TrimSpace(v.GetString("PORT")),
		LogLevel:  strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat: strings.ToLower(v.GetString("LOG_FORMAT")),

		AWSRegion:        v.GetString("AWS_REGION"),
		DynamoDBEndpoint: strings.TrimSpace(v.GetString("DYNAMODB_ENDPOINT")),
		DealsTable:       v.GetString("DEALS_TABLE"),
		DepositsTable:    v.GetString("DEPOSITS_TABLE"),

		DatabaseDSN:   strings.TrimSpace(v.GetString("DATABASE_DSN")),
		DBAutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),

		Webhooks: WebhookConfig{
			CostURL:      strings.TrimSpace(v.GetString("WEBHOOK_COST_URL")),
			PurchaseURL:  strings.TrimSpace(v.GetString("WEBHOOK_PURCHASE_URL")),
			WorksheetURL: strings.TrimSpace(v.GetString("WEBHOOK_WORKSHEET_URL")),
			DeliveryURL:  strings.TrimSpace(v.GetString("WEBHOOK_DELIVERY_URL")),
			VINURL:       strings.TrimSpace(v.GetString("WEBHOOK_VIN_URL")),
			OCRURL:       strings.TrimSpace(v.GetString("WEBHOOK_OCR_URL")),
			ImageURL:     strings.TrimSpace(v.GetString("WEBHOOK_IMAGE_URL")),
		},
		WebhookTimeout: durationOr(v, "WEBHOOK_TIMEOUT", 30*time.Second),

		MinIO: MinIOConfig{
			Endpoint:  strings.TrimSpace(v.GetString("MINIO_ENDPOINT")),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			PublicURL: strings.TrimRight(strings.TrimSpace(v.GetString("MINIO_PUBLIC_URL")), "/"),
		},

		RedisAddr:     strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		DraftTTL:      durationOr(v, "DRAFT_TTL", 168*time.Hour),

		MercadoPagoAccessToken:     strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail:  strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerUserID: strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentGatewayMock:         isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("MERCADOPAGO_MOCK")),
	}
}

func durationOr(v *viper.Viper, key string, def time.Duration) time.Duration {
	d := v.GetDuration(key)
	if d <= 0 {
		return def
	}
	return d
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
