package main

import (
	"context"
	"log"

	_ "dealer_backoffice/docs"
	"dealer_backoffice/internal/adapter/http/routes"
	"dealer_backoffice/internal/config"
	"dealer_backoffice/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Dealer Back Office API
// @version         1.0
// @description     Deals, worksheets, deposits, inventory, media, customer verification and form drafts.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	zl, err := logger.New(logger.Config{ServiceName: "dealer-backoffice", Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := routes.Run(context.Background(), cfg, zl); err != nil {
		zl.Fatal("failed to startup the application", zap.Error(err))
	}
}
