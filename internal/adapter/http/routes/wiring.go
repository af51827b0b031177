package routes

import (
	"context"

	"dealer_backoffice/internal/adapter/http/handlers"
	"dealer_backoffice/internal/adapter/persistence/repository"
	"dealer_backoffice/internal/config"
	"dealer_backoffice/internal/infrastructure/cache"
	"dealer_backoffice/internal/infrastructure/database"
	"dealer_backoffice/internal/infrastructure/metrics"
	"dealer_backoffice/internal/infrastructure/payments"
	"dealer_backoffice/internal/infrastructure/storage"
	"dealer_backoffice/internal/infrastructure/webhooks"
	"dealer_backoffice/internal/usecase"
	"dealer_backoffice/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// buildHandlers connects the stores and wires the use cases. Only DynamoDB is
// required; every other backend is optional and its absence just leaves the
// routes that need it unregistered (or answering 503).
func buildHandlers(ctx context.Context, cfg config.Config, log *zap.Logger) (Handlers, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, cleanup, err
	}
	dealRepo := repository.NewDealDynamoRepository(ddb, cfg.DealsTable)
	depositRepo := repository.NewDepositDynamoRepository(ddb, cfg.DepositsTable)

	webhookClient := webhooks.NewClient(cfg.Webhooks, cfg.WebhookTimeout, metrics.NewWebhookMetrics(prometheus.DefaultRegisterer), log)

	var h Handlers

	var vehicleRepo interfaces.IVehicleRepository
	db, err := database.ConnectPostgres(cfg.DatabaseDSN, log)
	if err != nil {
		log.Warn("inventory database unavailable; inventory, media and customer routes disabled", zap.Error(err))
	} else {
		if cfg.DBAutoMigrate {
			if err := repository.AutoMigrate(db); err != nil {
				return Handlers{}, cleanup, err
			}
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, func() { _ = sqlDB.Close() })
		}

		vehicles := repository.NewVehicleGormRepository(db)
		vehicleRepo = vehicles

		var objects interfaces.IObjectStorage
		if cfg.MinIO.Endpoint == "" {
			log.Warn("MINIO_ENDPOINT not set; file uploads disabled")
		} else if s, err := storage.NewMinioStorage(ctx, cfg.MinIO, log); err != nil {
			log.Warn("object storage unavailable; file uploads disabled", zap.Error(err))
		} else {
			objects = s
		}

		h.Inventory = handlers.NewInventoryHandler(usecase.NewInventoryUseCase(
			vehicles,
			repository.NewCostGormRepository(db),
			repository.NewPurchaseGormRepository(db),
			repository.NewWarrantyGormRepository(db),
			webhookClient,
		))
		h.Media = handlers.NewMediaHandler(usecase.NewMediaUseCase(vehicles, repository.NewFileGormRepository(db), objects, webhookClient))
		h.Verification = handlers.NewVerificationHandler(usecase.NewVerificationUseCase(repository.NewCustomerGormRepository(db), webhookClient))
	}

	h.Deal = handlers.NewDealHandler(usecase.NewDealUseCase(dealRepo, vehicleRepo, webhookClient))

	var gateway interfaces.IPaymentGateway
	if g, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log); err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = g
	}
	h.Deposit = handlers.NewDepositHandler(usecase.NewDepositUseCase(depositRepo, dealRepo, gateway, usecase.DepositOptions{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	}), cfg.PaymentGatewayMock)

	var drafts interfaces.IDraftStore
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn("redis unavailable; keeping drafts in memory", zap.Error(err))
		} else {
			closers = append(closers, func() { _ = client.Close() })
			drafts = cache.NewRedisDraftStore(client)
		}
	}
	if drafts == nil {
		drafts = cache.NewMemoryDraftStore()
	}
	h.Draft = handlers.NewDraftHandler(usecase.NewDraftUseCase(drafts, cfg.DraftTTL))

	return h, cleanup, nil
}
