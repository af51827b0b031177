package routes

import (
	"context"
	"net/http"

	_ "dealer_backoffice/docs"
	"dealer_backoffice/internal/adapter/http/handlers"
	"dealer_backoffice/internal/config"
	"dealer_backoffice/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers. A nil handler means its backing store is
// not configured and its routes are not registered.
type Handlers struct {
	Deal         *handlers.DealHandler
	Deposit      *handlers.DepositHandler
	Inventory    *handlers.InventoryHandler
	Media        *handlers.MediaHandler
	Verification *handlers.VerificationHandler
	Draft        *handlers.DraftHandler
}

// Run will start the server
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	h, cleanup, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(log, h)
	log.Info("starting server", zap.String("port", cfg.Port))
	return router.Run(":" + cfg.Port)
}

// NewRouter registers middlewares, the root endpoints and every /v1 route.
func NewRouter(log *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorksheetRoutes(v1)
	if h.Deal != nil {
		addDealRoutes(v1, h.Deal, h.Deposit)
	}
	if h.Inventory != nil {
		addInventoryRoutes(v1, h.Inventory, h.Media)
	}
	if h.Verification != nil {
		addCustomerRoutes(v1, h.Verification)
	}
	if h.Draft != nil {
		addDraftRoutes(v1, h.Draft)
	}
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context(), log).Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
