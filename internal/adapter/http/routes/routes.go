package routes

import (
	"context"

	_ "plaiz_studio/docs"
	"plaiz_studio/internal/adapter/http/handlers"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/app"
	appconfig "plaiz_studio/internal/infrastructure/config"
	"plaiz_studio/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Projects      *handlers.ProjectHandler
	Agreements    *handlers.AgreementHandler
	Payments      *handlers.PaymentHandler
	Files         *handlers.FileHandler
	Payouts       *handlers.PayoutHandler
	Reconcile     *handlers.ReconcileHandler
	Portfolio     *handlers.PortfolioHandler
	Accounts      *handlers.AccountHandler
	Conversations *handlers.ConversationHandler
}

func NewHandlers(c *app.Container) Handlers {
	maxBytes := c.Config.Storage.MaxUploadBytes
	return Handlers{
		Projects:      handlers.NewProjectHandler(c.Projects),
		Agreements:    handlers.NewAgreementHandler(c.Agreements),
		Payments:      handlers.NewPaymentHandler(c.Payments),
		Files:         handlers.NewFileHandler(c.Files, maxBytes),
		Payouts:       handlers.NewPayoutHandler(c.Payouts),
		Reconcile:     handlers.NewReconcileHandler(c.Reconcile),
		Portfolio:     handlers.NewPortfolioHandler(c.Portfolio, maxBytes),
		Accounts:      handlers.NewAccountHandler(c.Accounts),
		Conversations: handlers.NewConversationHandler(c.Conversations),
	}
}

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	if len(cfg.Auth.JWTSecret) == 0 {
		log.Fatal("[routes] JWT_SECRET is required")
	}

	container, err := app.Build(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("[routes] failed wiring dependencies", zap.Error(err))
	}
	defer container.Close()

	router := NewRouter(NewHandlers(container), []byte(cfg.Auth.JWTSecret), log)

	log.Info("[routes] listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter mounts the public endpoints and the authenticated /v1 API.
func NewRouter(h Handlers, jwtSecret []byte, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	private := v1.Group("")
	private.Use(middleware.AuthMiddleware(jwtSecret, log))
	addProjectRoutes(private, h)
	addPayoutRoutes(private, h)
	addProfileRoutes(private, h)

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.OrNop(log).Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics())
}
