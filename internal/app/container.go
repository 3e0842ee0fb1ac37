package app

import (
	"context"
	"fmt"

	"plaiz_studio/internal/adapter/persistence/repository"
	"plaiz_studio/internal/infrastructure/cache"
	appconfig "plaiz_studio/internal/infrastructure/config"
	"plaiz_studio/internal/infrastructure/database"
	"plaiz_studio/internal/infrastructure/messaging"
	"plaiz_studio/internal/infrastructure/payments"
	"plaiz_studio/internal/infrastructure/storage"
	"plaiz_studio/internal/usecase"
	"plaiz_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Container holds the wired use cases shared by the HTTP server and plaizctl.
type Container struct {
	Config appconfig.Config

	Projects      usecase.IProjectUseCase
	Agreements    usecase.IAgreementUseCase
	Payments      usecase.IPaymentUseCase
	Files         usecase.IFileUseCase
	Payouts       usecase.IPayoutUseCase
	Reconcile     usecase.IReconcileUseCase
	Portfolio     usecase.IPortfolioUseCase
	Accounts      usecase.IAccountUseCase
	Conversations usecase.IConversationUseCase

	closers []func()
}

// Build connects the stores and wires every use case. DynamoDB is required;
// S3, Mercado Pago, Paystack, RabbitMQ and Redis are optional and only logged
// when they cannot be set up.
func Build(ctx context.Context, cfg appconfig.Config, log *zap.Logger) (*Container, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: %w", err)
	}

	projectRepo := repository.NewProjectDynamoRepository(ddb)
	agreementRepo := repository.NewAgreementDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	payoutRepo := repository.NewPayoutDynamoRepository(ddb)
	payoutLedger := repository.NewPayoutDynamoLedger(ddb)
	fileRepo := repository.NewProjectFileDynamoRepository(ddb)
	accountRepo := repository.NewBankAccountDynamoRepository(ddb)
	portfolioRepo := repository.NewPortfolioDynamoRepository(ddb)
	conversationRepo := repository.NewConversationDynamoRepository(ddb)
	messageRepo := repository.NewMessageDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)
	matcher := repository.NewWorkerDynamoMatcher(ddb)

	c := &Container{Config: cfg}

	var fileStorage interfaces.IFileStorage
	if s3Client, err := database.ConnectS3(ctx, cfg.AWS); err != nil {
		log.Warn("[app] s3 storage not configured", zap.Error(err))
	} else {
		fileStorage = storage.NewS3Storage(s3Client, cfg.Storage.PublicBaseURL, log)
	}

	var paymentGateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.Checkout, log); err != nil {
		log.Warn("[app] mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mp
	}

	var transferGateway interfaces.ITransferGateway
	if ps, err := payments.NewPaystackTransferGateway(cfg.Transfer, log); err != nil {
		log.Info("[app] paystack transfers disabled", zap.Error(err))
	} else {
		transferGateway = ps
	}

	var feed interfaces.IChangeFeed
	if cfg.MQ.URL != "" {
		rf, err := messaging.NewRabbitChangeFeed(cfg.MQ.URL, log)
		if err != nil {
			log.Warn("[app] change feed unavailable", zap.Error(err))
		} else {
			feed = rf
			c.closers = append(c.closers, rf.Close)
		}
	}

	var deduper interfaces.IEffectDeduper
	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis)
		deduper = cache.NewRedisDeduper(rdb, cfg.Redis.DedupeTTL, log)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	dispatcher := usecase.NewSideEffectDispatcher(messageRepo, notificationRepo, feed, deduper, log)

	c.Projects = usecase.NewProjectUseCase(projectRepo, conversationRepo, matcher, dispatcher, log)
	c.Agreements = usecase.NewAgreementUseCase(projectRepo, agreementRepo, dispatcher, log)
	c.Payments = usecase.NewPaymentUseCase(projectRepo, agreementRepo, paymentRepo, payoutRepo, paymentGateway, dispatcher, log)
	c.Files = usecase.NewFileUseCase(projectRepo, fileRepo, fileStorage, cfg.Storage.ProjectFilesBucket, cfg.Storage.MaxUploadBytes, dispatcher, log)
	c.Payouts = usecase.NewPayoutUseCase(projectRepo, agreementRepo, payoutRepo, payoutLedger, accountRepo, transferGateway, dispatcher, log)
	c.Reconcile = usecase.NewReconcileUseCase(projectRepo, agreementRepo, paymentRepo, payoutRepo, fileRepo, dispatcher, log)
	c.Portfolio = usecase.NewPortfolioUseCase(portfolioRepo, projectRepo, fileStorage, cfg.Storage.PortfolioBucket, log)
	c.Accounts = usecase.NewAccountUseCase(accountRepo, log)
	c.Conversations = usecase.NewConversationUseCase(projectRepo, messageRepo, notificationRepo, dispatcher, log)

	return c, nil
}

// Close releases the broker and cache connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
