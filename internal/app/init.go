package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	server "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http"
	authController "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/controllers/auth"
	chartController "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/controllers/chart"
	compatibilityController "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/controllers/compatibility"
	healthcheckController "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/controllers/healthcheck"
	predictionController "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/controllers/prediction"
	subscriptionController "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/controllers/subscription"
	transitController "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/controllers/transit"
	kafkaConsumerAdapter "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/kafka"
	kafkaHandlers "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/kafka/handlers"
	alerterAdapter "github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/kafka"
	"github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/storage/redis"
	"github.com/admin/astro-apps/kundali-api/internal/ports/cache"
	kafkaPorts "github.com/admin/astro-apps/kundali-api/internal/ports/kafka"
	"github.com/admin/astro-apps/kundali-api/internal/ports/repository"
	"github.com/admin/astro-apps/kundali-api/internal/ports/service"
	chartRepo "github.com/admin/astro-apps/kundali-api/internal/repository/chart"
	compatibilityRepo "github.com/admin/astro-apps/kundali-api/internal/repository/compatibility"
	predictionRepo "github.com/admin/astro-apps/kundali-api/internal/repository/prediction"
	subscriptionRepo "github.com/admin/astro-apps/kundali-api/internal/repository/subscription"
	transitRepo "github.com/admin/astro-apps/kundali-api/internal/repository/transit"
	userRepo "github.com/admin/astro-apps/kundali-api/internal/repository/user"
	jobScheduler "github.com/admin/astro-apps/kundali-api/internal/services/jobs"
	astroUsecase "github.com/admin/astro-apps/kundali-api/internal/usecases/astro"
	"github.com/admin/astro-apps/kundali-api/internal/usecases/astro/calc"
)

type Dependencies struct {
	DB            *sqlx.DB
	HTTPServer    *http.Server
	KafkaProducer *kafkaAdapter.Producer
	KafkaConsumer *kafkaConsumerAdapter.Consumer
	Cache         cache.Cache
	JobScheduler  *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	repos := a.initRepositories(db)
	cacheClient := a.initCache()
	alerterSvc := a.initAlerter()

	kafkaProducer, err := a.initKafkaProducer()
	if err != nil {
		return nil, fmt.Errorf("failed to init kafka producer: %w", err)
	}

	astroService := a.initUseCases(repos, cacheClient, kafkaProducer)

	kafkaConsumer, err := a.initKafkaConsumer(astroService)
	if err != nil {
		return nil, fmt.Errorf("failed to init kafka consumer: %w", err)
	}

	httpServer := a.initHTTP(db, astroService)
	scheduler := a.initJobScheduler(alerterSvc, astroService)

	return &Dependencies{
		DB:            db,
		HTTPServer:    httpServer,
		KafkaProducer: kafkaProducer,
		KafkaConsumer: kafkaConsumer,
		Cache:         cacheClient,
		JobScheduler:  scheduler,
	}, nil
}

// repositories содержит инициализированные репозитории
type repositories struct {
	Chart         repository.IChartRepo
	Prediction    repository.IPredictionRepo
	Compatibility repository.ICompatibilityRepo
	Subscription  repository.ISubscriptionRepo
	Transit       repository.ITransitRepo
	User          repository.IUserRepo
}

// initRepositories инициализирует репозитории для работы с БД
func (a *App) initRepositories(db *sqlx.DB) *repositories {
	persistenceLayer := pg.NewDB(db)
	return &repositories{
		Chart:         chartRepo.New(persistenceLayer, a.Log),
		Prediction:    predictionRepo.New(persistenceLayer, a.Log),
		Compatibility: compatibilityRepo.New(persistenceLayer, a.Log),
		Subscription:  subscriptionRepo.New(persistenceLayer, a.Log),
		Transit:       transitRepo.New(persistenceLayer, a.Log),
		User:          userRepo.New(persistenceLayer, a.Log),
	}
}

// initCache инициализирует Redis кэш, опциональный
func (a *App) initCache() cache.Cache {
	if a.Cfg.Redis == nil {
		return nil
	}

	redisClient, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		return nil
	}

	a.Log.Info("redis cache connected successfully")
	return redisAdapter.NewClient(redisClient)
}

// initAlerter инициализирует алертер, опциональный
func (a *App) initAlerter() service.IAlerterService {
	client := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log)
	if client == nil {
		a.Log.Info("alerter not configured, job failure alerts disabled")
		return nil
	}
	return client
}

// initKafkaProducer инициализирует Kafka producer, опциональный
func (a *App) initKafkaProducer() (*kafkaAdapter.Producer, error) {
	if !a.Cfg.KafkaEnabled || a.Cfg.Kafka == nil {
		a.Log.Info("kafka disabled, predictions will be generated synchronously")
		return nil, nil
	}
	return kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
}

// initKafkaConsumer инициализирует consumer событий создания карт
func (a *App) initKafkaConsumer(astroService *astroUsecase.Service) (*kafkaConsumerAdapter.Consumer, error) {
	if !a.Cfg.KafkaEnabled || a.Cfg.Kafka == nil {
		return nil, nil
	}

	handler := kafkaHandlers.NewChartCreatedHandler(astroService, a.Log)
	return kafkaConsumerAdapter.NewConsumer(a.Cfg.Kafka, handler, a.Log)
}

// initUseCases инициализирует бизнес-логику
func (a *App) initUseCases(
	repos *repositories,
	cacheClient cache.Cache,
	kafkaProducer *kafkaAdapter.Producer,
) *astroUsecase.Service {
	// Несидированный источник случайности для прод-окружения
	calculator := calc.New(nil)

	// nil-интерфейс нельзя собирать из nil-указателя
	var producer kafkaPorts.IEventProducer
	if kafkaProducer != nil {
		producer = kafkaProducer
	}

	return astroUsecase.New(
		repos.Chart,
		repos.Prediction,
		repos.Compatibility,
		repos.Subscription,
		repos.Transit,
		repos.User,
		calculator,
		cacheClient,
		producer,
		a.Log,
	)
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(db *sqlx.DB, astroService *astroUsecase.Service) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		authController.New(astroService, a.Log),
		chartController.New(astroService, a.Log),
		predictionController.New(astroService, a.Log),
		compatibilityController.New(astroService, a.Log),
		subscriptionController.New(astroService, a.Log),
		transitController.New(astroService, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(
	alerterSvc service.IAlerterService,
	astroService *astroUsecase.Service,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerterSvc)
	scheduler.Register(jobScheduler.NewSubscriptionExpirer(astroService, a.Log))
	scheduler.Register(jobScheduler.NewTransitRefresher(astroService, a.Log))
	return scheduler
}
