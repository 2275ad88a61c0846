package astro

import (
	"log/slog"

	"github.com/admin/astro-apps/kundali-api/internal/ports/cache"
	"github.com/admin/astro-apps/kundali-api/internal/ports/kafka"
	"github.com/admin/astro-apps/kundali-api/internal/ports/repository"
	"github.com/admin/astro-apps/kundali-api/internal/usecases/astro/calc"
)

// Service бизнес-логика астрологического сервиса: карты, прогнозы,
// совместимость, подписки и транзиты
type Service struct {
	ChartRepo         repository.IChartRepo
	PredictionRepo    repository.IPredictionRepo
	CompatibilityRepo repository.ICompatibilityRepo
	SubscriptionRepo  repository.ISubscriptionRepo
	TransitRepo       repository.ITransitRepo
	UserRepo          repository.IUserRepo

	Calc *calc.Calculator

	// Cache и Producer опциональны: nil означает, что кэширование
	// и асинхронная генерация прогнозов отключены
	Cache    cache.Cache
	Producer kafka.IEventProducer

	Log *slog.Logger
}

// New создаёт новый сервис для бизнес-логики астрологического API
func New(
	chartRepo repository.IChartRepo,
	predictionRepo repository.IPredictionRepo,
	compatibilityRepo repository.ICompatibilityRepo,
	subscriptionRepo repository.ISubscriptionRepo,
	transitRepo repository.ITransitRepo,
	userRepo repository.IUserRepo,
	calculator *calc.Calculator,
	cache cache.Cache,
	producer kafka.IEventProducer,
	log *slog.Logger,
) *Service {
	return &Service{
		ChartRepo:         chartRepo,
		PredictionRepo:    predictionRepo,
		CompatibilityRepo: compatibilityRepo,
		SubscriptionRepo:  subscriptionRepo,
		TransitRepo:       transitRepo,
		UserRepo:          userRepo,
		Calc:              calculator,
		Cache:             cache,
		Producer:          producer,
		Log:               log,
	}
}
