package jobs

import (
	"context"
	"log/slog"
	"time"

	astroUsecase "github.com/admin/astro-apps/kundali-api/internal/usecases/astro"
)

const transitRefresherName = "transit-refresher"

// TransitRefresher джоба для пересборки каталога будущих транзитов,
// каждый день в 04:00 UTC
type TransitRefresher struct {
	astroService *astroUsecase.Service
	log          *slog.Logger
}

func NewTransitRefresher(
	astroService *astroUsecase.Service,
	log *slog.Logger,
) *TransitRefresher {
	return &TransitRefresher{
		astroService: astroService,
		log:          log,
	}
}

func (j *TransitRefresher) Name() string {
	return transitRefresherName
}

// NextRun каждый день в 04:00 UTC
func (j *TransitRefresher) NextRun(now time.Time) time.Time {
	nowUTC := now.UTC()
	next := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 4, 0, 0, 0, time.UTC)
	if next.Before(nowUTC) || next.Equal(nowUTC) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run пересобирает каталог будущих транзитов
func (j *TransitRefresher) Run(ctx context.Context) error {
	return j.astroService.RefreshTransits(ctx)
}
