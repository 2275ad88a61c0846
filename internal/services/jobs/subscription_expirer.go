package jobs

import (
	"context"
	"log/slog"
	"time"

	astroUsecase "github.com/admin/astro-apps/kundali-api/internal/usecases/astro"
)

const subscriptionExpirerName = "subscription-expirer"

// SubscriptionExpirer джоба для перевода просроченных подписок в expired,
// каждый день в 03:00 UTC
type SubscriptionExpirer struct {
	astroService *astroUsecase.Service
	log          *slog.Logger
}

func NewSubscriptionExpirer(
	astroService *astroUsecase.Service,
	log *slog.Logger,
) *SubscriptionExpirer {
	return &SubscriptionExpirer{
		astroService: astroService,
		log:          log,
	}
}

func (j *SubscriptionExpirer) Name() string {
	return subscriptionExpirerName
}

// NextRun каждый день в 03:00 UTC
func (j *SubscriptionExpirer) NextRun(now time.Time) time.Time {
	nowUTC := now.UTC()
	next := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 3, 0, 0, 0, time.UTC)
	if next.Before(nowUTC) || next.Equal(nowUTC) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run переводит просроченные подписки в статус expired
func (j *SubscriptionExpirer) Run(ctx context.Context) error {
	_, err := j.astroService.ExpireSubscriptions(ctx)
	return err
}
