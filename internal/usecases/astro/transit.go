package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// горизонт каталога транзитов в днях
const transitHorizonDays = 90

// UpcomingTransits возвращает ближайшие события каталога транзитов
func (s *Service) UpcomingTransits(ctx context.Context, limit int) ([]*domain.TransitEvent, error) {
	return s.TransitRepo.ListUpcoming(ctx, limit)
}

// RefreshTransits пересобирает каталог будущих транзитов, вызывается
// фоновой задачей
func (s *Service) RefreshTransits(ctx context.Context) error {
	now := time.Now()
	events := s.Calc.UpcomingTransits(now, transitHorizonDays)
	for _, event := range events {
		event.ID = uuid.New()
		event.CreatedAt = now
	}

	if err := s.TransitRepo.ReplaceUpcoming(ctx, events); err != nil {
		return fmt.Errorf("failed to refresh transits: %w", err)
	}

	s.Log.Info("transit catalog refreshed", "count", len(events))
	return nil
}
