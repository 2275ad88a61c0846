package repository

import (
	"context"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// ITransitRepo интерфейс для работы с каталогом транзитов
type ITransitRepo interface {
	ListUpcoming(ctx context.Context, limit int) ([]*domain.TransitEvent, error)
	// ReplaceUpcoming атомарно заменяет будущие события каталога новым набором
	ReplaceUpcoming(ctx context.Context, events []*domain.TransitEvent) error
}
