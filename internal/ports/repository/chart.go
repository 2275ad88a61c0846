package repository

import (
	"context"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
	"github.com/google/uuid"
)

// IChartRepo интерфейс для работы с натальными картами
type IChartRepo interface {
	Create(ctx context.Context, chart *domain.BirthChart) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BirthChart, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BirthChart, error)

	BeginTx(ctx context.Context) (persistence.Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error

	// Транзакционные методы
	CreateTx(ctx context.Context, tx persistence.Transaction, chart *domain.BirthChart) error
}
