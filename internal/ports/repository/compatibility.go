package repository

import (
	"context"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
	"github.com/google/uuid"
)

// ICompatibilityRepo интерфейс для работы с анализами совместимости
type ICompatibilityRepo interface {
	Create(ctx context.Context, analysis *domain.CompatibilityAnalysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CompatibilityAnalysis, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.CompatibilityAnalysis, error)

	// Транзакционные методы
	CreateTx(ctx context.Context, tx persistence.Transaction, analysis *domain.CompatibilityAnalysis) error
}
