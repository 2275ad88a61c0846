package repository

import (
	"context"
	"time"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// PredictionFilter фильтры выборки прогнозов, пустые значения игнорируются
type PredictionFilter struct {
	Type     string
	Category string
}

// IPredictionRepo интерфейс для работы с прогнозами
type IPredictionRepo interface {
	CreateBatch(ctx context.Context, predictions []*domain.Prediction) error
	ListByUser(ctx context.Context, userID string, filter PredictionFilter) ([]*domain.Prediction, error)
	ListActive(ctx context.Context, userID string, date time.Time) ([]*domain.Prediction, error)
}
