package repository

import (
	"context"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// ISubscriptionRepo интерфейс для работы с подписками
type ISubscriptionRepo interface {
	Upsert(ctx context.Context, subscription *domain.Subscription) error
	GetByUser(ctx context.Context, userID string) (*domain.Subscription, error)
	// ExpireOverdue переводит подписки с истёкшим end_date в статус expired,
	// возвращает количество затронутых записей
	ExpireOverdue(ctx context.Context) (int64, error)
}
