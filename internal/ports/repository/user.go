package repository

import (
	"context"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// IUserRepo интерфейс для работы с профилями пользователей
type IUserRepo interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
