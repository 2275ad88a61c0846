package astro

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// GetUser возвращает профиль пользователя. Профиль неизвестного auth-провайдеру
// пользователя создаётся лениво при первом обращении.
func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.UpsertUser(ctx, &domain.User{ID: userID})
		}
		return nil, err
	}
	return user, nil
}

// UpsertUser создаёт или обновляет профиль пользователя
func (s *Service) UpsertUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if err := s.UserRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
