package astro

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// платные планы действуют 30 дней, дальше их переводит в expired фоновая задача
const paidPlanDuration = 30 * 24 * time.Hour

// GetSubscription возвращает подписку пользователя. У пользователей без записи
// в БД подразумевается бесплатный базовый план.
func (s *Service) GetSubscription(ctx context.Context, userID string) (*domain.Subscription, error) {
	subscription, err := s.SubscriptionRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultSubscription(userID), nil
		}
		return nil, err
	}
	return subscription, nil
}

// UpgradeSubscription переключает план пользователя. Платные планы получают
// окно действия в 30 дней, базовый план бессрочен.
func (s *Service) UpgradeSubscription(ctx context.Context, userID string, plan string) (*domain.Subscription, error) {
	if !domain.IsValidPlan(plan) {
		return nil, fmt.Errorf("%w: unknown plan %q", domain.ErrValidation, plan)
	}

	now := time.Now()
	subscription := &domain.Subscription{
		ID:        uuid.New(),
		UserID:    userID,
		Plan:      plan,
		Status:    domain.SubscriptionActive,
		StartDate: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if plan != domain.PlanBasic {
		endDate := now.Add(paidPlanDuration)
		subscription.EndDate = &endDate
	}

	if err := s.SubscriptionRepo.Upsert(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to upgrade subscription: %w", err)
	}

	s.Log.Info("subscription upgraded",
		"user_id", userID,
		"plan", plan)
	return subscription, nil
}

// ExpireSubscriptions переводит просроченные подписки в статус expired,
// вызывается фоновой задачей
func (s *Service) ExpireSubscriptions(ctx context.Context) (int64, error) {
	affected, err := s.SubscriptionRepo.ExpireOverdue(ctx)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		s.Log.Info("subscriptions expired", "count", affected)
	}
	return affected, nil
}
