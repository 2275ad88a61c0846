package subscriptionRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
	ports "github.com/admin/astro-apps/kundali-api/internal/ports/repository"
)

const (
	subscriptionsTable = "subscriptions"

	subscriptionColumns = `id, user_id, plan, status, start_date, end_date, created_at, updated_at`
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий для работы с подписками
func New(db persistence.Persistence, log *slog.Logger) ports.ISubscriptionRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// Upsert создаёт или обновляет подписку пользователя (одна подписка на пользователя)
func (r *Repository) Upsert(ctx context.Context, subscription *domain.Subscription) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			updated_at = EXCLUDED.updated_at`,
		subscriptionsTable, subscriptionColumns)
	err := r.db.Exec(ctx, query,
		subscription.ID,
		subscription.UserID,
		subscription.Plan,
		subscription.Status,
		subscription.StartDate,
		subscription.EndDate,
		subscription.CreatedAt,
		subscription.UpdatedAt)
	if err != nil {
		r.Log.Error("failed to upsert subscription",
			"error", err,
			"user_id", subscription.UserID,
			"plan", subscription.Plan)
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	r.Log.Debug("subscription upserted successfully",
		"user_id", subscription.UserID,
		"plan", subscription.Plan)
	return nil
}

// GetByUser получает подписку пользователя
func (r *Repository) GetByUser(ctx context.Context, userID string) (*domain.Subscription, error) {
	var subscription domain.Subscription
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1`,
		subscriptionColumns, subscriptionsTable)
	err := r.db.Get(ctx, &subscription, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subscription for user %s: %w", userID, domain.ErrNotFound)
		}
		r.Log.Error("failed to get subscription",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &subscription, nil
}

// ExpireOverdue переводит активные подписки с истёкшим end_date в статус expired
func (r *Repository) ExpireOverdue(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`UPDATE %s SET status = $1, updated_at = NOW()
		WHERE status = $2 AND end_date IS NOT NULL AND end_date < NOW()`,
		subscriptionsTable)
	rowsAffected, err := r.db.ExecWithResult(ctx, query,
		domain.SubscriptionExpired, domain.SubscriptionActive)
	if err != nil {
		r.Log.Error("failed to expire overdue subscriptions", "error", err)
		return 0, fmt.Errorf("failed to expire overdue subscriptions: %w", err)
	}
	return rowsAffected, nil
}
