package userRepo

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
	usersTable = "users"

	userColumns = `id, email, first_name, last_name, profile_image_url, created_at, updated_at`
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий для работы с профилями пользователей
func New(db persistence.Persistence, log *slog.Logger) ports.IUserRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// Upsert создаёт или обновляет профиль (идентификатор приходит от auth-провайдера)
func (r *Repository) Upsert(ctx context.Context, user *domain.User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = EXCLUDED.updated_at`,
		usersTable, userColumns)
	err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.ProfileImageURL,
		user.CreatedAt,
		user.UpdatedAt)
	if err != nil {
		r.Log.Error("failed to upsert user",
			"error", err,
			"user_id", user.ID)
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	r.Log.Debug("user upserted successfully", "user_id", user.ID)
	return nil
}

// GetByID получает профиль пользователя
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, userColumns, usersTable)
	err := r.db.Get(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("user not found", "user_id", id)
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		r.Log.Error("failed to get user by id",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}
