package transitRepo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
	ports "github.com/admin/astro-apps/kundali-api/internal/ports/repository"
)

const (
	transitsTable = "transit_events"

	transitColumns = `id, planet, from_sign, to_sign, event_date, description, impact, created_at`
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий для работы с каталогом транзитов
func New(db persistence.Persistence, log *slog.Logger) ports.ITransitRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// ListUpcoming получает предстоящие транзиты, ближайшие первыми
func (r *Repository) ListUpcoming(ctx context.Context, limit int) ([]*domain.TransitEvent, error) {
	if limit <= 0 {
		limit = 10
	}
	var events []*domain.TransitEvent
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE event_date >= CURRENT_DATE
		ORDER BY event_date LIMIT $1`,
		transitColumns, transitsTable)
	if err := r.db.Select(ctx, &events, query, limit); err != nil {
		r.Log.Error("failed to list upcoming transits", "error", err)
		return nil, fmt.Errorf("failed to list upcoming transits: %w", err)
	}
	return events, nil
}

// ReplaceUpcoming атомарно заменяет будущие события каталога новым набором
func (r *Repository) ReplaceUpcoming(ctx context.Context, events []*domain.TransitEvent) error {
	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		transitsTable, transitColumns)

	fn := func(ctx context.Context, tx persistence.Transaction) error {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE event_date >= CURRENT_DATE`, transitsTable)
		if err := tx.Exec(ctx, deleteQuery); err != nil {
			return fmt.Errorf("failed to clear upcoming transits: %w", err)
		}

		for _, e := range events {
			err := tx.Exec(ctx, insertQuery,
				e.ID,
				e.Planet,
				e.FromSign,
				e.ToSign,
				e.EventDate,
				e.Description,
				e.Impact,
				e.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert transit event %s: %w", e.ID, err)
			}
		}
		return nil
	}

	if err := r.db.WithTransaction(ctx, fn); err != nil {
		r.Log.Error("failed to replace upcoming transits",
			"error", err,
			"count", len(events))
		return fmt.Errorf("failed to replace upcoming transits: %w", err)
	}

	r.Log.Debug("upcoming transits replaced successfully", "count", len(events))
	return nil
}
