package predictionRepo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
	ports "github.com/admin/astro-apps/kundali-api/internal/ports/repository"
)

const (
	predictionsTable = "predictions"

	predictionColumns = `id, user_id, chart_id, category, prediction_type, valid_from, valid_to,
		content, intensity, confidence, lucky_number, lucky_color, created_at`
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий для работы с прогнозами
func New(db persistence.Persistence, log *slog.Logger) ports.IPredictionRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// CreateBatch сохраняет батч прогнозов в одной транзакции
func (r *Repository) CreateBatch(ctx context.Context, predictions []*domain.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		predictionsTable, predictionColumns)

	fn := func(ctx context.Context, tx persistence.Transaction) error {
		for _, p := range predictions {
			err := tx.Exec(ctx, query,
				p.ID,
				p.UserID,
				p.ChartID,
				p.Category,
				p.PredictionType,
				p.ValidFrom,
				p.ValidTo,
				p.Content,
				p.Intensity,
				p.Confidence,
				p.LuckyNumber,
				p.LuckyColor,
				p.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert prediction %s: %w", p.ID, err)
			}
		}
		return nil
	}

	if err := r.db.WithTransaction(ctx, fn); err != nil {
		r.Log.Error("failed to create predictions batch",
			"error", err,
			"count", len(predictions))
		return fmt.Errorf("failed to create predictions batch: %w", err)
	}

	r.Log.Debug("predictions batch created successfully",
		"count", len(predictions),
		"user_id", predictions[0].UserID)
	return nil
}

// ListByUser получает прогнозы пользователя с опциональными фильтрами по типу и категории
func (r *Repository) ListByUser(ctx context.Context, userID string, filter ports.PredictionFilter) ([]*domain.Prediction, error) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("prediction_type = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY valid_from DESC`,
		predictionColumns, predictionsTable, strings.Join(conditions, " AND "))

	var predictions []*domain.Prediction
	if err := r.db.Select(ctx, &predictions, query, args...); err != nil {
		r.Log.Error("failed to list predictions",
			"error", err,
			"user_id", userID,
			"type", filter.Type,
			"category", filter.Category)
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}

// ListActive получает прогнозы, активные на указанную дату: valid_from <= date < valid_to
func (r *Repository) ListActive(ctx context.Context, userID string, date time.Time) ([]*domain.Prediction, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE user_id = $1 AND valid_from <= $2 AND valid_to > $2
		ORDER BY created_at DESC`,
		predictionColumns, predictionsTable)

	var predictions []*domain.Prediction
	if err := r.db.Select(ctx, &predictions, query, userID, date); err != nil {
		r.Log.Error("failed to list active predictions",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list active predictions: %w", err)
	}
	return predictions, nil
}
