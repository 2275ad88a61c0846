package chartRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	ports "github.com/admin/astro-apps/kundali-api/internal/ports/repository"

	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
	"github.com/google/uuid"
)

const (
	chartsTable = "birth_charts"

	chartColumns = `id, user_id, full_name, birth_date, birth_time, is_time_unknown,
		birth_location, latitude, longitude, timezone, gender, chart_system, house_system,
		sun_sign, moon_sign, ascendant, nakshatra, pada, current_mahadasha,
		planetary_positions, house_positions, aspect_data, created_at, updated_at`

	chartPlaceholders = `$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24`
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий для работы с натальными картами
func New(db persistence.Persistence, log *slog.Logger) ports.IChartRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

func chartArgs(chart *domain.BirthChart) []interface{} {
	return []interface{}{
		chart.ID,
		chart.UserID,
		chart.FullName,
		chart.BirthDate,
		chart.BirthTime,
		chart.IsTimeUnknown,
		chart.BirthLocation,
		chart.Latitude,
		chart.Longitude,
		chart.Timezone,
		chart.Gender,
		chart.ChartSystem,
		chart.HouseSystem,
		chart.SunSign,
		chart.MoonSign,
		chart.Ascendant,
		chart.Nakshatra,
		chart.Pada,
		chart.CurrentMahadasha,
		chart.PlanetaryPositions,
		chart.HousePositions,
		chart.AspectData,
		chart.CreatedAt,
		chart.UpdatedAt,
	}
}

// Create сохраняет натальную карту
func (r *Repository) Create(ctx context.Context, chart *domain.BirthChart) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		chartsTable, chartColumns, chartPlaceholders)
	if err := r.db.Exec(ctx, query, chartArgs(chart)...); err != nil {
		r.Log.Error("failed to create birth chart",
			"error", err,
			"chart_id", chart.ID,
			"user_id", chart.UserID)
		return fmt.Errorf("failed to create birth chart: %w", err)
	}
	r.Log.Debug("birth chart created successfully",
		"chart_id", chart.ID,
		"user_id", chart.UserID)
	return nil
}

// CreateTx сохраняет натальную карту в транзакции
func (r *Repository) CreateTx(ctx context.Context, tx persistence.Transaction, chart *domain.BirthChart) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		chartsTable, chartColumns, chartPlaceholders)
	if err := tx.Exec(ctx, query, chartArgs(chart)...); err != nil {
		r.Log.Error("failed to create birth chart in transaction",
			"error", err,
			"chart_id", chart.ID,
			"user_id", chart.UserID)
		return fmt.Errorf("failed to create birth chart in transaction: %w", err)
	}
	r.Log.Debug("birth chart created in transaction",
		"chart_id", chart.ID,
		"user_id", chart.UserID)
	return nil
}

// GetByID получает карту по идентификатору
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BirthChart, error) {
	var chart domain.BirthChart
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, chartColumns, chartsTable)
	err := r.db.Get(ctx, &chart, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("birth chart not found", "chart_id", id)
			return nil, fmt.Errorf("birth chart %s: %w", id, domain.ErrNotFound)
		}
		r.Log.Error("failed to get birth chart",
			"error", err,
			"chart_id", id)
		return nil, fmt.Errorf("failed to get birth chart: %w", err)
	}
	return &chart, nil
}

// ListByUser получает карты пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.BirthChart, error) {
	var charts []*domain.BirthChart
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 ORDER BY created_at DESC`,
		chartColumns, chartsTable)
	if err := r.db.Select(ctx, &charts, query, userID); err != nil {
		r.Log.Error("failed to list birth charts",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list birth charts: %w", err)
	}
	return charts, nil
}

// BeginTx явно начинает транзакцию
func (r *Repository) BeginTx(ctx context.Context) (persistence.Transaction, error) {
	return r.db.BeginTx(ctx)
}

// WithTransaction выполняет функцию в транзакции с автоматическим commit/rollback
func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.db.WithTransaction(ctx, fn)
}
