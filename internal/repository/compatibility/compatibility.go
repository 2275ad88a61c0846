package compatibilityRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
	ports "github.com/admin/astro-apps/kundali-api/internal/ports/repository"
	"github.com/google/uuid"
)

const (
	analysesTable = "compatibility_analyses"

	analysisColumns = `id, user_id, person1_chart_id, person2_chart_id,
		overall_score, emotional_score, communication_score, spiritual_score,
		analysis, key_insights, created_at`
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий для работы с анализами совместимости
func New(db persistence.Persistence, log *slog.Logger) ports.ICompatibilityRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

func analysisArgs(a *domain.CompatibilityAnalysis) []interface{} {
	return []interface{}{
		a.ID,
		a.UserID,
		a.Person1ChartID,
		a.Person2ChartID,
		a.OverallScore,
		a.EmotionalScore,
		a.CommunicationScore,
		a.SpiritualScore,
		a.Analysis,
		a.KeyInsights,
		a.CreatedAt,
	}
}

// Create сохраняет анализ совместимости
func (r *Repository) Create(ctx context.Context, analysis *domain.CompatibilityAnalysis) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		analysesTable, analysisColumns)
	if err := r.db.Exec(ctx, query, analysisArgs(analysis)...); err != nil {
		r.Log.Error("failed to create compatibility analysis",
			"error", err,
			"analysis_id", analysis.ID,
			"user_id", analysis.UserID)
		return fmt.Errorf("failed to create compatibility analysis: %w", err)
	}
	r.Log.Debug("compatibility analysis created successfully",
		"analysis_id", analysis.ID,
		"user_id", analysis.UserID)
	return nil
}

// CreateTx сохраняет анализ совместимости в транзакции
func (r *Repository) CreateTx(ctx context.Context, tx persistence.Transaction, analysis *domain.CompatibilityAnalysis) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		analysesTable, analysisColumns)
	if err := tx.Exec(ctx, query, analysisArgs(analysis)...); err != nil {
		r.Log.Error("failed to create compatibility analysis in transaction",
			"error", err,
			"analysis_id", analysis.ID,
			"user_id", analysis.UserID)
		return fmt.Errorf("failed to create compatibility analysis in transaction: %w", err)
	}
	r.Log.Debug("compatibility analysis created in transaction",
		"analysis_id", analysis.ID,
		"user_id", analysis.UserID)
	return nil
}

// GetByID получает анализ по идентификатору
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompatibilityAnalysis, error) {
	var analysis domain.CompatibilityAnalysis
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, analysisColumns, analysesTable)
	err := r.db.Get(ctx, &analysis, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("compatibility analysis not found", "analysis_id", id)
			return nil, fmt.Errorf("compatibility analysis %s: %w", id, domain.ErrNotFound)
		}
		r.Log.Error("failed to get compatibility analysis",
			"error", err,
			"analysis_id", id)
		return nil, fmt.Errorf("failed to get compatibility analysis: %w", err)
	}
	return &analysis, nil
}

// ListByUser получает анализы пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.CompatibilityAnalysis, error) {
	var analyses []*domain.CompatibilityAnalysis
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 ORDER BY created_at DESC`,
		analysisColumns, analysesTable)
	if err := r.db.Select(ctx, &analyses, query, userID); err != nil {
		r.Log.Error("failed to list compatibility analyses",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list compatibility analyses: %w", err)
	}
	return analyses, nil
}
