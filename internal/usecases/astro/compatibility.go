package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
)

// CreateCompatibility рассчитывает совместимость двух людей: деривирует обе
// карты, считает скоринг и сохраняет карты вместе с анализом в одной
// транзакции. Карты совместимости принадлежат инициатору запроса.
func (s *Service) CreateCompatibility(ctx context.Context, userID string, person1, person2 domain.BirthData) (*domain.CompatibilityAnalysis, error) {
	if err := validateBirthData(person1); err != nil {
		return nil, fmt.Errorf("person1: %w", err)
	}
	if err := validateBirthData(person2); err != nil {
		return nil, fmt.Errorf("person2: %w", err)
	}

	chart1, err := s.buildChart(userID, person1)
	if err != nil {
		return nil, fmt.Errorf("person1: %w", err)
	}
	chart2, err := s.buildChart(userID, person2)
	if err != nil {
		return nil, fmt.Errorf("person2: %w", err)
	}

	result := s.Calc.ScoreCompatibility(chart1, chart2)

	analysis := &domain.CompatibilityAnalysis{
		ID:                 uuid.New(),
		UserID:             userID,
		Person1ChartID:     chart1.ID,
		Person2ChartID:     chart2.ID,
		OverallScore:       result.OverallScore,
		EmotionalScore:     result.EmotionalScore,
		CommunicationScore: result.CommunicationScore,
		SpiritualScore:     result.SpiritualScore,
		Analysis:           result.Analysis,
		KeyInsights:        result.KeyInsights,
		CreatedAt:          time.Now(),
	}

	err = s.ChartRepo.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		if err := s.ChartRepo.CreateTx(ctx, tx, chart1); err != nil {
			return err
		}
		if err := s.ChartRepo.CreateTx(ctx, tx, chart2); err != nil {
			return err
		}
		return s.CompatibilityRepo.CreateTx(ctx, tx, analysis)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save compatibility analysis: %w", err)
	}

	s.Log.Info("compatibility analysis created",
		"analysis_id", analysis.ID,
		"user_id", userID,
		"overall_score", analysis.OverallScore)
	return analysis, nil
}

// GetCompatibility возвращает анализ по идентификатору с проверкой владельца
func (s *Service) GetCompatibility(ctx context.Context, userID string, id uuid.UUID) (*domain.CompatibilityAnalysis, error) {
	analysis, err := s.CompatibilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if analysis.UserID != userID {
		s.Log.Warn("compatibility analysis access denied",
			"analysis_id", id,
			"owner_id", analysis.UserID,
			"requester_id", userID)
		return nil, fmt.Errorf("analysis %s: %w", id, domain.ErrForbidden)
	}
	return analysis, nil
}

// ListCompatibilities возвращает все анализы пользователя, новые первыми
func (s *Service) ListCompatibilities(ctx context.Context, userID string) ([]*domain.CompatibilityAnalysis, error) {
	return s.CompatibilityRepo.ListByUser(ctx, userID)
}

// buildChart собирает карту с рассчитанными полями без сохранения
func (s *Service) buildChart(userID string, data domain.BirthData) (*domain.BirthChart, error) {
	fields, err := s.Calc.DeriveChart(data)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	chart := &domain.BirthChart{
		ID:            uuid.New(),
		UserID:        userID,
		FullName:      data.FullName,
		BirthTime:     data.BirthTime,
		IsTimeUnknown: data.IsTimeUnknown,
		BirthLocation: data.BirthLocation,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Timezone:      data.Timezone,
		Gender:        data.Gender,
		ChartSystem:   data.ChartSystem,
		HouseSystem:   data.HouseSystem,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// дата уже проверена в DeriveChart
	chart.BirthDate, _ = time.Parse("2006-01-02", data.BirthDate)
	if chart.ChartSystem == "" {
		chart.ChartSystem = domain.ChartSystemVedic
	}
	if chart.HouseSystem == "" {
		chart.HouseSystem = domain.HouseSystemWholeSign
	}
	chart.ApplyFields(fields)
	return chart, nil
}
