package astro

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// CreateChart создаёт натальную карту: валидирует данные рождения,
// рассчитывает астрологические поля и сохраняет карту. Прогнозы для карты
// генерируются асинхронно через событие chart.created; если producer не
// сконфигурирован, генерация выполняется синхронно в этом же запросе.
func (s *Service) CreateChart(ctx context.Context, userID string, data domain.BirthData) (*domain.BirthChart, error) {
	if err := validateBirthData(data); err != nil {
		return nil, err
	}

	chart, err := s.buildChart(userID, data)
	if err != nil {
		s.Log.Warn("failed to derive chart fields",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.ChartRepo.Create(ctx, chart); err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	s.Log.Info("birth chart created",
		"chart_id", chart.ID,
		"user_id", userID,
		"sun_sign", chart.SunSign)

	if s.Producer != nil {
		if err := s.Producer.SendChartCreated(ctx, userID, chart.ID); err != nil {
			s.Log.Error("failed to publish chart created event, generating predictions inline",
				"error", err,
				"chart_id", chart.ID)
			s.generatePredictionsInline(ctx, userID, chart.ID)
		}
	} else {
		s.generatePredictionsInline(ctx, userID, chart.ID)
	}

	return chart, nil
}

// GetChart возвращает карту по идентификатору с проверкой владельца
func (s *Service) GetChart(ctx context.Context, userID string, chartID uuid.UUID) (*domain.BirthChart, error) {
	chart, err := s.ChartRepo.GetByID(ctx, chartID)
	if err != nil {
		return nil, err
	}
	if chart.UserID != userID {
		s.Log.Warn("chart access denied",
			"chart_id", chartID,
			"owner_id", chart.UserID,
			"requester_id", userID)
		return nil, fmt.Errorf("chart %s: %w", chartID, domain.ErrForbidden)
	}
	return chart, nil
}

// ListCharts возвращает все карты пользователя, новые первыми
func (s *Service) ListCharts(ctx context.Context, userID string) ([]*domain.BirthChart, error) {
	return s.ChartRepo.ListByUser(ctx, userID)
}

// generatePredictionsInline синхронный фолбэк генерации прогнозов,
// ошибка не прерывает создание карты
func (s *Service) generatePredictionsInline(ctx context.Context, userID string, chartID uuid.UUID) {
	if err := s.GeneratePredictionsForChart(ctx, userID, chartID); err != nil {
		s.Log.Error("failed to generate predictions for chart",
			"error", err,
			"chart_id", chartID)
	}
}

// validateBirthData проверяет обязательные поля данных рождения
func validateBirthData(data domain.BirthData) error {
	if data.FullName == "" {
		return fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}
	if data.BirthDate == "" {
		return fmt.Errorf("%w: birth_date is required", domain.ErrValidation)
	}
	if data.BirthLocation == "" {
		return fmt.Errorf("%w: birth_location is required", domain.ErrValidation)
	}
	return nil
}
