package astro

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/repository"
)

// GeneratePredictionsForChart генерирует полный набор прогнозов для карты:
// по одному daily и одному weekly на каждую категорию. Вызывается из
// Kafka-консьюмера или синхронно при создании карты.
func (s *Service) GeneratePredictionsForChart(ctx context.Context, userID string, chartID uuid.UUID) error {
	now := time.Now()
	drafts := s.Calc.GeneratePredictions(now)

	predictions := make([]*domain.Prediction, 0, len(drafts))
	for _, draft := range drafts {
		chartRef := chartID
		predictions = append(predictions, &domain.Prediction{
			ID:             uuid.New(),
			UserID:         userID,
			ChartID:        &chartRef,
			Category:       draft.Category,
			PredictionType: draft.PredictionType,
			ValidFrom:      draft.ValidFrom,
			ValidTo:        draft.ValidTo,
			Content:        draft.Content,
			Intensity:      draft.Intensity,
			Confidence:     draft.Confidence,
			LuckyNumber:    draft.LuckyNumber,
			LuckyColor:     draft.LuckyColor,
			CreatedAt:      now,
		})
	}

	if err := s.PredictionRepo.CreateBatch(ctx, predictions); err != nil {
		return fmt.Errorf("failed to create predictions: %w", err)
	}

	s.invalidateActivePredictions(ctx, userID)

	s.Log.Info("predictions generated",
		"chart_id", chartID,
		"user_id", userID,
		"count", len(predictions))
	return nil
}

// ListPredictions возвращает прогнозы пользователя с опциональными фильтрами
// по типу и категории
func (s *Service) ListPredictions(ctx context.Context, userID string, filter repository.PredictionFilter) ([]*domain.Prediction, error) {
	return s.PredictionRepo.ListByUser(ctx, userID, filter)
}

// ActivePredictions возвращает прогнозы, чьё окно действия покрывает текущую
// дату. Результат кэшируется в Redis до конца суток.
func (s *Service) ActivePredictions(ctx context.Context, userID string) ([]*domain.Prediction, error) {
	key := activePredictionsKey(userID)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err == nil && cached != "" {
			var predictions []*domain.Prediction
			if err := json.Unmarshal([]byte(cached), &predictions); err == nil {
				return predictions, nil
			}
			s.Log.Warn("failed to decode cached predictions, falling back to db",
				"user_id", userID)
		}
	}

	now := time.Now()
	predictions, err := s.PredictionRepo.ListActive(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(predictions); err == nil {
			if err := s.Cache.Set(ctx, key, string(raw), untilEndOfDay(now)); err != nil {
				s.Log.Warn("failed to cache active predictions",
					"error", err,
					"user_id", userID)
			}
		}
	}

	return predictions, nil
}

func (s *Service) invalidateActivePredictions(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, activePredictionsKey(userID)); err != nil {
		s.Log.Warn("failed to invalidate predictions cache",
			"error", err,
			"user_id", userID)
	}
}

func activePredictionsKey(userID string) string {
	return "predictions:active:" + userID
}

// untilEndOfDay время до конца текущих суток, минимальный TTL одна минута
func untilEndOfDay(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	ttl := midnight.Sub(now)
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return ttl
}
