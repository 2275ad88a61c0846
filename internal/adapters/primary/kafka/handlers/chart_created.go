package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkaAdapter "github.com/admin/astro-apps/kundali-api/internal/adapters/secondary/kafka"
	astroUsecase "github.com/admin/astro-apps/kundali-api/internal/usecases/astro"
)

// ChartCreatedHandler обрабатывает события создания карты: генерирует и
// сохраняет стартовый набор прогнозов для владельца
type ChartCreatedHandler struct {
	astroService *astroUsecase.Service
	log          *slog.Logger
}

// NewChartCreatedHandler создаёт новый обработчик событий создания карты
func NewChartCreatedHandler(astroService *astroUsecase.Service, log *slog.Logger) *ChartCreatedHandler {
	return &ChartCreatedHandler{
		astroService: astroService,
		log:          log,
	}
}

// HandleMessage декодирует событие и запускает генерацию прогнозов
func (h *ChartCreatedHandler) HandleMessage(ctx context.Context, key string, value []byte) error {
	var event kafkaAdapter.ChartCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		h.log.Error("failed to decode chart created event",
			"error", err,
			"key", key,
		)
		// Битое сообщение ретраить бессмысленно
		return nil
	}

	h.log.Info("chart created event received",
		"chart_id", event.ChartID,
		"user_id", event.UserID,
	)

	if err := h.astroService.GeneratePredictionsForChart(ctx, event.UserID, event.ChartID); err != nil {
		return fmt.Errorf("failed to generate predictions for chart %s: %w", event.ChartID, err)
	}

	return nil
}
