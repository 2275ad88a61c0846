package kafka

import (
	"context"

	"github.com/google/uuid"
)

// IEventProducer интерфейс для публикации доменных событий
type IEventProducer interface {
	// SendChartCreated публикует событие создания натальной карты
	SendChartCreated(ctx context.Context, userID string, chartID uuid.UUID) error
	// Send отправляет произвольное сообщение
	Send(ctx context.Context, key string, value []byte) error
	// Close закрывает producer
	Close() error
}
