package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// TransitEvent глобальное событие перехода планеты в знак.
// Каталог общий для всех пользователей, ядро его только читает.
type TransitEvent struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Planet      string    `json:"planet" db:"planet"`
	FromSign    *string   `json:"from_sign,omitempty" db:"from_sign"`
	ToSign      string    `json:"to_sign" db:"to_sign"`
	EventDate   time.Time `json:"event_date" db:"event_date"`
	Description string    `json:"description" db:"description"`
	Impact      string    `json:"impact" db:"impact"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
