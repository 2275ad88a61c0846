package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlanBasic        = "basic"
	PlanPremium      = "premium"
	PlanProfessional = "professional"

	SubscriptionActive    = "active"
	SubscriptionInactive  = "inactive"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// Subscription подписка пользователя. Ядро её не вычисляет,
// это чистое состояние, переключаемое внешним апгрейдом.
type Subscription struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Plan      string     `json:"plan" db:"plan"`
	Status    string     `json:"status" db:"status"`
	StartDate time.Time  `json:"start_date" db:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// IsValidPlan проверяет, что план один из поддерживаемых
func IsValidPlan(plan string) bool {
	switch plan {
	case PlanBasic, PlanPremium, PlanProfessional:
		return true
	}
	return false
}

// DefaultSubscription подписка по умолчанию для пользователей без записи в БД
func DefaultSubscription(userID string) *Subscription {
	return &Subscription{
		UserID: userID,
		Plan:   PlanBasic,
		Status: SubscriptionActive,
	}
}
