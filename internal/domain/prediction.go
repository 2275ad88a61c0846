package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	PredictionDaily   = "daily"
	PredictionWeekly  = "weekly"
	PredictionMonthly = "monthly" // принимается фильтром, генератором не создаётся
)

const (
	CategoryCareer    = "career"
	CategoryLove      = "love"
	CategoryFinance   = "finance"
	CategoryHealth    = "health"
	CategoryEducation = "education"
	CategoryFamily    = "family"
)

// Prediction персональный прогноз на период [ValidFrom, ValidTo)
type Prediction struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	UserID         string     `json:"user_id" db:"user_id"`
	ChartID        *uuid.UUID `json:"chart_id,omitempty" db:"chart_id"`
	Category       string     `json:"category" db:"category"`
	PredictionType string     `json:"prediction_type" db:"prediction_type"`
	ValidFrom      time.Time  `json:"valid_from" db:"valid_from"`
	ValidTo        time.Time  `json:"valid_to" db:"valid_to"`
	Content        string     `json:"content" db:"content"`
	Intensity      string     `json:"intensity" db:"intensity"`
	Confidence     int        `json:"confidence" db:"confidence"`
	LuckyNumber    *int       `json:"lucky_number,omitempty" db:"lucky_number"`
	LuckyColor     *string    `json:"lucky_color,omitempty" db:"lucky_color"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// PredictionDraft прогноз без identity: чистый результат генератора,
// идентификаторы и владельца назначает слой оркестрации
type PredictionDraft struct {
	Category       string
	PredictionType string
	ValidFrom      time.Time
	ValidTo        time.Time
	Content        string
	Intensity      string
	Confidence     int
	LuckyNumber    *int
	LuckyColor     *string
}
