package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompatibilityResult чистый результат скоринга двух карт
type CompatibilityResult struct {
	OverallScore       int        `json:"overall_score"`
	EmotionalScore     int        `json:"emotional_score"`
	CommunicationScore int        `json:"communication_score"`
	SpiritualScore     int        `json:"spiritual_score"`
	Analysis           string     `json:"analysis"`
	KeyInsights        StringList `json:"key_insights"`
}

// CompatibilityAnalysis сохранённый анализ совместимости двух карт.
// Создаётся один раз и далее не изменяется.
type CompatibilityAnalysis struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	UserID             string     `json:"user_id" db:"user_id"`
	Person1ChartID     uuid.UUID  `json:"person1_chart_id" db:"person1_chart_id"`
	Person2ChartID     uuid.UUID  `json:"person2_chart_id" db:"person2_chart_id"`
	OverallScore       int        `json:"overall_score" db:"overall_score"`
	EmotionalScore     int        `json:"emotional_score" db:"emotional_score"`
	CommunicationScore int        `json:"communication_score" db:"communication_score"`
	SpiritualScore     int        `json:"spiritual_score" db:"spiritual_score"`
	Analysis           string     `json:"analysis" db:"analysis"`
	KeyInsights        StringList `json:"key_insights" db:"key_insights"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
}
