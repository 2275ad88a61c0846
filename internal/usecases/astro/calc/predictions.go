package calc

import (
	"time"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// GeneratePredictions генерирует батч прогнозов относительно переданной даты:
// ровно по два (дневной и недельный) на каждую из шести категорий.
// Идентификаторы и владельца назначает вызывающий слой.
func (c *Calculator) GeneratePredictions(now time.Time) []domain.PredictionDraft {
	drafts := make([]domain.PredictionDraft, 0, len(PredictionCategories)*2)

	for _, category := range PredictionCategories {
		luckyNumber := c.intn(9) + 1
		luckyColor := c.pick(luckyColors)

		drafts = append(drafts, domain.PredictionDraft{
			Category:       category,
			PredictionType: domain.PredictionDaily,
			ValidFrom:      now,
			ValidTo:        now.AddDate(0, 0, 1),
			Content:        c.predictionContent(category, domain.PredictionDaily),
			Intensity:      c.pick(intensities),
			Confidence:     c.intn(31) + 70,
			LuckyNumber:    &luckyNumber,
			LuckyColor:     &luckyColor,
		})

		drafts = append(drafts, domain.PredictionDraft{
			Category:       category,
			PredictionType: domain.PredictionWeekly,
			ValidFrom:      now,
			ValidTo:        now.AddDate(0, 0, 7),
			Content:        c.predictionContent(category, domain.PredictionWeekly),
			Intensity:      c.pick(intensities),
			Confidence:     c.intn(26) + 75,
		})
	}

	return drafts
}

// predictionContent случайный шаблон текста для категории и периода.
// Категории без авторских текстов получают тексты career.
func (c *Calculator) predictionContent(category, predictionType string) string {
	categoryTemplates, ok := contentTemplates[category]
	if !ok {
		categoryTemplates = contentTemplates[domain.CategoryCareer]
	}
	return c.pick(categoryTemplates[predictionType])
}
