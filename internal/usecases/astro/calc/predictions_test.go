package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

func TestGeneratePredictions_FullBatch(t *testing.T) {
	c := seeded(1)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	drafts := c.GeneratePredictions(now)
	require.Len(t, drafts, 12)

	// Ровно один daily и один weekly на категорию
	perCategory := make(map[string]map[string]int)
	for _, d := range drafts {
		if perCategory[d.Category] == nil {
			perCategory[d.Category] = make(map[string]int)
		}
		perCategory[d.Category][d.PredictionType]++
	}

	require.Len(t, perCategory, len(PredictionCategories))
	for _, category := range PredictionCategories {
		assert.Equal(t, 1, perCategory[category][domain.PredictionDaily], category)
		assert.Equal(t, 1, perCategory[category][domain.PredictionWeekly], category)
	}
}

func TestGeneratePredictions_ValidityWindows(t *testing.T) {
	c := seeded(2)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	for _, d := range c.GeneratePredictions(now) {
		assert.Equal(t, now, d.ValidFrom, d.Category)
		switch d.PredictionType {
		case domain.PredictionDaily:
			assert.Equal(t, now.AddDate(0, 0, 1), d.ValidTo, d.Category)
		case domain.PredictionWeekly:
			assert.Equal(t, now.AddDate(0, 0, 7), d.ValidTo, d.Category)
		default:
			t.Fatalf("unexpected prediction type %s", d.PredictionType)
		}
	}
}

func TestGeneratePredictions_ConfidenceAndIntensity(t *testing.T) {
	c := seeded(3)

	for _, d := range c.GeneratePredictions(time.Now()) {
		assert.Contains(t, intensities, d.Intensity)

		switch d.PredictionType {
		case domain.PredictionDaily:
			assert.GreaterOrEqual(t, d.Confidence, 70)
			assert.LessOrEqual(t, d.Confidence, 100)
		case domain.PredictionWeekly:
			assert.GreaterOrEqual(t, d.Confidence, 75)
			assert.LessOrEqual(t, d.Confidence, 100)
		}
	}
}

func TestGeneratePredictions_LuckyFieldsOnlyDaily(t *testing.T) {
	c := seeded(4)

	for _, d := range c.GeneratePredictions(time.Now()) {
		if d.PredictionType == domain.PredictionDaily {
			require.NotNil(t, d.LuckyNumber, d.Category)
			require.NotNil(t, d.LuckyColor, d.Category)
			assert.GreaterOrEqual(t, *d.LuckyNumber, 1)
			assert.LessOrEqual(t, *d.LuckyNumber, 9)
			assert.Contains(t, luckyColors, *d.LuckyColor)
		} else {
			assert.Nil(t, d.LuckyNumber, d.Category)
			assert.Nil(t, d.LuckyColor, d.Category)
		}
	}
}

func TestGeneratePredictions_ContentTemplates(t *testing.T) {
	c := seeded(5)

	careerDaily := contentTemplates[domain.CategoryCareer][domain.PredictionDaily]
	loveDaily := contentTemplates[domain.CategoryLove][domain.PredictionDaily]

	for _, d := range c.GeneratePredictions(time.Now()) {
		if d.PredictionType != domain.PredictionDaily {
			continue
		}
		switch d.Category {
		case domain.CategoryLove:
			assert.Contains(t, loveDaily, d.Content)
		default:
			// Категории без авторских текстов используют тексты career
			assert.Contains(t, careerDaily, d.Content)
		}
	}
}
