package calc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

func chartWithSigns(sun, moon, asc string) *domain.BirthChart {
	return &domain.BirthChart{
		SunSign:   sun,
		MoonSign:  moon,
		Ascendant: asc,
	}
}

func TestScoreCompatibility_MatrixPair(t *testing.T) {
	c := seeded(1)

	// Все три пары знаков из матрицы, случайность не участвует
	result := c.ScoreCompatibility(
		chartWithSigns("Aries", "Leo", "Sagittarius"),
		chartWithSigns("Leo", "Aries", "Leo"),
	)

	// sun 90, moon 90, asc 88
	assert.Equal(t, 89, result.EmotionalScore)
	assert.Equal(t, 90, result.CommunicationScore)
	assert.Equal(t, 89, result.SpiritualScore)
	assert.Equal(t, 89, result.OverallScore)
}

func TestScoreCompatibility_IdenticalFireSigns(t *testing.T) {
	c := seeded(1)

	result := c.ScoreCompatibility(
		chartWithSigns("Aries", "Aries", "Aries"),
		chartWithSigns("Leo", "Leo", "Leo"),
	)

	assert.Equal(t, 90, result.OverallScore)
	assert.Contains(t, result.Analysis, "90% match")
	assert.Contains(t, result.Analysis, "excellent")
	assert.Contains(t, result.Analysis, "deep emotional understanding")
}

func TestScoreCompatibility_FallbackRange(t *testing.T) {
	c := seeded(5)

	// Пар Cancer-Capricorn в матрице нет, каждый балл из [40,79]
	for i := 0; i < 50; i++ {
		result := c.ScoreCompatibility(
			chartWithSigns("Cancer", "Virgo", "Taurus"),
			chartWithSigns("Capricorn", "Scorpio", "Pisces"),
		)

		for name, score := range map[string]int{
			"emotional":     result.EmotionalScore,
			"communication": result.CommunicationScore,
			"spiritual":     result.SpiritualScore,
		} {
			assert.GreaterOrEqual(t, score, 40, name)
			assert.LessOrEqual(t, score, 79, name)
		}

		expectedOverall := (result.EmotionalScore + result.CommunicationScore + result.SpiritualScore) / 3
		assert.Equal(t, expectedOverall, result.OverallScore)
	}
}

func TestScoreCompatibility_KeyInsights(t *testing.T) {
	c := seeded(2)

	result := c.ScoreCompatibility(
		chartWithSigns("Leo", "Gemini", "Libra"),
		chartWithSigns("Sagittarius", "Cancer", "Aquarius"),
	)

	require.Len(t, result.KeyInsights, 3)
	assert.Equal(t, "Strong Leo-Sagittarius connection indicates shared goals", result.KeyInsights[0])
	assert.Equal(t, "Gemini Moon and Cancer Moon create emotional harmony", result.KeyInsights[1])
	assert.Equal(t, "Compatible Nakshatras suggest natural understanding", result.KeyInsights[2])
}

func TestScoreCompatibility_ChallengingTone(t *testing.T) {
	// Подбираем seed, дающий низкие баллы, через детерминированные знаки нельзя:
	// вне матрицы минимум 40, (40+40)/2=40 < 50 возможен только случайно.
	// Проверяем обе ветки формулировок на границах напрямую.
	assert.Equal(t, "challenging", overallEnergy(50))
	assert.Equal(t, "good", overallEnergy(51))
	assert.Equal(t, "good", overallEnergy(70))
	assert.Equal(t, "excellent", overallEnergy(71))

	assert.Equal(t, "opportunities for growth in emotional connection", emotionalTone(70))
	assert.Equal(t, "deep emotional understanding", emotionalTone(71))
}

func TestScoreCompatibility_AnalysisMentionsSunSigns(t *testing.T) {
	c := seeded(11)

	result := c.ScoreCompatibility(
		chartWithSigns("Pisces", "Libra", "Virgo"),
		chartWithSigns("Taurus", "Scorpio", "Cancer"),
	)

	assert.Contains(t, result.Analysis, "Pisces-Taurus combination")
	assert.Contains(t, result.Analysis, fmt.Sprintf("%d%% match", result.OverallScore))
}
