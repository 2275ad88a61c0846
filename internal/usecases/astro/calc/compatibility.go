package calc

import (
	"fmt"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// ScoreCompatibility считает совместимость двух уже рассчитанных карт.
// Не падает на корректных картах: незнакомые пары знаков деградируют
// в случайный балл.
func (c *Calculator) ScoreCompatibility(chart1, chart2 *domain.BirthChart) domain.CompatibilityResult {
	sunComp := c.signCompatibility(chart1.SunSign, chart2.SunSign)
	moonComp := c.signCompatibility(chart1.MoonSign, chart2.MoonSign)
	ascComp := c.signCompatibility(chart1.Ascendant, chart2.Ascendant)

	emotionalScore := (moonComp + ascComp) / 2
	communicationScore := (sunComp + moonComp) / 2
	spiritualScore := (sunComp + ascComp) / 2
	overallScore := (emotionalScore + communicationScore + spiritualScore) / 3

	keyInsights := domain.StringList{
		fmt.Sprintf("Strong %s-%s connection indicates shared goals", chart1.SunSign, chart2.SunSign),
		fmt.Sprintf("%s Moon and %s Moon create emotional harmony", chart1.MoonSign, chart2.MoonSign),
		"Compatible Nakshatras suggest natural understanding",
	}

	analysis := fmt.Sprintf(
		"Your compatibility analysis shows a %d%% match. The %s-%s combination brings %s energy to your relationship. Your moon signs create %s.",
		overallScore,
		chart1.SunSign, chart2.SunSign,
		overallEnergy(overallScore),
		emotionalTone(emotionalScore),
	)

	return domain.CompatibilityResult{
		OverallScore:       overallScore,
		EmotionalScore:     emotionalScore,
		CommunicationScore: communicationScore,
		SpiritualScore:     spiritualScore,
		Analysis:           analysis,
		KeyInsights:        keyInsights,
	}
}

// signCompatibility балл пары знаков из матрицы, либо случайный в [40,79]
func (c *Calculator) signCompatibility(sign1, sign2 string) int {
	if row, ok := compatibilityMatrix[sign1]; ok {
		if score, ok := row[sign2]; ok {
			return score
		}
	}
	return c.intn(40) + 40
}

func overallEnergy(score int) string {
	switch {
	case score > 70:
		return "excellent"
	case score > 50:
		return "good"
	default:
		return "challenging"
	}
}

func emotionalTone(score int) string {
	if score > 70 {
		return "deep emotional understanding"
	}
	return "opportunities for growth in emotional connection"
}
