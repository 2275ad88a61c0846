package calc

import "github.com/admin/astro-apps/kundali-api/internal/domain"

// Справочные таблицы. Неизменяемые константы процесса, инициализируются один раз.

// ZodiacSigns 12 знаков зодиака в порядке индексации
var ZodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Nakshatras 27 лунных стоянок
var Nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// DashaPlanets 9 управителей махадаши
var DashaPlanets = []string{
	"Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury", "Ketu", "Venus",
}

// PlanetaryBodies 9 тел карты в порядке расчёта позиций
var PlanetaryBodies = []string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// PredictionCategories категории прогнозов
var PredictionCategories = []string{
	domain.CategoryCareer,
	domain.CategoryLove,
	domain.CategoryFinance,
	domain.CategoryHealth,
	domain.CategoryEducation,
	domain.CategoryFamily,
}

var intensities = []string{"excellent", "favorable", "positive", "mixed", "caution"}

var luckyColors = []string{
	"Red", "Blue", "Green", "Yellow", "Purple", "Orange", "Pink", "Gold", "Silver", "White",
}

// compatibilityMatrix захардкоженные пары знаков.
// Пары вне матрицы получают случайный балл в [40,79].
var compatibilityMatrix = map[string]map[string]int{
	"Aries":       {"Leo": 90, "Sagittarius": 85, "Gemini": 75, "Aquarius": 80, "Libra": 65},
	"Leo":         {"Aries": 90, "Sagittarius": 88, "Gemini": 70, "Libra": 75, "Aquarius": 65},
	"Sagittarius": {"Aries": 85, "Leo": 88, "Aquarius": 75, "Libra": 70, "Gemini": 72},
}

// contentTemplates тексты прогнозов по категориям и периодам.
// Авторские тексты есть только у career и love; остальные категории
// используют тексты career как fallback.
var contentTemplates = map[string]map[string][]string{
	domain.CategoryCareer: {
		domain.PredictionDaily: {
			"Today brings excellent opportunities for professional growth. A new project may come your way.",
			"Focus on collaboration and teamwork today. Your leadership skills will be recognized.",
			"Be cautious in financial decisions today. Avoid major investments or commitments.",
		},
		domain.PredictionWeekly: {
			"This week favors career advancement and recognition. Your hard work will pay off.",
			"Professional relationships take center stage this week. Network and build connections.",
			"A challenging period at work requires patience and strategic thinking.",
		},
	},
	domain.CategoryLove: {
		domain.PredictionDaily: {
			"Romance is in the air today. Single? You might meet someone special.",
			"Communication with your partner needs attention today. Be open and honest.",
			"Past relationships may come into focus. Time for closure and healing.",
		},
		domain.PredictionWeekly: {
			"Love and relationships flourish this week. Expect harmony and understanding.",
			"Some tension in relationships may arise. Address issues with compassion.",
			"New romantic opportunities present themselves. Stay open to possibilities.",
		},
	},
}
