package calc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

const birthDateLayout = "2006-01-02"

// Накопленные дни месяцев невисокосного года.
// Счёт дня года намеренно не учитывает 29 февраля: поведение мок-формулы.
var cumulativeDays = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DeriveChart рассчитывает астрологические поля карты по данным рождения.
// Солнечный знак и асцендент детерминированы входом; лунный знак, накшатра,
// пада, махадаша и позиции большинства тел разыгрываются случайно.
// Единственная ошибка — нераспарсиваемая дата рождения.
func (c *Calculator) DeriveChart(data domain.BirthData) (domain.ChartFields, error) {
	birthDate, err := time.Parse(birthDateLayout, data.BirthDate)
	if err != nil {
		return domain.ChartFields{}, fmt.Errorf("%w: invalid birth date %q", domain.ErrValidation, data.BirthDate)
	}

	dayOfYear := dayOfYearNonLeap(birthDate)
	sunIdx := dayOfYear * 12 / 365 % 12

	moonIdx := (sunIdx + c.intn(3) + 1) % 12

	// Асцендент сдвигается на один знак каждые два часа;
	// без времени рождения совпадает с солнечным знаком
	ascIdx := sunIdx
	if hours, ok := birthHour(data.BirthTime); ok {
		ascIdx = (sunIdx + hours/2) % 12
	}

	positions := make(domain.PlanetaryPositions, len(PlanetaryBodies))
	for _, body := range PlanetaryBodies {
		var house int
		switch body {
		case "Sun":
			house = sunIdx + 1
		case "Moon":
			house = moonIdx + 1
		default:
			house = c.intn(12) + 1
		}
		positions[body] = domain.PlanetPosition{
			House:  house,
			Degree: c.intn(30),
		}
	}

	return domain.ChartFields{
		SunSign:            ZodiacSigns[sunIdx],
		MoonSign:           ZodiacSigns[moonIdx],
		Ascendant:          ZodiacSigns[ascIdx],
		Nakshatra:          c.pick(Nakshatras),
		Pada:               c.intn(4) + 1,
		CurrentMahadasha:   c.pick(DashaPlanets),
		PlanetaryPositions: positions,
		// Расчёт куспидов домов и аспектов не реализован, поля-заглушки
		HousePositions: domain.JSONObject{},
		AspectData:     domain.JSONObject{},
	}, nil
}

// dayOfYearNonLeap порядковый день года по невисокосному календарю
func dayOfYearNonLeap(t time.Time) int {
	return cumulativeDays[t.Month()-1] + t.Day()
}

// birthHour извлекает целый час из строки "HH:MM".
// Пустое или некорректное время считается отсутствующим.
func birthHour(birthTime *string) (int, bool) {
	if birthTime == nil || *birthTime == "" {
		return 0, false
	}
	parts := strings.SplitN(*birthTime, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	return hours, true
}
