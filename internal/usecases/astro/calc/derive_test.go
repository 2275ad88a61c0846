package calc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

func seeded(seed int64) *Calculator {
	return New(rand.New(rand.NewSource(seed)))
}

func birthData(date string, birthTime *string) domain.BirthData {
	return domain.BirthData{
		FullName:      "Test Person",
		BirthDate:     date,
		BirthTime:     birthTime,
		BirthLocation: "Mumbai, India",
	}
}

func strPtr(s string) *string { return &s }

func TestDeriveChart_SunSignByDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2000-01-01", "Aries"},
		{"1985-03-21", "Gemini"},
		{"2000-06-15", "Virgo"},
		{"1977-09-09", "Sagittarius"},
		{"1990-12-31", "Aries"}, // день 365 заворачивается на начало круга
	}

	c := seeded(1)
	for _, tt := range tests {
		fields, err := c.DeriveChart(birthData(tt.date, nil))
		require.NoError(t, err, tt.date)
		assert.Equal(t, tt.want, fields.SunSign, "date %s", tt.date)
	}
}

func TestDeriveChart_LeapDayCountedAsNonLeap(t *testing.T) {
	c := seeded(1)

	// 29 февраля считается 60-м днём, как 1 марта невисокосного года
	leap, err := c.DeriveChart(birthData("2000-02-29", nil))
	require.NoError(t, err)

	nonLeap, err := c.DeriveChart(birthData("2001-03-01", nil))
	require.NoError(t, err)

	assert.Equal(t, nonLeap.SunSign, leap.SunSign)
}

func TestDeriveChart_AscendantShiftsByBirthHour(t *testing.T) {
	c := seeded(7)

	// 2000-01-01: солнечный индекс 0, 14 часов дают сдвиг на 7 знаков
	fields, err := c.DeriveChart(birthData("2000-01-01", strPtr("14:30")))
	require.NoError(t, err)
	assert.Equal(t, "Aries", fields.SunSign)
	assert.Equal(t, "Scorpio", fields.Ascendant)
}

func TestDeriveChart_AscendantWithoutBirthTime(t *testing.T) {
	c := seeded(7)

	fields, err := c.DeriveChart(birthData("2000-06-15", nil))
	require.NoError(t, err)
	assert.Equal(t, fields.SunSign, fields.Ascendant)
}

func TestDeriveChart_MalformedBirthTimeTreatedAsAbsent(t *testing.T) {
	c := seeded(7)

	fields, err := c.DeriveChart(birthData("2000-06-15", strPtr("half past nine")))
	require.NoError(t, err)
	assert.Equal(t, fields.SunSign, fields.Ascendant)
}

func TestDeriveChart_InvalidDate(t *testing.T) {
	c := seeded(1)

	_, err := c.DeriveChart(birthData("15-06-2000", nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestDeriveChart_FieldRanges(t *testing.T) {
	c := seeded(99)

	fields, err := c.DeriveChart(birthData("1992-11-03", strPtr("06:45")))
	require.NoError(t, err)

	assert.Contains(t, Nakshatras, fields.Nakshatra)
	assert.Contains(t, DashaPlanets, fields.CurrentMahadasha)
	assert.GreaterOrEqual(t, fields.Pada, 1)
	assert.LessOrEqual(t, fields.Pada, 4)

	require.Len(t, fields.PlanetaryPositions, len(PlanetaryBodies))
	for _, body := range PlanetaryBodies {
		pos, ok := fields.PlanetaryPositions[body]
		require.True(t, ok, "missing body %s", body)
		assert.GreaterOrEqual(t, pos.House, 1, body)
		assert.LessOrEqual(t, pos.House, 12, body)
		assert.GreaterOrEqual(t, pos.Degree, 0, body)
		assert.LessOrEqual(t, pos.Degree, 29, body)
	}
}

func TestDeriveChart_SunAndMoonHousesMatchSigns(t *testing.T) {
	c := seeded(3)

	fields, err := c.DeriveChart(birthData("2000-06-15", nil))
	require.NoError(t, err)

	sunIdx := indexOfSign(t, fields.SunSign)
	moonIdx := indexOfSign(t, fields.MoonSign)

	assert.Equal(t, sunIdx+1, fields.PlanetaryPositions["Sun"].House)
	assert.Equal(t, moonIdx+1, fields.PlanetaryPositions["Moon"].House)

	// Лунный знак на 1-3 позиции дальше солнечного
	offset := (moonIdx - sunIdx + 12) % 12
	assert.GreaterOrEqual(t, offset, 1)
	assert.LessOrEqual(t, offset, 3)
}

func TestDeriveChart_DeterministicWithSameSeed(t *testing.T) {
	data := birthData("1988-04-22", strPtr("21:10"))

	first, err := seeded(42).DeriveChart(data)
	require.NoError(t, err)
	second, err := seeded(42).DeriveChart(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func indexOfSign(t *testing.T, sign string) int {
	t.Helper()
	for i, s := range ZodiacSigns {
		if s == sign {
			return i
		}
	}
	t.Fatalf("unknown sign %s", sign)
	return -1
}
