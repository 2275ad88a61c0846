package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ChartSystemVedic   = "vedic"
	ChartSystemWestern = "western"

	HouseSystemWholeSign  = "whole_sign"
	HouseSystemPlacidus   = "placidus"
	HouseSystemEqualHouse = "equal_house"
)

// BirthData входные данные рождения, как их присылает клиент.
// BirthDate в формате YYYY-MM-DD, BirthTime в формате HH:MM.
type BirthData struct {
	FullName      string   `json:"full_name"`
	BirthDate     string   `json:"birth_date"`
	BirthTime     *string  `json:"birth_time,omitempty"`
	IsTimeUnknown bool     `json:"is_time_unknown"`
	BirthLocation string   `json:"birth_location"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Timezone      *string  `json:"timezone,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	ChartSystem   string   `json:"chart_system,omitempty"`
	HouseSystem   string   `json:"house_system,omitempty"`
}

// PlanetPosition положение тела: дом 1-12, градус 0-29
type PlanetPosition struct {
	House  int `json:"house"`
	Degree int `json:"degree"`
}

// PlanetaryPositions маппинг девяти тел на позиции, хранится в БД как JSONB
type PlanetaryPositions map[string]PlanetPosition

func (p PlanetaryPositions) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

func (p *PlanetaryPositions) Scan(src interface{}) error {
	return scanJSON(src, p)
}

// ChartFields рассчитанные астрологические поля карты.
// Заполняются ровно один раз при создании карты и далее не пересчитываются.
type ChartFields struct {
	SunSign            string             `json:"sun_sign"`
	MoonSign           string             `json:"moon_sign"`
	Ascendant          string             `json:"ascendant"`
	Nakshatra          string             `json:"nakshatra"`
	Pada               int                `json:"pada"`
	CurrentMahadasha   string             `json:"current_mahadasha"`
	PlanetaryPositions PlanetaryPositions `json:"planetary_positions"`
	HousePositions     JSONObject         `json:"house_positions"`
	AspectData         JSONObject         `json:"aspect_data"`
}

// BirthChart натальная карта: исходные данные рождения плюс рассчитанные поля
type BirthChart struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	FullName      string    `json:"full_name" db:"full_name"`
	BirthDate     time.Time `json:"birth_date" db:"birth_date"`
	BirthTime     *string   `json:"birth_time,omitempty" db:"birth_time"`
	IsTimeUnknown bool      `json:"is_time_unknown" db:"is_time_unknown"`
	BirthLocation string    `json:"birth_location" db:"birth_location"`
	Latitude      *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64  `json:"longitude,omitempty" db:"longitude"`
	Timezone      *string   `json:"timezone,omitempty" db:"timezone"`
	Gender        *string   `json:"gender,omitempty" db:"gender"`
	ChartSystem   string    `json:"chart_system" db:"chart_system"`
	HouseSystem   string    `json:"house_system" db:"house_system"`

	SunSign            string             `json:"sun_sign" db:"sun_sign"`
	MoonSign           string             `json:"moon_sign" db:"moon_sign"`
	Ascendant          string             `json:"ascendant" db:"ascendant"`
	Nakshatra          string             `json:"nakshatra" db:"nakshatra"`
	Pada               int                `json:"pada" db:"pada"`
	CurrentMahadasha   string             `json:"current_mahadasha" db:"current_mahadasha"`
	PlanetaryPositions PlanetaryPositions `json:"planetary_positions" db:"planetary_positions"`
	HousePositions     JSONObject         `json:"house_positions" db:"house_positions"`
	AspectData         JSONObject         `json:"aspect_data" db:"aspect_data"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ApplyFields переносит рассчитанные поля в карту
func (c *BirthChart) ApplyFields(f ChartFields) {
	c.SunSign = f.SunSign
	c.MoonSign = f.MoonSign
	c.Ascendant = f.Ascendant
	c.Nakshatra = f.Nakshatra
	c.Pada = f.Pada
	c.CurrentMahadasha = f.CurrentMahadasha
	c.PlanetaryPositions = f.PlanetaryPositions
	c.HousePositions = f.HousePositions
	c.AspectData = f.AspectData
}
