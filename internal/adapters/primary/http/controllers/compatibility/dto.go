package compatibility

import "github.com/admin/astro-apps/kundali-api/internal/domain"

// CreateRequest данные рождения двух людей для анализа совместимости
type CreateRequest struct {
	Person1Data domain.BirthData `json:"person1Data"`
	Person2Data domain.BirthData `json:"person2Data"`
}
