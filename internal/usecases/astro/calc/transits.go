package calc

import (
	"fmt"
	"sort"
	"time"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

var impacts = []string{domain.ImpactHigh, domain.ImpactMedium, domain.ImpactLow}

// UpcomingTransits генерирует каталог предстоящих переходов планет в знаки:
// по одному событию на каждое из девяти тел внутри горизонта horizonDays,
// отсортированных по дате. Расписание разыгрывается случайно, как и остальная
// часть мок-модели.
func (c *Calculator) UpcomingTransits(now time.Time, horizonDays int) []*domain.TransitEvent {
	events := make([]*domain.TransitEvent, 0, len(PlanetaryBodies))

	for _, planet := range PlanetaryBodies {
		fromIdx := c.intn(12)
		toIdx := (fromIdx + 1) % 12
		fromSign := ZodiacSigns[fromIdx]
		toSign := ZodiacSigns[toIdx]

		events = append(events, &domain.TransitEvent{
			Planet:    planet,
			FromSign:  &fromSign,
			ToSign:    toSign,
			EventDate: now.AddDate(0, 0, c.intn(horizonDays)+1),
			Description: fmt.Sprintf("%s moves from %s into %s, shifting its influence for the coming period.",
				planet, fromSign, toSign),
			Impact: c.pick(impacts),
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})

	return events
}
