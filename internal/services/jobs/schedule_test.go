package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionExpirer_NextRun(t *testing.T) {
	job := NewSubscriptionExpirer(nil, nil)

	// До 03:00 — сегодня
	now := time.Date(2026, 8, 28, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC), job.NextRun(now))

	// После 03:00 — завтра
	now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC), job.NextRun(now))

	// Ровно в 03:00 — завтра, без мгновенного повторного запуска
	now = time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC), job.NextRun(now))
}

func TestTransitRefresher_NextRun(t *testing.T) {
	job := NewTransitRefresher(nil, nil)

	now := time.Date(2026, 8, 28, 3, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 28, 4, 0, 0, 0, time.UTC), job.NextRun(now))

	now = time.Date(2026, 8, 28, 4, 0, 1, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 29, 4, 0, 0, 0, time.UTC), job.NextRun(now))
}

func TestJobNames(t *testing.T) {
	assert.Equal(t, "subscription-expirer", NewSubscriptionExpirer(nil, nil).Name())
	assert.Equal(t, "transit-refresher", NewTransitRefresher(nil, nil).Name())
}
