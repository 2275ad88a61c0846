package astro

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/repository"
)

const testUserID = "user-123"

func validBirthData() domain.BirthData {
	return domain.BirthData{
		FullName:      "Asha Sharma",
		BirthDate:     "2000-06-15",
		BirthLocation: "Delhi, India",
	}
}

func TestCreateChart_Success(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	chart, err := env.service.CreateChart(ctx, testUserID, validBirthData())
	require.NoError(t, err)

	assert.Equal(t, testUserID, chart.UserID)
	assert.Equal(t, "Virgo", chart.SunSign)
	assert.Equal(t, domain.ChartSystemVedic, chart.ChartSystem)
	assert.Equal(t, domain.HouseSystemWholeSign, chart.HouseSystem)
	assert.NotEmpty(t, chart.MoonSign)
	assert.Len(t, chart.PlanetaryPositions, 9)

	stored, err := env.charts.GetByID(ctx, chart.ID)
	require.NoError(t, err)
	assert.Equal(t, chart, stored)
}

func TestCreateChart_GeneratesPredictionsWithoutProducer(t *testing.T) {
	env := newTestEnv()

	chart, err := env.service.CreateChart(context.Background(), testUserID, validBirthData())
	require.NoError(t, err)

	// Без Kafka прогнозы генерируются синхронно
	require.Len(t, env.predictions.created, 12)
	for _, p := range env.predictions.created {
		assert.Equal(t, testUserID, p.UserID)
		require.NotNil(t, p.ChartID)
		assert.Equal(t, chart.ID, *p.ChartID)
	}
}

func TestCreateChart_PublishesEventWithProducer(t *testing.T) {
	env := newTestEnv()
	producer := &stubProducer{}
	env.service.Producer = producer

	chart, err := env.service.CreateChart(context.Background(), testUserID, validBirthData())
	require.NoError(t, err)

	require.Len(t, producer.events, 1)
	assert.Equal(t, chart.ID, producer.events[0])
	// Генерация уходит консьюмеру, синхронно ничего не пишется
	assert.Empty(t, env.predictions.created)
}

func TestCreateChart_FallsBackWhenPublishFails(t *testing.T) {
	env := newTestEnv()
	env.service.Producer = &stubProducer{sendErr: errors.New("broker down")}

	_, err := env.service.CreateChart(context.Background(), testUserID, validBirthData())
	require.NoError(t, err)

	assert.Len(t, env.predictions.created, 12)
}

func TestCreateChart_Validation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name   string
		mutate func(*domain.BirthData)
	}{
		{"missing full name", func(d *domain.BirthData) { d.FullName = "" }},
		{"missing birth date", func(d *domain.BirthData) { d.BirthDate = "" }},
		{"missing birth location", func(d *domain.BirthData) { d.BirthLocation = "" }},
		{"unparseable birth date", func(d *domain.BirthData) { d.BirthDate = "июнь 2000" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validBirthData()
			tt.mutate(&data)

			_, err := env.service.CreateChart(context.Background(), testUserID, data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}

func TestGetChart_ForeignOwner(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	chart, err := env.service.CreateChart(ctx, testUserID, validBirthData())
	require.NoError(t, err)

	_, err = env.service.GetChart(ctx, "someone-else", chart.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	got, err := env.service.GetChart(ctx, testUserID, chart.ID)
	require.NoError(t, err)
	assert.Equal(t, chart.ID, got.ID)
}

func TestActivePredictions_CachesResult(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.predictions.active = []*domain.Prediction{
		{UserID: testUserID, Category: domain.CategoryCareer, PredictionType: domain.PredictionDaily},
	}

	first, err := env.service.ActivePredictions(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, env.predictions.listCalls)

	// Второй вызов обслуживается из кэша
	second, err := env.service.ActivePredictions(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, env.predictions.listCalls)

	ttl := env.cache.ttls["predictions:active:"+testUserID]
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestGeneratePredictions_InvalidatesCache(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	key := "predictions:active:" + testUserID
	require.NoError(t, env.cache.Set(ctx, key, "[]", time.Hour))

	chart, err := env.service.CreateChart(ctx, testUserID, validBirthData())
	require.NoError(t, err)
	_ = chart

	assert.Contains(t, env.cache.deleted, key)
}

func TestListPredictions_Filter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.CreateChart(ctx, testUserID, validBirthData())
	require.NoError(t, err)

	daily, err := env.service.ListPredictions(ctx, testUserID, repository.PredictionFilter{Type: domain.PredictionDaily})
	require.NoError(t, err)
	assert.Len(t, daily, 6)

	love, err := env.service.ListPredictions(ctx, testUserID, repository.PredictionFilter{Category: domain.CategoryLove})
	require.NoError(t, err)
	assert.Len(t, love, 2)
}

func TestCreateCompatibility_PersistsChartsAndAnalysis(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	person1 := validBirthData()
	person2 := validBirthData()
	person2.FullName = "Rohan Mehta"
	person2.BirthDate = "1998-01-20"

	analysis, err := env.service.CreateCompatibility(ctx, testUserID, person1, person2)
	require.NoError(t, err)

	assert.Equal(t, testUserID, analysis.UserID)
	assert.GreaterOrEqual(t, analysis.OverallScore, 0)
	assert.LessOrEqual(t, analysis.OverallScore, 100)
	assert.NotEmpty(t, analysis.Analysis)
	assert.Len(t, analysis.KeyInsights, 3)

	// Обе карты сохранены в той же транзакции и принадлежат инициатору
	require.Len(t, env.charts.txCharts, 2)
	assert.Equal(t, analysis.Person1ChartID, env.charts.txCharts[0].ID)
	assert.Equal(t, analysis.Person2ChartID, env.charts.txCharts[1].ID)
	for _, c := range env.charts.txCharts {
		assert.Equal(t, testUserID, c.UserID)
	}

	stored, err := env.service.GetCompatibility(ctx, testUserID, analysis.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.ID, stored.ID)

	_, err = env.service.GetCompatibility(ctx, "someone-else", analysis.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestCreateCompatibility_ValidatesBothPersons(t *testing.T) {
	env := newTestEnv()

	bad := validBirthData()
	bad.BirthDate = ""

	_, err := env.service.CreateCompatibility(context.Background(), testUserID, validBirthData(), bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Empty(t, env.charts.txCharts)
}

func TestGetSubscription_DefaultWhenMissing(t *testing.T) {
	env := newTestEnv()

	subscription, err := env.service.GetSubscription(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanBasic, subscription.Plan)
	assert.Equal(t, domain.SubscriptionActive, subscription.Status)
}

func TestUpgradeSubscription(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.UpgradeSubscription(ctx, testUserID, "platinum")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	subscription, err := env.service.UpgradeSubscription(ctx, testUserID, domain.PlanPremium)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionActive, subscription.Status)
	require.NotNil(t, subscription.EndDate)
	assert.WithinDuration(t, time.Now().Add(paidPlanDuration), *subscription.EndDate, time.Minute)

	// Базовый план бессрочен
	basic, err := env.service.UpgradeSubscription(ctx, testUserID, domain.PlanBasic)
	require.NoError(t, err)
	assert.Nil(t, basic.EndDate)
}

func TestExpireSubscriptions(t *testing.T) {
	env := newTestEnv()
	env.subscriptions.expired = 3

	affected, err := env.service.ExpireSubscriptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestRefreshTransits(t *testing.T) {
	env := newTestEnv()

	err := env.service.RefreshTransits(context.Background())
	require.NoError(t, err)

	require.Len(t, env.transits.replaced, 9)
	for _, e := range env.transits.replaced {
		assert.NotEqual(t, "", e.ID.String())
		assert.False(t, e.CreatedAt.IsZero())
	}
}

func TestGetUser_LazilyCreatesProfile(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.service.GetUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	again, err := env.service.GetUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestActivePredictions_CorruptCacheFallsBack(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	key := "predictions:active:" + testUserID
	require.NoError(t, env.cache.Set(ctx, key, "{not json", time.Hour))

	env.predictions.active = []*domain.Prediction{{UserID: testUserID}}

	got, err := env.service.ActivePredictions(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, env.predictions.listCalls)

	// Кэш перезаписан валидным JSON
	var cached []*domain.Prediction
	raw, err := env.cache.Get(ctx, key)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Len(t, cached, 1)
}
