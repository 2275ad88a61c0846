package astro

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
	"github.com/admin/astro-apps/kundali-api/internal/ports/persistence"
	"github.com/admin/astro-apps/kundali-api/internal/ports/repository"
	"github.com/admin/astro-apps/kundali-api/internal/usecases/astro/calc"
)

// Стабы репозиториев с хранением в памяти, без конкурентного доступа в тестах

type stubChartRepo struct {
	charts    map[uuid.UUID]*domain.BirthChart
	txCharts  []*domain.BirthChart
	createErr error
}

func newStubChartRepo() *stubChartRepo {
	return &stubChartRepo{charts: make(map[uuid.UUID]*domain.BirthChart)}
}

func (r *stubChartRepo) Create(_ context.Context, chart *domain.BirthChart) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.charts[chart.ID] = chart
	return nil
}

func (r *stubChartRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.BirthChart, error) {
	chart, ok := r.charts[id]
	if !ok {
		return nil, fmt.Errorf("chart %s: %w", id, domain.ErrNotFound)
	}
	return chart, nil
}

func (r *stubChartRepo) ListByUser(_ context.Context, userID string) ([]*domain.BirthChart, error) {
	var out []*domain.BirthChart
	for _, c := range r.charts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubChartRepo) BeginTx(context.Context) (persistence.Transaction, error) {
	return nil, nil
}

func (r *stubChartRepo) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return fn(ctx, nil)
}

func (r *stubChartRepo) CreateTx(_ context.Context, _ persistence.Transaction, chart *domain.BirthChart) error {
	r.txCharts = append(r.txCharts, chart)
	r.charts[chart.ID] = chart
	return nil
}

type stubPredictionRepo struct {
	created   []*domain.Prediction
	active    []*domain.Prediction
	listCalls int
}

func (r *stubPredictionRepo) CreateBatch(_ context.Context, predictions []*domain.Prediction) error {
	r.created = append(r.created, predictions...)
	return nil
}

func (r *stubPredictionRepo) ListByUser(_ context.Context, userID string, filter repository.PredictionFilter) ([]*domain.Prediction, error) {
	var out []*domain.Prediction
	for _, p := range r.created {
		if p.UserID != userID {
			continue
		}
		if filter.Type != "" && p.PredictionType != filter.Type {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPredictionRepo) ListActive(_ context.Context, _ string, _ time.Time) ([]*domain.Prediction, error) {
	r.listCalls++
	return r.active, nil
}

type stubCompatibilityRepo struct {
	analyses map[uuid.UUID]*domain.CompatibilityAnalysis
}

func newStubCompatibilityRepo() *stubCompatibilityRepo {
	return &stubCompatibilityRepo{analyses: make(map[uuid.UUID]*domain.CompatibilityAnalysis)}
}

func (r *stubCompatibilityRepo) Create(_ context.Context, analysis *domain.CompatibilityAnalysis) error {
	r.analyses[analysis.ID] = analysis
	return nil
}

func (r *stubCompatibilityRepo) CreateTx(_ context.Context, _ persistence.Transaction, analysis *domain.CompatibilityAnalysis) error {
	r.analyses[analysis.ID] = analysis
	return nil
}

func (r *stubCompatibilityRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.CompatibilityAnalysis, error) {
	analysis, ok := r.analyses[id]
	if !ok {
		return nil, fmt.Errorf("analysis %s: %w", id, domain.ErrNotFound)
	}
	return analysis, nil
}

func (r *stubCompatibilityRepo) ListByUser(_ context.Context, userID string) ([]*domain.CompatibilityAnalysis, error) {
	var out []*domain.CompatibilityAnalysis
	for _, a := range r.analyses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubSubscriptionRepo struct {
	byUser  map[string]*domain.Subscription
	expired int64
}

func newStubSubscriptionRepo() *stubSubscriptionRepo {
	return &stubSubscriptionRepo{byUser: make(map[string]*domain.Subscription)}
}

func (r *stubSubscriptionRepo) Upsert(_ context.Context, subscription *domain.Subscription) error {
	r.byUser[subscription.UserID] = subscription
	return nil
}

func (r *stubSubscriptionRepo) GetByUser(_ context.Context, userID string) (*domain.Subscription, error) {
	subscription, ok := r.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("subscription for %s: %w", userID, domain.ErrNotFound)
	}
	return subscription, nil
}

func (r *stubSubscriptionRepo) ExpireOverdue(context.Context) (int64, error) {
	return r.expired, nil
}

type stubTransitRepo struct {
	upcoming []*domain.TransitEvent
	replaced []*domain.TransitEvent
}

func (r *stubTransitRepo) ListUpcoming(_ context.Context, limit int) ([]*domain.TransitEvent, error) {
	if limit > len(r.upcoming) {
		limit = len(r.upcoming)
	}
	return r.upcoming[:limit], nil
}

func (r *stubTransitRepo) ReplaceUpcoming(_ context.Context, events []*domain.TransitEvent) error {
	r.replaced = events
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Upsert(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

type stubCache struct {
	values  map[string]string
	ttls    map[string]time.Duration
	deleted []string
}

func newStubCache() *stubCache {
	return &stubCache{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (c *stubCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return v, nil
}

func (c *stubCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	c.values[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *stubCache) Delete(_ context.Context, key string) error {
	delete(c.values, key)
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *stubCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.values[key]
	return ok, nil
}

func (c *stubCache) Close() error { return nil }

type stubProducer struct {
	sendErr error
	events  []uuid.UUID
}

func (p *stubProducer) SendChartCreated(_ context.Context, _ string, chartID uuid.UUID) error {
	if p.sendErr != nil {
		return p.sendErr
	}
	p.events = append(p.events, chartID)
	return nil
}

func (p *stubProducer) Send(context.Context, string, []byte) error { return nil }

func (p *stubProducer) Close() error { return nil }

// testEnv собранный сервис со стабами вместо инфраструктуры
type testEnv struct {
	service       *Service
	charts        *stubChartRepo
	predictions   *stubPredictionRepo
	compatibility *stubCompatibilityRepo
	subscriptions *stubSubscriptionRepo
	transits      *stubTransitRepo
	users         *stubUserRepo
	cache         *stubCache
}

func newTestEnv() *testEnv {
	env := &testEnv{
		charts:        newStubChartRepo(),
		predictions:   &stubPredictionRepo{},
		compatibility: newStubCompatibilityRepo(),
		subscriptions: newStubSubscriptionRepo(),
		transits:      &stubTransitRepo{},
		users:         newStubUserRepo(),
		cache:         newStubCache(),
	}
	env.service = New(
		env.charts,
		env.predictions,
		env.compatibility,
		env.subscriptions,
		env.transits,
		env.users,
		calc.New(rand.New(rand.NewSource(1))),
		env.cache,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return env
}
