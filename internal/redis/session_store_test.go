package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"sastarapido/internal/domain"
	"sastarapido/internal/geo"
	"sastarapido/internal/pricing"
)

func newTestSessionStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionStore(client, ttl), mr
}

func testEstimate() *domain.Estimate {
	params := pricing.Parameters{BaseFee: 20, PerKmRate: 10, SurgeMultiplier: 1.5, DiscountPercent: 20, MinTotal: 30}
	return &domain.Estimate{
		ID:              "7d1c0c0e-4b53-4c8e-9a4a-0b9f3f2c1a11",
		Pickup:          geo.Coordinate{Latitude: 19.0760, Longitude: 72.8777},
		Dropoff:         geo.Coordinate{Latitude: 19.1136, Longitude: 72.8697},
		DistanceKm:      10,
		Params:          params,
		Breakdown:       pricing.Estimate(10, params),
		DeliveryMinutes: 30,
		Currency:        domain.CurrencyPKR,
		CreatedAt:       time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	t.Parallel()

	store, mr := newTestSessionStore(t, time.Minute)
	ctx := context.Background()
	want := testEstimate()

	if err := store.SaveEstimate(ctx, want); err != nil {
		t.Fatalf("SaveEstimate() error = %v", err)
	}

	key := estimateSessionPrefix + want.ID
	if !mr.Exists(key) {
		t.Fatalf("expected key %s to exist", key)
	}
	if ttl := mr.TTL(key); ttl != time.Minute {
		t.Errorf("TTL = %v, want %v", ttl, time.Minute)
	}

	got, err := store.GetEstimate(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetEstimate() error = %v", err)
	}
	if got == nil {
		t.Fatal("expected stored estimate")
	}
	if got.ID != want.ID || got.Currency != want.Currency || got.Params != want.Params {
		t.Errorf("unexpected estimate: %+v", got)
	}
	if got.Breakdown != want.Breakdown {
		t.Errorf("breakdown = %+v, want %+v", got.Breakdown, want.Breakdown)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestSessionStore_MissingSession(t *testing.T) {
	t.Parallel()

	store, _ := newTestSessionStore(t, time.Minute)

	got, err := store.GetEstimate(context.Background(), "3f1e2d4c-5b6a-4978-8e9f-0a1b2c3d4e5f")
	if err != nil {
		t.Fatalf("expected no error for a missing session, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil estimate, got %+v", got)
	}
}

func TestSessionStore_ExpiredSession(t *testing.T) {
	t.Parallel()

	store, mr := newTestSessionStore(t, time.Minute)
	ctx := context.Background()
	estimate := testEstimate()

	if err := store.SaveEstimate(ctx, estimate); err != nil {
		t.Fatalf("SaveEstimate() error = %v", err)
	}
	mr.FastForward(2 * time.Minute)

	got, err := store.GetEstimate(ctx, estimate.ID)
	if err != nil {
		t.Fatalf("expected no error for an expired session, got %v", err)
	}
	if got != nil {
		t.Error("expected expired session to be gone")
	}
}

func TestSessionStore_CorruptSession(t *testing.T) {
	t.Parallel()

	store, mr := newTestSessionStore(t, time.Minute)
	id := "3f1e2d4c-5b6a-4978-8e9f-0a1b2c3d4e5f"
	if err := mr.Set(estimateSessionPrefix+id, "not json"); err != nil {
		t.Fatalf("failed to seed redis: %v", err)
	}

	if _, err := store.GetEstimate(context.Background(), id); err == nil {
		t.Error("expected an error for a corrupt session")
	}
}

func TestSessionStore_RedisUnavailable(t *testing.T) {
	t.Parallel()

	store, mr := newTestSessionStore(t, time.Minute)
	mr.Close()

	if err := store.SaveEstimate(context.Background(), testEstimate()); err == nil {
		t.Error("expected an error when redis is down")
	}
}
