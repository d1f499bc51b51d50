package redis

import (
	"testing"
	"time"

	"sastarapido/internal/domain"
	"sastarapido/internal/geo"
	"sastarapido/internal/pricing"
)

func TestFromCached_RecomputesBreakdown(t *testing.T) {
	params := pricing.Parameters{BaseFee: 20, PerKmRate: 10, SurgeMultiplier: 1.5, DiscountPercent: 20, MinTotal: 30}
	original := &domain.Estimate{
		ID:              "7d1c0c0e-4b53-4c8e-9a4a-0b9f3f2c1a11",
		Pickup:          geo.Coordinate{Latitude: 19.0760, Longitude: 72.8777},
		Dropoff:         geo.Coordinate{Latitude: 19.1136, Longitude: 72.8697},
		DistanceKm:      10,
		Params:          params,
		DeliveryMinutes: 30,
		Currency:        domain.CurrencyUSD,
		CreatedAt:       time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}

	got := fromCached(toCached(original))

	if got.Breakdown.FinalTotal != 144 || got.Breakdown.SurgeAmount != 60 {
		t.Errorf("breakdown not recomputed: %+v", got.Breakdown)
	}
	if got.Pickup != original.Pickup || got.Dropoff != original.Dropoff {
		t.Errorf("coordinates changed: %+v", got)
	}
	if got.Currency != domain.CurrencyUSD || got.DeliveryMinutes != 30 {
		t.Errorf("unexpected session fields: %+v", got)
	}
}

func TestNewSessionStore_DefaultTTL(t *testing.T) {
	s := NewSessionStore(nil, 0)
	if s.ttl != DefaultSessionTTL {
		t.Errorf("ttl = %v, want %v", s.ttl, DefaultSessionTTL)
	}
}
