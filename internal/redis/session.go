package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"sastarapido/internal/domain"
	"sastarapido/internal/geo"
	"sastarapido/internal/pricing"
)

// DefaultSessionTTL is how long an estimate stays downloadable.
const DefaultSessionTTL = 15 * time.Minute

const estimateSessionPrefix = "session:estimate:"

// SessionStore keeps recent estimates of the form page in Redis so a result
// can be reloaded and exported without the user re-entering inputs.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new SessionStore. A non-positive ttl falls back to DefaultSessionTTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// cachedEstimate is the stored form of domain.Estimate. The breakdown is
// derived data and is recomputed on load.
type cachedEstimate struct {
	ID              string    `json:"id"`
	PickupLat       float64   `json:"pickup_lat"`
	PickupLng       float64   `json:"pickup_lng"`
	DropoffLat      float64   `json:"dropoff_lat"`
	DropoffLng      float64   `json:"dropoff_lng"`
	DistanceKm      float64   `json:"distance_km"`
	BaseFee         float64   `json:"base_fee"`
	PerKmRate       float64   `json:"per_km_rate"`
	SurgeMultiplier float64   `json:"surge_multiplier"`
	DiscountPercent float64   `json:"discount_percent"`
	MinTotal        float64   `json:"min_total"`
	DeliveryMinutes int       `json:"delivery_minutes"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"created_at"`
}

// SaveEstimate stores an estimate under its ID for the session TTL.
func (s *SessionStore) SaveEstimate(ctx context.Context, estimate *domain.Estimate) error {
	data, err := json.Marshal(toCached(estimate))
	if err != nil {
		return err
	}
	return s.client.Set(ctx, estimateSessionPrefix+estimate.ID, data, s.ttl).Err()
}

// GetEstimate retrieves an estimate from its session.
func (s *SessionStore) GetEstimate(ctx context.Context, id string) (*domain.Estimate, error) {
	data, err := s.client.Get(ctx, estimateSessionPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Session expired or never existed
		}
		return nil, err
	}

	var cached cachedEstimate
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return fromCached(cached), nil
}

func toCached(e *domain.Estimate) cachedEstimate {
	return cachedEstimate{
		ID:              e.ID,
		PickupLat:       e.Pickup.Latitude,
		PickupLng:       e.Pickup.Longitude,
		DropoffLat:      e.Dropoff.Latitude,
		DropoffLng:      e.Dropoff.Longitude,
		DistanceKm:      e.DistanceKm,
		BaseFee:         e.Params.BaseFee,
		PerKmRate:       e.Params.PerKmRate,
		SurgeMultiplier: e.Params.SurgeMultiplier,
		DiscountPercent: e.Params.DiscountPercent,
		MinTotal:        e.Params.MinTotal,
		DeliveryMinutes: e.DeliveryMinutes,
		Currency:        string(e.Currency),
		CreatedAt:       e.CreatedAt,
	}
}

func fromCached(c cachedEstimate) *domain.Estimate {
	params := pricing.Parameters{
		BaseFee:         c.BaseFee,
		PerKmRate:       c.PerKmRate,
		SurgeMultiplier: c.SurgeMultiplier,
		DiscountPercent: c.DiscountPercent,
		MinTotal:        c.MinTotal,
	}
	return &domain.Estimate{
		ID:              c.ID,
		Pickup:          geo.Coordinate{Latitude: c.PickupLat, Longitude: c.PickupLng},
		Dropoff:         geo.Coordinate{Latitude: c.DropoffLat, Longitude: c.DropoffLng},
		DistanceKm:      c.DistanceKm,
		Params:          params,
		Breakdown:       pricing.Estimate(c.DistanceKm, params),
		DeliveryMinutes: c.DeliveryMinutes,
		Currency:        domain.Currency(c.Currency),
		CreatedAt:       c.CreatedAt,
	}
}
