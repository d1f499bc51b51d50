package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"sastarapido/internal/domain"
	"sastarapido/internal/geo"
	"sastarapido/internal/pricing"
	"sastarapido/internal/redis"
)

const (
	minDeliveryMinutes = 15
	minutesPerKm       = 3
)

// EstimateService turns form input into priced delivery estimates.
type EstimateService struct {
	sessionStore redis.SessionStoreInterface
	minTotal     float64
}

// NewEstimateService creates a new EstimateService.
// minTotal is the floor applied to every estimate.
func NewEstimateService(sessionStore redis.SessionStoreInterface, minTotal float64) *EstimateService {
	return &EstimateService{
		sessionStore: sessionStore,
		minTotal:     minTotal,
	}
}

// CreateEstimateRequest contains the parameters for an estimate.
type CreateEstimateRequest struct {
	PickupLat       float64
	PickupLng       float64
	DropoffLat      float64
	DropoffLng      float64
	BaseFee         float64
	PerKmRate       float64
	SurgeMultiplier float64
	DiscountPercent float64
	Currency        domain.Currency // Optional: defaults to INR
}

// CreateEstimate computes distance, cost and delivery time for a request and
// keeps the result in the session store so it can be reloaded or exported.
// A session store failure does not fail the estimate; the result then has no ID.
func (s *EstimateService) CreateEstimate(ctx context.Context, req CreateEstimateRequest) (*domain.Estimate, error) {
	if err := s.validateCreateRequest(&req); err != nil {
		return nil, err
	}

	pickup := geo.Coordinate{Latitude: req.PickupLat, Longitude: req.PickupLng}
	dropoff := geo.Coordinate{Latitude: req.DropoffLat, Longitude: req.DropoffLng}
	distance := geo.Distance(pickup, dropoff)

	params := pricing.Parameters{
		BaseFee:         req.BaseFee,
		PerKmRate:       req.PerKmRate,
		SurgeMultiplier: req.SurgeMultiplier,
		DiscountPercent: req.DiscountPercent,
		MinTotal:        s.minTotal,
	}

	estimate := &domain.Estimate{
		ID:              uuid.New().String(),
		Pickup:          pickup,
		Dropoff:         dropoff,
		DistanceKm:      distance,
		Params:          params,
		Breakdown:       pricing.Estimate(distance, params),
		DeliveryMinutes: DeliveryMinutes(distance),
		Currency:        req.Currency,
		CreatedAt:       time.Now(),
	}

	if s.sessionStore != nil {
		if err := s.sessionStore.SaveEstimate(ctx, estimate); err != nil {
			log.Printf("failed to save estimate session %s: %v", estimate.ID, err)
			estimate.ID = ""
		}
	} else {
		estimate.ID = ""
	}

	return estimate, nil
}

// GetEstimate loads a previously computed estimate from its session.
func (s *EstimateService) GetEstimate(ctx context.Context, id string) (*domain.Estimate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidEstimateID
	}
	if s.sessionStore == nil {
		return nil, ErrEstimateNotFound
	}

	estimate, err := s.sessionStore.GetEstimate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load estimate session: %w", err)
	}
	if estimate == nil {
		return nil, ErrEstimateNotFound
	}
	return estimate, nil
}

// DeliveryMinutes estimates delivery time: three minutes per kilometer,
// never less than fifteen.
func DeliveryMinutes(distanceKm float64) int {
	minutes := int(distanceKm * minutesPerKm)
	if minutes < minDeliveryMinutes {
		return minDeliveryMinutes
	}
	return minutes
}

// validateCreateRequest checks coordinates and currency. Pricing inputs are
// passed through unchecked; form bounds are enforced by the handler.
func (s *EstimateService) validateCreateRequest(req *CreateEstimateRequest) error {
	if !isValidLatitude(req.PickupLat) || !isValidLongitude(req.PickupLng) {
		return ErrInvalidPickupLocation
	}

	if !isValidLatitude(req.DropoffLat) || !isValidLongitude(req.DropoffLng) {
		return ErrInvalidDropoffLocation
	}

	if req.Currency == "" {
		req.Currency = domain.CurrencyINR
	}
	if !req.Currency.IsValid() {
		return ErrInvalidCurrency
	}

	return nil
}

// NaN fails both comparisons, so non-finite coordinates are rejected here.
func isValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
