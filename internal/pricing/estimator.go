// Package pricing turns a delivery distance into an itemized cost breakdown.
//
// Estimate is pure and performs no validation: negative fees, discounts above
// 100% or a non-positive surge flow straight through the formula, and NaN or
// infinite inputs produce non-finite output. Range checks belong to callers.
package pricing

import "math"

// Default pricing values.
const (
	DefaultBaseFee         = 20.0
	DefaultPerKmRate       = 10.0
	DefaultSurgeMultiplier = 1.0
	DefaultDiscountPercent = 0.0
	DefaultMinTotal        = 30.0
)

// Parameters are the inputs of the tiered cost formula.
type Parameters struct {
	BaseFee         float64
	PerKmRate       float64
	SurgeMultiplier float64 // 1.0 = no surge
	DiscountPercent float64 // 0-100
	MinTotal        float64 // floor applied after discount
}

// DefaultParameters returns the standard tariff.
func DefaultParameters() Parameters {
	return Parameters{
		BaseFee:         DefaultBaseFee,
		PerKmRate:       DefaultPerKmRate,
		SurgeMultiplier: DefaultSurgeMultiplier,
		DiscountPercent: DefaultDiscountPercent,
		MinTotal:        DefaultMinTotal,
	}
}

// Breakdown is the itemized result of Estimate.
// Monetary fields are rounded to 2 decimal places; SurgeMultiplier and
// DiscountPercent echo the inputs.
//
// DiscountAmount is always surcharged minus discounted, even when the
// MinTotal floor raised FinalTotal. In that case the items do not add up to
// FinalTotal; FloorAdjustment carries the difference.
type Breakdown struct {
	BaseFee         float64
	DistanceCost    float64
	Subtotal        float64
	SurgeMultiplier float64
	SurgeAmount     float64
	DiscountPercent float64
	DiscountAmount  float64
	FinalTotal      float64
	FloorAdjustment float64
	FloorApplied    bool
}

// Estimate prices a delivery of distanceKm kilometers.
func Estimate(distanceKm float64, p Parameters) Breakdown {
	distanceCost := distanceKm * p.PerKmRate
	subtotal := p.BaseFee + distanceCost
	surcharged := subtotal * p.SurgeMultiplier
	discounted := surcharged * (1 - p.DiscountPercent/100)

	total := discounted
	floorApplied := p.MinTotal > discounted
	if floorApplied {
		total = p.MinTotal
	}

	return Breakdown{
		BaseFee:         round2(p.BaseFee),
		DistanceCost:    round2(distanceCost),
		Subtotal:        round2(subtotal),
		SurgeMultiplier: p.SurgeMultiplier,
		SurgeAmount:     round2(surcharged - subtotal),
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  round2(surcharged - discounted),
		FinalTotal:      round2(total),
		FloorAdjustment: round2(total - discounted),
		FloorApplied:    floorApplied,
	}
}

// Option overrides one of the default parameters.
type Option func(*Parameters)

// WithBaseFee sets the flat fee charged on every delivery.
func WithBaseFee(fee float64) Option {
	return func(p *Parameters) { p.BaseFee = fee }
}

// WithPerKmRate sets the price per kilometer.
func WithPerKmRate(rate float64) Option {
	return func(p *Parameters) { p.PerKmRate = rate }
}

// WithSurge sets the demand multiplier.
func WithSurge(multiplier float64) Option {
	return func(p *Parameters) { p.SurgeMultiplier = multiplier }
}

// WithDiscount sets the percentage discount.
func WithDiscount(percent float64) Option {
	return func(p *Parameters) { p.DiscountPercent = percent }
}

// WithMinTotal sets the minimum charge.
func WithMinTotal(minTotal float64) Option {
	return func(p *Parameters) { p.MinTotal = minTotal }
}

// CalculateDeliveryCost estimates with the default tariff, applying opts on top.
func CalculateDeliveryCost(distanceKm float64, opts ...Option) Breakdown {
	p := DefaultParameters()
	for _, opt := range opts {
		opt(&p)
	}
	return Estimate(distanceKm, p)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
