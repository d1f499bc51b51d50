package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"sastarapido/internal/domain"
)

// EstimateForm is the estimate form as posted by the page.
// Bounds match the form controls; the pricing core itself accepts any value.
type EstimateForm struct {
	PickupLat       float64 `form:"pickup_lat" binding:"gte=-90,lte=90"`
	PickupLng       float64 `form:"pickup_lng" binding:"gte=-180,lte=180"`
	DropoffLat      float64 `form:"dropoff_lat" binding:"gte=-90,lte=90"`
	DropoffLng      float64 `form:"dropoff_lng" binding:"gte=-180,lte=180"`
	BaseFee         float64 `form:"base_fee" binding:"gte=10,lte=100"`
	PerKmRate       float64 `form:"per_km_rate" binding:"gte=5,lte=30"`
	SurgeMultiplier float64 `form:"surge_multiplier" binding:"gte=1,lte=2.5"`
	DiscountPercent float64 `form:"discount_percent" binding:"gte=0,lte=50"`
	Currency        string  `form:"currency" binding:"omitempty,oneof=INR USD PKR PYG"`
}

// defaultForm is prefilled with a short Mumbai hop and the standard tariff.
func defaultForm(currency domain.Currency) EstimateForm {
	return EstimateForm{
		PickupLat:       19.0760,
		PickupLng:       72.8777,
		DropoffLat:      19.1136,
		DropoffLng:      72.8697,
		BaseFee:         20,
		PerKmRate:       10,
		SurgeMultiplier: 1.0,
		DiscountPercent: 0,
		Currency:        string(currency),
	}
}

func formFromEstimate(e *domain.Estimate) EstimateForm {
	return EstimateForm{
		PickupLat:       e.Pickup.Latitude,
		PickupLng:       e.Pickup.Longitude,
		DropoffLat:      e.Dropoff.Latitude,
		DropoffLng:      e.Dropoff.Longitude,
		BaseFee:         e.Params.BaseFee,
		PerKmRate:       e.Params.PerKmRate,
		SurgeMultiplier: e.Params.SurgeMultiplier,
		DiscountPercent: e.Params.DiscountPercent,
		Currency:        string(e.Currency),
	}
}

var fieldLabels = map[string]string{
	"PickupLat":       "Pickup latitude",
	"PickupLng":       "Pickup longitude",
	"DropoffLat":      "Drop-off latitude",
	"DropoffLng":      "Drop-off longitude",
	"BaseFee":         "Base fee",
	"PerKmRate":       "Per-km rate",
	"SurgeMultiplier": "Surge multiplier",
	"DiscountPercent": "Discount",
	"Currency":        "Currency",
}

// fieldErrors turns a binding error into messages keyed by struct field name.
// Errors that are not validation failures (e.g. unparsable numbers) are
// reported under the empty key.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": "please enter valid numbers in every field"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = formatValidationError(fe)
	}
	return out
}

func formatValidationError(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "gte":
		return label + " must be at least " + fe.Param()
	case "lte":
		return label + " must be at most " + fe.Param()
	case "oneof":
		return label + " must be one of " + fe.Param()
	default:
		return label + " failed " + fe.Tag() + " validation"
	}
}
