package domain

import (
	"time"

	"sastarapido/internal/geo"
	"sastarapido/internal/pricing"
)

// Currency is the display currency of an estimate.
// Amounts are never converted; only the symbol changes.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyPKR Currency = "PKR"
	CurrencyPYG Currency = "PYG"
)

// Currencies lists the selectable currencies in display order.
var Currencies = []Currency{CurrencyINR, CurrencyUSD, CurrencyPKR, CurrencyPYG}

// Symbol returns the currency sign shown next to amounts.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyINR:
		return "₹"
	case CurrencyUSD:
		return "$"
	case CurrencyPKR:
		return "₨"
	case CurrencyPYG:
		return "₲"
	default:
		return ""
	}
}

// Label returns the symbol and code, e.g. "₹ INR".
func (c Currency) Label() string {
	return c.Symbol() + " " + string(c)
}

// IsValid reports whether c is one of Currencies.
func (c Currency) IsValid() bool {
	return c.Symbol() != ""
}

// Estimate is one computed delivery quote as shown to the user.
type Estimate struct {
	ID              string
	Pickup          geo.Coordinate
	Dropoff         geo.Coordinate
	DistanceKm      float64
	Params          pricing.Parameters
	Breakdown       pricing.Breakdown
	DeliveryMinutes int
	Currency        Currency
	CreatedAt       time.Time
}
