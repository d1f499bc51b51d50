package service

import "errors"

var (
	// ErrInvalidPickupLocation is returned when pickup coordinates are invalid.
	ErrInvalidPickupLocation = errors.New("invalid pickup location")

	// ErrInvalidDropoffLocation is returned when drop-off coordinates are invalid.
	ErrInvalidDropoffLocation = errors.New("invalid drop-off location")

	// ErrInvalidCurrency is returned when the display currency is not supported.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidEstimateID is returned when an estimate ID is empty or malformed.
	ErrInvalidEstimateID = errors.New("invalid estimate id")

	// ErrEstimateNotFound is returned when an estimate session is missing or expired.
	ErrEstimateNotFound = errors.New("estimate not found or expired")
)
