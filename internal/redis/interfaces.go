package redis

import (
	"context"

	"sastarapido/internal/domain"
)

// SessionStoreInterface defines the interface for short-lived estimate sessions.
type SessionStoreInterface interface {
	SaveEstimate(ctx context.Context, estimate *domain.Estimate) error
	// GetEstimate returns nil, nil when the session is missing or expired.
	GetEstimate(ctx context.Context, id string) (*domain.Estimate, error)
}

// Ensure concrete types implement interfaces.
var _ SessionStoreInterface = (*SessionStore)(nil)
