package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"sastarapido/internal/domain"
)

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is a mock implementation of SessionStoreInterface.
type MockSessionStore struct {
	mu        sync.RWMutex
	estimates map[string]*domain.Estimate

	// Counters for verification
	SaveCallCount int32
	GetCallCount  int32

	// Error injection
	SaveError error
	GetError  error
}

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		estimates: make(map[string]*domain.Estimate),
	}
}

func (m *MockSessionStore) SaveEstimate(ctx context.Context, estimate *domain.Estimate) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *estimate
	m.estimates[estimate.ID] = &copy
	return nil
}

func (m *MockSessionStore) GetEstimate(ctx context.Context, id string) (*domain.Estimate, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	estimate, ok := m.estimates[id]
	if !ok {
		return nil, nil
	}
	// Return a copy to avoid mutation issues.
	copy := *estimate
	return &copy, nil
}

// Len returns the number of stored sessions (for test assertions).
func (m *MockSessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.estimates)
}
