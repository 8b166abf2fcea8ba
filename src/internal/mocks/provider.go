package mocks

import (
	"context"

	"github.com/maksimkurb/ip-ranges/src/internal/models"
)

// MockProvider is a mock implementation of the provider.Provider interface.
type MockProvider struct {
	// FetchFunc is called by Fetch if not nil
	FetchFunc func(ctx context.Context) ([]models.Record, error)

	// Records are returned by the default behavior
	Records []models.Record

	FetchCalls int
}

// Fetch returns the configured records.
//
// If FetchFunc is set, it calls that function.
// Otherwise, returns Records.
func (m *MockProvider) Fetch(ctx context.Context) ([]models.Record, error) {
	m.FetchCalls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return m.Records, nil
}
