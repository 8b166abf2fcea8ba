package mocks

import (
	"context"

	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

// MockResolver is a mock implementation of the resolver.Resolver interface.
//
// Example usage:
//
//	mock := &MockResolver{
//	    Addresses: map[string]string{"a.example": "10.0.0.1"},
//	}
//	networks, err := mock.Resolve(ctx, []string{"a.example"})
type MockResolver struct {
	// ResolveFunc is called by Resolve if not nil
	ResolveFunc func(ctx context.Context, hosts []string) ([]ranges.Network, error)

	// Addresses maps hostnames to IPv4 literals for the default behavior
	Addresses map[string]string

	// Track calls for verification
	ResolveCalls int
	Hosts        []string
}

// Resolve returns a /32 for every host.
//
// If ResolveFunc is set, it calls that function.
// Otherwise, each host is looked up in Addresses; unknown hosts that are
// themselves IPv4 literals resolve to themselves, anything else yields an error.
func (m *MockResolver) Resolve(ctx context.Context, hosts []string) ([]ranges.Network, error) {
	m.ResolveCalls++
	m.Hosts = append(m.Hosts, hosts...)
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, hosts)
	}

	result := make([]ranges.Network, 0, len(hosts))
	for _, host := range hosts {
		address, ok := m.Addresses[host]
		if !ok {
			address = host
		}
		n, err := ranges.ParseNetwork(address + "/32")
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
