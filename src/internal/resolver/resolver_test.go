package resolver

import (
	"context"
	"fmt"
	"net"
	"reflect"
	"testing"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

func fakeLookup(answers map[string][]string) lookupFunc {
	return func(ctx context.Context, host string) ([]net.IP, error) {
		addrs, ok := answers[host]
		if !ok {
			return nil, fmt.Errorf("no such host")
		}
		ips := make([]net.IP, 0, len(addrs))
		for _, addr := range addrs {
			ips = append(ips, net.ParseIP(addr))
		}
		return ips, nil
	}
}

func TestResolveAll_OrderAndDuplicates(t *testing.T) {
	lookup := fakeLookup(map[string][]string{
		"a.example.com": {"10.0.0.2"},
		"b.example.com": {"10.0.0.1", "10.0.0.9"},
	})

	networks, err := resolveAll(context.Background(), []string{"a.example.com", "b.example.com", "a.example.com"}, lookup)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"10.0.0.2/32", "10.0.0.1/32", "10.0.0.2/32"}
	if got := ranges.Strings(networks); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestResolveAll_SkipsIPv6Answers(t *testing.T) {
	lookup := fakeLookup(map[string][]string{
		"dual.example.com": {"2001:db8::1", "192.0.2.7"},
	})

	networks, err := resolveAll(context.Background(), []string{"dual.example.com"}, lookup)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if networks[0].String() != "192.0.2.7/32" {
		t.Errorf("Expected 192.0.2.7/32, got %s", networks[0])
	}
}

func TestResolveAll_Errors(t *testing.T) {
	lookup := fakeLookup(map[string][]string{
		"ok.example.com":   {"10.0.0.1"},
		"v6.example.com":   {"2001:db8::1"},
		"none.example.com": {},
	})

	tests := []struct {
		name  string
		hosts []string
	}{
		{"Unknown host", []string{"ok.example.com", "missing.example.com"}},
		{"Only IPv6 answers", []string{"v6.example.com"}},
		{"Empty answer", []string{"none.example.com"}},
		{"IPv6 literal", []string{"::1"}},
		{"IPv4-mapped literal", []string{"::ffff:10.0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			networks, err := resolveAll(context.Background(), tt.hosts, lookup)
			if err == nil {
				t.Fatalf("Expected error, got %v", networks)
			}
			if errors.CodeOf(err) != errors.ErrCodeResolution {
				t.Errorf("Expected resolution error, got %v", err)
			}
		})
	}
}

func TestResolveAll_MappedLiteralIsNotLookedUp(t *testing.T) {
	calls := 0
	lookup := func(ctx context.Context, host string) ([]net.IP, error) {
		calls++
		return []net.IP{net.ParseIP("10.0.0.1")}, nil
	}

	if _, err := resolveAll(context.Background(), []string{"::ffff:10.0.0.1"}, lookup); errors.CodeOf(err) != errors.ErrCodeResolution {
		t.Errorf("Expected resolution error, got %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no lookup for a literal, got %d", calls)
	}
}

func TestSystem_ResolvesLiteralsWithoutLookup(t *testing.T) {
	networks, err := NewSystem().Resolve(context.Background(), []string{"192.0.2.1", "198.51.100.2"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"192.0.2.1/32", "198.51.100.2/32"}
	if got := ranges.Strings(networks); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
