package resolver

import (
	"context"
	"fmt"
	"net"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

// Resolver turns hostnames into single-host IPv4 networks.
//
// The result has one network per hostname, in input order. Duplicates are kept.
// The first failing hostname aborts the whole call.
type Resolver interface {
	Resolve(ctx context.Context, hosts []string) ([]ranges.Network, error)
}

// lookupFunc returns the IPv4 addresses of one hostname.
type lookupFunc func(ctx context.Context, host string) ([]net.IP, error)

func resolveAll(ctx context.Context, hosts []string, lookup lookupFunc) ([]ranges.Network, error) {
	networks := make([]ranges.Network, 0, len(hosts))
	for _, host := range hosts {
		ip, err := resolveOne(ctx, host, lookup)
		if err != nil {
			return nil, err
		}

		n, err := ranges.HostNetwork(ip)
		if err != nil {
			return nil, errors.NewResolutionError(fmt.Sprintf("host %q resolved to a non-IPv4 address", host), err)
		}
		log.Debugf("Resolved %s to %s", host, ip)
		networks = append(networks, n)
	}
	return networks, nil
}

func resolveOne(ctx context.Context, host string, lookup lookupFunc) (net.IP, error) {
	if net.ParseIP(host) != nil {
		ip, err := ranges.ParseIPv4(host)
		if err != nil {
			return nil, errors.NewResolutionError(fmt.Sprintf("host %q is not an IPv4 address", host), err)
		}
		return ip, nil
	}

	ips, err := lookup(ctx, host)
	if err != nil {
		return nil, errors.NewResolutionError(fmt.Sprintf("failed to resolve %q", host), err)
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip, nil
		}
	}
	return nil, errors.NewResolutionError(fmt.Sprintf("no IPv4 address found for %q", host), nil)
}

// System resolves hostnames with the operating system resolver.
type System struct {
	resolver *net.Resolver
}

// NewSystem creates a System resolver backed by net.DefaultResolver.
func NewSystem() *System {
	return &System{resolver: net.DefaultResolver}
}

// Resolve implements Resolver.
func (s *System) Resolve(ctx context.Context, hosts []string) ([]ranges.Network, error) {
	return resolveAll(ctx, hosts, func(ctx context.Context, host string) ([]net.IP, error) {
		return s.resolver.LookupIP(ctx, "ip4", host)
	})
}
