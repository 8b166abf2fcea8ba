package resolver

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

const (
	defaultDNSPort = "53"
	// Follow at most this many CNAMEs that the upstream did not chase itself.
	maxCNAMEHops = 8

	upstreamTimeout = 5 * time.Second
)

// Upstream resolves hostnames by sending A queries to one DNS server.
type Upstream struct {
	address string
	client  *dns.Client
}

// NewUpstream creates an Upstream for "udp://ip:port", "ip:port" or a bare "ip" (port 53).
func NewUpstream(upstream string) (*Upstream, error) {
	address := upstream
	if strings.Contains(upstream, "://") {
		u, err := url.Parse(upstream)
		if err != nil {
			return nil, fmt.Errorf("invalid upstream %q: %w", upstream, err)
		}
		if u.Scheme != "udp" {
			return nil, fmt.Errorf("unsupported upstream scheme: %s", u.Scheme)
		}
		address = u.Host
	}

	if _, _, err := net.SplitHostPort(address); err != nil {
		address = net.JoinHostPort(address, defaultDNSPort)
	}
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream address %q: %w", upstream, err)
	}
	if net.ParseIP(host) == nil {
		return nil, fmt.Errorf("upstream %q must be an IP address", upstream)
	}

	return &Upstream{
		address: address,
		client: &dns.Client{
			Net:     "udp",
			Timeout: upstreamTimeout,
		},
	}, nil
}

// Address returns the upstream "ip:port".
func (u *Upstream) Address() string {
	return u.address
}

// Resolve implements Resolver.
func (u *Upstream) Resolve(ctx context.Context, hosts []string) ([]ranges.Network, error) {
	return resolveAll(ctx, hosts, u.lookup)
}

func (u *Upstream) lookup(ctx context.Context, host string) ([]net.IP, error) {
	name := dns.Fqdn(host)

	for hop := 0; hop <= maxCNAMEHops; hop++ {
		req := new(dns.Msg)
		req.SetQuestion(name, dns.TypeA)
		req.RecursionDesired = true

		resp, _, err := u.client.ExchangeContext(ctx, req, u.address)
		if err != nil {
			return nil, fmt.Errorf("query to %s failed: %w", u.address, err)
		}
		if resp.Rcode != dns.RcodeSuccess {
			return nil, fmt.Errorf("%s answered %s", u.address, dns.RcodeToString[resp.Rcode])
		}

		ips, target := collectAnswers(resp.Answer, name)
		if len(ips) > 0 {
			return ips, nil
		}
		if target == "" {
			return nil, fmt.Errorf("no A records in answer from %s", u.address)
		}
		name = target
	}
	return nil, fmt.Errorf("too many CNAME hops for %s", host)
}

// collectAnswers returns A records in answer order, or the CNAME target of name
// when the answer holds no A records.
func collectAnswers(answer []dns.RR, name string) ([]net.IP, string) {
	var ips []net.IP
	target := ""
	for _, rr := range answer {
		switch record := rr.(type) {
		case *dns.A:
			ips = append(ips, record.A)
		case *dns.CNAME:
			if strings.EqualFold(record.Hdr.Name, name) {
				target = record.Target
			}
		}
	}
	return ips, target
}
