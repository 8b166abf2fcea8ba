// Package resolver resolves server hostnames to /32 networks.
//
// System uses the operating system resolver. Upstream sends plain UDP A
// queries to one DNS server, which is handy when the host resolver returns
// split-horizon answers:
//
//	r, err := resolver.NewUpstream("udp://1.1.1.1:53")
//	networks, err := r.Resolve(ctx, []string{"cs.stingray360.com"})
//
// Both take the first IPv4 address of each host, keep input order and fail
// the whole call on the first host that cannot be resolved. IPv4 literals are
// returned as-is without a lookup.
package resolver
