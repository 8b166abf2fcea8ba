package ranges

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
)

const addressBits = 32

// Network is an IPv4 CIDR block. The base address always has its host bits zeroed.
type Network struct {
	base uint32
	bits uint8
}

// ParseNetwork parses "a.b.c.d/n" or a bare "a.b.c.d" (treated as /32).
// Host bits are cleared. Non-IPv4 input is rejected.
func ParseNetwork(s string) (Network, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		ip, err := ParseIPv4(s)
		if err != nil {
			return Network{}, errors.NewValidationError(fmt.Sprintf("invalid IPv4 network %q", s), err)
		}
		return NetworkFromIP(ip, addressBits)
	}

	_, ipNet, err := net.ParseCIDR(s)
	if err != nil {
		return Network{}, errors.NewValidationError(fmt.Sprintf("invalid IPv4 network %q", s), err)
	}
	return NetworkFromIPNet(ipNet)
}

// ParseIPv4 parses a dotted-quad IPv4 literal. IPv6 text, IPv4-mapped forms
// such as "::ffff:10.0.0.1" included, is rejected.
func ParseIPv4(s string) (net.IP, error) {
	if strings.Contains(s, ":") {
		return nil, errors.NewValidationError(fmt.Sprintf("%q is an IPv6 literal", s), nil)
	}
	ip := net.ParseIP(s).To4()
	if ip == nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%q is not an IPv4 address", s), nil)
	}
	return ip, nil
}

// MustParseNetwork is like ParseNetwork but panics on error. Intended for constants and tests.
func MustParseNetwork(s string) Network {
	n, err := ParseNetwork(s)
	if err != nil {
		panic(err)
	}
	return n
}

// NetworkFromIP returns the network of the given prefix length containing ip.
func NetworkFromIP(ip net.IP, bits int) (Network, error) {
	ip4 := ip.To4()
	if ip4 == nil {
		return Network{}, errors.NewValidationError(fmt.Sprintf("%s is not an IPv4 address", ip), nil)
	}
	if bits < 0 || bits > addressBits {
		return Network{}, errors.NewValidationError(fmt.Sprintf("invalid IPv4 prefix length %d", bits), nil)
	}
	return newNetwork(binary.BigEndian.Uint32(ip4), uint8(bits)), nil
}

// HostNetwork wraps a single IPv4 address as a /32 network.
func HostNetwork(ip net.IP) (Network, error) {
	return NetworkFromIP(ip, addressBits)
}

// NetworkFromIPNet converts a *net.IPNet. IPv6 networks, including IPv4-mapped
// ones with a 128-bit mask, are rejected rather than silently truncated.
func NetworkFromIPNet(ipNet *net.IPNet) (Network, error) {
	if ipNet == nil {
		return Network{}, errors.NewValidationError("nil network", nil)
	}
	ones, size := ipNet.Mask.Size()
	if size != addressBits {
		return Network{}, errors.NewValidationError(fmt.Sprintf("%s is not an IPv4 network", ipNet), nil)
	}
	return NetworkFromIP(ipNet.IP, ones)
}

func newNetwork(addr uint32, bits uint8) Network {
	return Network{base: addr & mask(bits), bits: bits}
}

func mask(bits uint8) uint32 {
	if bits == 0 {
		return 0
	}
	return ^uint32(0) << (addressBits - bits)
}

// Bits returns the prefix length.
func (n Network) Bits() int {
	return int(n.bits)
}

// IP returns the base address.
func (n Network) IP() net.IP {
	return uint32ToIP(n.base)
}

// Last returns the last address covered by the network.
func (n Network) Last() net.IP {
	return uint32ToIP(n.last())
}

// Netmask returns the dotted-quad netmask, e.g. "255.255.255.0".
func (n Network) Netmask() string {
	return uint32ToIP(mask(n.bits)).String()
}

// Size returns the number of addresses in the network.
func (n Network) Size() uint64 {
	return uint64(1) << (addressBits - n.bits)
}

// Contains reports whether ip is inside the network.
func (n Network) Contains(ip net.IP) bool {
	ip4 := ip.To4()
	if ip4 == nil {
		return false
	}
	return binary.BigEndian.Uint32(ip4)&mask(n.bits) == n.base
}

// ContainsNetwork reports whether other is equal to or a subnet of n.
func (n Network) ContainsNetwork(other Network) bool {
	return other.bits >= n.bits && other.base&mask(n.bits) == n.base
}

// IPNet converts the network to a *net.IPNet.
func (n Network) IPNet() *net.IPNet {
	return &net.IPNet{
		IP:   n.IP(),
		Mask: net.CIDRMask(int(n.bits), addressBits),
	}
}

// String returns the canonical "a.b.c.d/n" form.
func (n Network) String() string {
	return n.IP().String() + "/" + strconv.Itoa(int(n.bits))
}

// Compare orders networks by base address, then by prefix length (shorter first).
func (n Network) Compare(other Network) int {
	switch {
	case n.base < other.base:
		return -1
	case n.base > other.base:
		return 1
	case n.bits < other.bits:
		return -1
	case n.bits > other.bits:
		return 1
	}
	return 0
}

func (n Network) last() uint32 {
	return n.base | ^mask(n.bits)
}

func uint32ToIP(addr uint32) net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, addr)
	return ip
}

// Strings converts networks to their canonical string forms.
func Strings(networks []Network) []string {
	out := make([]string, len(networks))
	for i, n := range networks {
		out[i] = n.String()
	}
	return out
}
