package coverage

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/yl2chen/cidranger"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/output"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
	"github.com/maksimkurb/ip-ranges/src/internal/utils"
)

// Index answers containment queries over a set of networks.
type Index struct {
	ranger cidranger.Ranger
	size   int
}

// NewIndex builds an Index over networks.
func NewIndex(networks []ranges.Network) (*Index, error) {
	ranger := cidranger.NewPCTrieRanger()
	for _, n := range networks {
		if err := ranger.Insert(cidranger.NewBasicRangerEntry(*n.IPNet())); err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("failed to index %s", n), err)
		}
	}
	return &Index{ranger: ranger, size: len(networks)}, nil
}

// Len returns the number of indexed networks.
func (idx *Index) Len() int {
	return idx.size
}

// Contains reports whether any indexed network contains ip.
func (idx *Index) Contains(ip net.IP) (bool, error) {
	if ip.To4() == nil {
		return false, errors.NewValidationError(fmt.Sprintf("%s is not an IPv4 address", ip), nil)
	}
	return idx.ranger.Contains(ip)
}

// Lookup returns every indexed network that contains ip, widest first.
func (idx *Index) Lookup(ip net.IP) ([]ranges.Network, error) {
	if ip.To4() == nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s is not an IPv4 address", ip), nil)
	}
	entries, err := idx.ranger.ContainingNetworks(ip)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("lookup of %s failed", ip), err)
	}

	result := make([]ranges.Network, 0, len(entries))
	for _, entry := range entries {
		ipNet := entry.Network()
		n, err := ranges.NetworkFromIPNet(&ipNet)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

// LoadFile reads a list written with lineFormat (empty means the default
// format). Blank lines are ignored, as are lines starting with '#' that do not
// match the format.
func LoadFile(path, lineFormat string) ([]ranges.Network, error) {
	parser, err := output.NewLineParser(lineFormat)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer utils.CloseOrWarn(file)

	var networks []ranges.Network
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := parser.Parse(line)
		if err != nil {
			if strings.HasPrefix(line, "#") {
				continue
			}
			return nil, errors.NewValidationError(fmt.Sprintf("%s:%d: invalid network", path, lineNo), err)
		}
		networks = append(networks, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read %s", path), err)
	}
	return networks, nil
}
