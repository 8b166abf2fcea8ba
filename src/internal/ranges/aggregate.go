package ranges

import (
	"math/bits"
	"slices"
)

// span is an inclusive address interval. end is kept in 64 bits so that
// end+1 never wraps at 255.255.255.255.
type span struct {
	start uint64
	end   uint64
}

// Collapse merges any number of network lists into the minimal equivalent set
// of CIDR blocks: networks contained in others are dropped, sibling networks
// are merged into their parent, repeatedly, until nothing more can be merged.
// The result covers exactly the input addresses, does not depend on input
// order, and is sorted by base address.
func Collapse(lists ...[]Network) []Network {
	total := 0
	for _, list := range lists {
		total += len(list)
	}
	if total == 0 {
		return nil
	}

	spans := make([]span, 0, total)
	for _, list := range lists {
		for _, n := range list {
			spans = append(spans, span{start: uint64(n.base), end: uint64(n.last())})
		}
	}

	var out []Network
	for _, s := range mergeSpans(spans) {
		out = appendSpanNetworks(out, s)
	}
	return out
}

// mergeSpans sorts spans and joins the ones that overlap or touch.
func mergeSpans(spans []span) []span {
	slices.SortFunc(spans, func(a, b span) int {
		switch {
		case a.start < b.start:
			return -1
		case a.start > b.start:
			return 1
		}
		return 0
	})

	if len(spans) == 0 {
		return nil
	}

	merged := spans[:1]
	for _, s := range spans[1:] {
		current := &merged[len(merged)-1]
		if s.start <= current.end+1 {
			if s.end > current.end {
				current.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// appendSpanNetworks splits s into the largest aligned blocks, left to right.
func appendSpanNetworks(out []Network, s span) []Network {
	start := s.start
	for start <= s.end {
		// Largest block allowed by the alignment of start.
		hostBits := min(bits.TrailingZeros64(start), addressBits)
		// Shrink until the block fits in the remaining interval.
		for hostBits > 0 && start+(uint64(1)<<hostBits)-1 > s.end {
			hostBits--
		}

		out = append(out, Network{base: uint32(start), bits: uint8(addressBits - hostBits)})
		start += uint64(1) << hostBits
	}
	return out
}

// Covers reports whether every address of n lies inside some network of set.
func Covers(set []Network, n Network) bool {
	want := span{start: uint64(n.base), end: uint64(n.last())}
	for _, s := range mergeSpans(toSpans(set)) {
		if s.start <= want.start && want.end <= s.end {
			return true
		}
	}
	return false
}

// TotalSize returns the number of distinct addresses covered by networks.
func TotalSize(networks []Network) uint64 {
	var total uint64
	for _, n := range Collapse(networks) {
		total += n.Size()
	}
	return total
}

func toSpans(networks []Network) []span {
	spans := make([]span, 0, len(networks))
	for _, n := range networks {
		spans = append(spans, span{start: uint64(n.base), end: uint64(n.last())})
	}
	return spans
}
