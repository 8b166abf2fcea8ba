// Package ranges holds the IPv4 network arithmetic of ip-ranges.
//
// It turns provider range records and resolved host addresses into the
// smallest equivalent list of CIDR blocks.
//
// # Networks
//
// Network is an immutable IPv4 CIDR value. Every constructor clears host bits,
// so "10.0.0.7/24" and "10.0.0.0/24" parse to the same value. IPv6 input is
// rejected with a validation error instead of being truncated.
//
// # Filtering
//
// FilterRecords keeps the records whose service and region are accepted by a
// models.Selector and returns their distinct prefixes:
//
//	selector := models.Selector{"S3": models.NewRegionSet("us-east-1")}
//	networks, err := ranges.FilterRecords(records, selector)
//
// # Collapsing
//
// Collapse accepts any number of lists and returns the minimal CIDR set
// covering exactly the same addresses:
//
//	combined := ranges.Collapse(hostNetworks, providerNetworks)
//	for _, n := range combined {
//	    fmt.Println(n)
//	}
//
// Overlapping, duplicated or adjacent inputs are fine. The result is sorted
// by base address and is identical for every permutation of the input.
package ranges
