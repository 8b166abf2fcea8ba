package models

import "sort"

// RegionSet is a set of accepted region identifiers.
type RegionSet map[string]struct{}

// NewRegionSet builds a RegionSet from the given regions.
func NewRegionSet(regions ...string) RegionSet {
	set := make(RegionSet, len(regions))
	for _, region := range regions {
		set[region] = struct{}{}
	}
	return set
}

// Has reports whether region is in the set.
func (s RegionSet) Has(region string) bool {
	_, ok := s[region]
	return ok
}

// Sorted returns the regions in lexical order.
func (s RegionSet) Sorted() []string {
	regions := make([]string, 0, len(s))
	for region := range s {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// Selector maps a service identifier to the set of regions accepted for it.
//
// Keys are unique, so only one region set per service can be expressed. A service
// that needs regions from two unrelated groups must list all of them in one set.
type Selector map[string]RegionSet

// Services returns the selector's service identifiers in lexical order.
func (s Selector) Services() []string {
	services := make([]string, 0, len(s))
	for service := range s {
		services = append(services, service)
	}
	sort.Strings(services)
	return services
}

// Matches reports whether the record's service has an entry whose region set contains the record's region.
func (s Selector) Matches(record Record) bool {
	regions, ok := s[record.Service]
	return ok && regions.Has(record.Region)
}
