package ranges

import (
	"fmt"
	"sort"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/models"
)

// FilterRecords returns the distinct networks of records selected by selector.
//
// A record is selected when its service has an entry in selector and its region
// is in that entry's region set. Entries are tested in service-name order and
// the first matching entry wins, so a record is never counted twice. Records
// that match nothing are skipped silently. The result is sorted; callers
// normally pass it straight to Collapse.
func FilterRecords(records []models.Record, selector models.Selector) ([]Network, error) {
	services := selector.Services()
	prefixes := make(map[string]struct{})

	for _, record := range records {
		for _, service := range services {
			if record.Service == service && selector[service].Has(record.Region) {
				prefixes[record.IPPrefix] = struct{}{}
				break
			}
		}
	}

	networks := make([]Network, 0, len(prefixes))
	for prefix := range prefixes {
		n, err := ParseNetwork(prefix)
		if err != nil {
			return nil, errors.NewFetchError(fmt.Sprintf("provider published an invalid prefix %q", prefix), err)
		}
		networks = append(networks, n)
	}
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].Compare(networks[j]) < 0
	})

	log.Debugf("Selected %d distinct prefix(es) out of %d record(s)", len(networks), len(records))
	return networks, nil
}

// ServiceRegion is one distinct (service, region) pair found in provider data.
type ServiceRegion struct {
	Service  string
	Region   string
	Prefixes int
	Selected bool
}

// SummarizeRecords counts prefixes per (service, region) pair and marks the
// pairs selected by selector. Pairs are sorted by service, then region.
func SummarizeRecords(records []models.Record, selector models.Selector) []ServiceRegion {
	type key struct{ service, region string }
	counts := make(map[key]int)
	for _, record := range records {
		counts[key{record.Service, record.Region}]++
	}

	summary := make([]ServiceRegion, 0, len(counts))
	for k, count := range counts {
		summary = append(summary, ServiceRegion{
			Service:  k.service,
			Region:   k.region,
			Prefixes: count,
			Selected: selector.Matches(models.Record{Service: k.service, Region: k.region}),
		})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Service != summary[j].Service {
			return summary[i].Service < summary[j].Service
		}
		return summary[i].Region < summary[j].Region
	})
	return summary
}
