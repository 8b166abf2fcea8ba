package pipeline

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/models"
	"github.com/maksimkurb/ip-ranges/src/internal/output"
	"github.com/maksimkurb/ip-ranges/src/internal/provider"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
	"github.com/maksimkurb/ip-ranges/src/internal/resolver"
)

// Params are the inputs of one generation run.
type Params struct {
	// Hosts are resolved to the servers-only list.
	Hosts []string
	// Selector picks the provider records added to the combined list.
	Selector models.Selector
}

// Deps are the external collaborators of a run.
type Deps struct {
	Resolver resolver.Resolver
	Provider provider.Provider
	Writer   output.Writer
}

// Result holds the two lists produced by a run.
type Result struct {
	Servers  []ranges.Network
	Combined []ranges.Network
}

// Run executes one generation: check the output directory, resolve hosts,
// fetch and filter provider records, collapse, write. Steps run in order and
// the first failure stops the run; nothing is written unless every earlier
// step succeeded.
func Run(ctx context.Context, params Params, deps Deps) (*Result, error) {
	if err := deps.Writer.CheckDir(); err != nil {
		return nil, err
	}

	hostNetworks, err := deps.Resolver.Resolve(ctx, params.Hosts)
	if err != nil {
		return nil, err
	}
	log.Infof("Resolved %d host(s)", len(hostNetworks))

	records, err := deps.Provider.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	log.Infof("Selecting services: %v", params.Selector.Services())
	providerNetworks, err := ranges.FilterRecords(records, params.Selector)
	if err != nil {
		return nil, err
	}
	log.Infof("Selected %d provider prefix(es)", len(providerNetworks))

	result := &Result{
		Servers:  ranges.Collapse(hostNetworks),
		Combined: ranges.Collapse(hostNetworks, providerNetworks),
	}
	log.Infof("Collapsed to %d server network(s) and %d combined network(s) covering %s address(es)",
		len(result.Servers), len(result.Combined), humanize.Comma(int64(ranges.TotalSize(result.Combined))))

	if err := deps.Writer.Write(result.Servers, result.Combined); err != nil {
		return nil, err
	}
	return result, nil
}
