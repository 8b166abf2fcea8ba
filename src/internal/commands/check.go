package commands

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/maksimkurb/ip-ranges/src/internal/config"
	"github.com/maksimkurb/ip-ranges/src/internal/coverage"
	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
	"github.com/maksimkurb/ip-ranges/src/internal/resolver"
)

const (
	listServers  = "servers"
	listCombined = "combined"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.list, "list", listCombined, "List to check against: servers or combined")
	return gc
}

// CheckCommand reports which written networks cover the given addresses or hostnames.
type CheckCommand struct {
	fs       *flag.FlagSet
	cfg      *config.Config
	list     string
	path     string
	targets  []string
	resolver resolver.Resolver
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	g.targets = g.fs.Args()
	if len(g.targets) == 0 {
		return errors.NewValidationError("at least one address or hostname is required", nil)
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	writer, err := newFileWriter(g.cfg)
	if err != nil {
		return err
	}
	switch g.list {
	case listServers:
		g.path = writer.ServersPath()
	case listCombined:
		g.path = writer.CombinedPath()
	default:
		return errors.NewValidationError(fmt.Sprintf("unknown list %q, expected %s or %s", g.list, listServers, listCombined), nil)
	}

	if g.resolver, err = newResolver(g.cfg); err != nil {
		return err
	}

	return nil
}

func (g *CheckCommand) Run() error {
	networks, err := coverage.LoadFile(g.path, g.cfg.Output.LineFormat)
	if err != nil {
		return err
	}
	index, err := coverage.NewIndex(networks)
	if err != nil {
		return err
	}
	log.Debugf("Loaded %d network(s) from %s", index.Len(), g.path)

	missing := 0
	for _, target := range g.targets {
		ip, err := g.targetIP(target)
		if err != nil {
			return err
		}

		containing, err := index.Lookup(ip)
		if err != nil {
			return err
		}
		if len(containing) == 0 {
			missing++
			fmt.Printf("%s (%s): not covered\n", target, ip)
			continue
		}
		fmt.Printf("%s (%s): covered by %s\n", target, ip, containing[len(containing)-1])
	}

	if missing > 0 {
		return errors.NewValidationError(fmt.Sprintf("%d of %d target(s) not covered by %s", missing, len(g.targets), g.path), nil)
	}
	return nil
}

func (g *CheckCommand) targetIP(target string) (net.IP, error) {
	if net.ParseIP(target) != nil {
		return ranges.ParseIPv4(target)
	}
	resolved, err := g.resolver.Resolve(context.Background(), []string{target})
	if err != nil {
		return nil, err
	}
	return resolved[0].IP(), nil
}
