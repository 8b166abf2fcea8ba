package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/maksimkurb/ip-ranges/src/internal/config"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/provider"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

func CreateServicesCommand() *ServicesCommand {
	gc := &ServicesCommand{
		fs: flag.NewFlagSet("services", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.selectedOnly, "selected", false, "Show only service/region pairs matched by the selector")
	return gc
}

// ServicesCommand lists the service/region pairs published by the provider.
type ServicesCommand struct {
	fs           *flag.FlagSet
	cfg          *config.Config
	provider     provider.Provider
	selectedOnly bool
}

func (g *ServicesCommand) Name() string {
	return g.fs.Name()
}

func (g *ServicesCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	g.provider = newProvider(g.cfg)
	return nil
}

func (g *ServicesCommand) Run() error {
	records, err := g.provider.Fetch(context.Background())
	if err != nil {
		return err
	}

	summary := ranges.SummarizeRecords(records, g.cfg.ServiceSelector())
	log.Debugf("Provider publishes %d service/region pair(s)", len(summary))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tREGION\tPREFIXES\tSELECTED")
	for _, entry := range summary {
		if g.selectedOnly && !entry.Selected {
			continue
		}
		selected := ""
		if entry.Selected {
			selected = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", entry.Service, entry.Region, entry.Prefixes, selected)
	}
	return tw.Flush()
}
