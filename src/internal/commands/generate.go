package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/maksimkurb/ip-ranges/src/internal/config"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/output"
	"github.com/maksimkurb/ip-ranges/src/internal/pipeline"
)

func CreateGenerateCommand() *GenerateCommand {
	gc := &GenerateCommand{
		fs: flag.NewFlagSet("generate", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.dryRun, "dry-run", false, "Print both lists to stdout instead of writing files")
	return gc
}

type GenerateCommand struct {
	fs     *flag.FlagSet
	cfg    *config.Config
	deps   pipeline.Deps
	dryRun bool
}

func (g *GenerateCommand) Name() string {
	return g.fs.Name()
}

func (g *GenerateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	res, err := newResolver(g.cfg)
	if err != nil {
		return err
	}
	g.deps.Resolver = res
	g.deps.Provider = newProvider(g.cfg)

	if g.dryRun {
		log.SetForceStdErr(true)
		g.deps.Writer = output.NewPrintWriter(os.Stdout, g.cfg.Output.LineFormat)
		return nil
	}

	writer, err := newFileWriter(g.cfg)
	if err != nil {
		return err
	}
	g.deps.Writer = writer

	return nil
}

func (g *GenerateCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := pipeline.Run(ctx, pipeline.Params{
		Hosts:    g.cfg.Resolver.Hosts,
		Selector: g.cfg.ServiceSelector(),
	}, g.deps)
	if err != nil {
		return err
	}

	log.Infof("Done")
	return nil
}
