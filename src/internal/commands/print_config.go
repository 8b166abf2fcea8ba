package commands

import (
	"flag"
	"os"

	"github.com/maksimkurb/ip-ranges/src/internal/config"
)

func CreatePrintConfigCommand() *PrintConfigCommand {
	gc := &PrintConfigCommand{
		fs: flag.NewFlagSet("print-config", flag.ExitOnError),
	}
	return gc
}

// PrintConfigCommand prints the effective configuration (file merged with
// defaults) as TOML. Useful as a starting point for a configuration file.
type PrintConfigCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *PrintConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *PrintConfigCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *PrintConfigCommand) Run() error {
	buf, err := g.cfg.SerializeConfig()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(buf.Bytes())
	return err
}
