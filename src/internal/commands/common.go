package commands

import (
	"github.com/maksimkurb/ip-ranges/src/internal/config"
	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/output"
	"github.com/maksimkurb/ip-ranges/src/internal/provider"
	"github.com/maksimkurb/ip-ranges/src/internal/resolver"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	EnvFile    string
	Verbose    bool
}

// loadAndValidateConfigOrFail loads configuration (defaults when no path is
// given) and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, errors.NewValidationError("configuration validation failed", err)
	}

	return cfg, nil
}

// newResolver returns the upstream resolver when one is configured, the
// system resolver otherwise.
func newResolver(cfg *config.Config) (resolver.Resolver, error) {
	if cfg.Resolver.Upstream == "" {
		log.Debugf("Using system resolver")
		return resolver.NewSystem(), nil
	}
	upstream, err := resolver.NewUpstream(cfg.Resolver.Upstream)
	if err != nil {
		return nil, err
	}
	log.Debugf("Using DNS upstream %s", upstream.Address())
	return upstream, nil
}

func newProvider(cfg *config.Config) *provider.HTTPProvider {
	return provider.NewHTTPProvider(cfg.Provider.URL, cfg.Timeout(), cfg.Provider.UserAgent)
}

func newFileWriter(cfg *config.Config) (*output.FileWriter, error) {
	dir, err := cfg.ResolveOutputDir()
	if err != nil {
		return nil, errors.NewConfigError("failed to determine output directory", err)
	}
	log.Debugf("Output directory: %s", dir)
	return output.NewFileWriter(dir, cfg.Output.ServersFile, cfg.Output.CombinedFile, cfg.Output.LineFormat), nil
}
