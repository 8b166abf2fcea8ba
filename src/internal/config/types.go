package config

import (
	"path/filepath"
	"time"

	"github.com/maksimkurb/ip-ranges/src/internal/models"
	"github.com/maksimkurb/ip-ranges/src/internal/utils"
)

type Config struct {
	// Provider describes where the published range document is downloaded from.
	Provider *ProviderConfig `toml:"provider" json:"provider"`
	// Resolver lists the server hostnames and how to resolve them.
	Resolver *ResolverConfig `toml:"resolver" json:"resolver"`
	// Selector maps a provider service to the regions accepted for it, e.g. S3 = ["us-east-1", "us-east-2"].
	Selector map[string][]string `toml:"selector" json:"selector"`
	// Output controls where and how the two lists are written.
	Output *OutputConfig `toml:"output" json:"output"`

	_absConfigFilePath string
}

type ProviderConfig struct {
	// URL is the address of the published range document.
	URL string `toml:"url" json:"url" validate:"required,url"`
	// TimeoutSeconds bounds the whole download (default: 30).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"gte=1"`
	// UserAgent is sent with the download request (optional).
	UserAgent string `toml:"user_agent,omitempty" json:"user_agent,omitempty"`
}

type ResolverConfig struct {
	// Hosts are the server hostnames (or IPv4 literals) to include.
	Hosts []string `toml:"hosts" json:"hosts" validate:"required,min=1,dive,required,hostname_rfc1123|ipv4"`
	// Upstream is a DNS server to query instead of the system resolver: udp://ip:port, ip:port or ip (optional).
	Upstream string `toml:"upstream,omitempty" json:"upstream,omitempty" validate:"upstream_or_empty"`
}

type OutputConfig struct {
	// Dir is the output directory. IP_RANGES_OUTPUT_PATH overrides it; empty means the current directory.
	Dir string `toml:"dir,omitempty" json:"dir,omitempty"`
	// ServersFile receives the servers-only list.
	ServersFile string `toml:"servers_file" json:"servers_file" validate:"required,file_name,nefield=CombinedFile"`
	// CombinedFile receives the servers + provider ranges list.
	CombinedFile string `toml:"combined_file" json:"combined_file" validate:"required,file_name"`
	// LineFormat renders each network. Variables: {{cidr}}, {{address}}, {{prefix_len}}, {{netmask}}.
	LineFormat string `toml:"line_format" json:"line_format" validate:"required"`
}

func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// Timeout returns the provider download timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// ServiceSelector converts the selector table into a models.Selector.
func (c *Config) ServiceSelector() models.Selector {
	selector := make(models.Selector, len(c.Selector))
	for service, regions := range c.Selector {
		selector[service] = models.NewRegionSet(regions...)
	}
	return selector
}

// GetAbsOutputDir returns the configured output directory, relative paths
// being resolved against the configuration file directory. Empty means unset.
func (c *Config) GetAbsOutputDir() string {
	if c.Output == nil || c.Output.Dir == "" {
		return ""
	}
	if c.GetConfigDir() == "" {
		return filepath.Clean(c.Output.Dir)
	}
	return utils.GetAbsolutePath(c.Output.Dir, c.GetConfigDir())
}
