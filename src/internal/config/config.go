package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/ip-ranges/src/internal/log"
)

// OutputPathEnv overrides the output directory when set.
const OutputPathEnv = "IP_RANGES_OUTPUT_PATH"

const (
	defaultProviderURL    = "https://ip-ranges.amazonaws.com/ip-ranges.json"
	defaultTimeoutSeconds = 30
	defaultUserAgent      = "ip-ranges"
	defaultServersFile    = "stingray-time.txt"
	defaultCombinedFile   = "stingray.txt"
	defaultLineFormat     = "{{cidr}}"
)

// DefaultConfig returns the built-in configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Provider: defaultProvider(),
		Resolver: &ResolverConfig{
			Hosts: []string{"cs.stingray360.com", "cs-affiliates.stingray360.com"},
		},
		Selector: map[string][]string{
			"CLOUDFRONT": {"GLOBAL"},
			"S3":         {"us-east-1", "us-east-2"},
		},
		Output: defaultOutput(),
	}
}

func defaultProvider() *ProviderConfig {
	return &ProviderConfig{
		URL:            defaultProviderURL,
		TimeoutSeconds: defaultTimeoutSeconds,
		UserAgent:      defaultUserAgent,
	}
}

func defaultOutput() *OutputConfig {
	return &OutputConfig{
		ServersFile:  defaultServersFile,
		CombinedFile: defaultCombinedFile,
		LineFormat:   defaultLineFormat,
	}
}

// LoadConfig reads a TOML configuration file. Sections and fields missing from
// the file take their default values; an empty path yields DefaultConfig.
// Sections that are present replace the defaults field by field, and a present
// [selector] table replaces the default selector entirely.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		log.Debugf("No configuration file given, using built-in defaults")
		return DefaultConfig(), nil
	}

	configFile := filepath.Clean(configPath)
	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config file: error at line %d, column %d: %v", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config.applyDefaults()
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Provider == nil {
		c.Provider = defaults.Provider
	} else {
		if c.Provider.URL == "" {
			c.Provider.URL = defaults.Provider.URL
		}
		if c.Provider.TimeoutSeconds == 0 {
			c.Provider.TimeoutSeconds = defaults.Provider.TimeoutSeconds
		}
		if c.Provider.UserAgent == "" {
			c.Provider.UserAgent = defaults.Provider.UserAgent
		}
	}

	if c.Resolver == nil {
		c.Resolver = defaults.Resolver
	} else if c.Resolver.Hosts == nil {
		c.Resolver.Hosts = defaults.Resolver.Hosts
	}

	if c.Selector == nil {
		c.Selector = defaults.Selector
	}

	if c.Output == nil {
		c.Output = defaults.Output
	} else {
		if c.Output.ServersFile == "" {
			c.Output.ServersFile = defaults.Output.ServersFile
		}
		if c.Output.CombinedFile == "" {
			c.Output.CombinedFile = defaults.Output.CombinedFile
		}
		if c.Output.LineFormat == "" {
			c.Output.LineFormat = defaults.Output.LineFormat
		}
	}
}

// LoadDotEnv loads KEY=value pairs from a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Debugf("No %s file found, using system environment variables", path)
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %v", path, err)
	}
	log.Debugf("Loaded environment from %s", path)
	return nil
}

// ResolveOutputDir returns the output directory: IP_RANGES_OUTPUT_PATH when set,
// otherwise [output] dir, otherwise the current working directory. The
// directory is not checked for existence here.
func (c *Config) ResolveOutputDir() (string, error) {
	if dir := os.Getenv(OutputPathEnv); dir != "" {
		return filepath.Clean(dir), nil
	}
	if dir := c.GetAbsOutputDir(); dir != "" {
		return dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %v", err)
	}
	return dir, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
