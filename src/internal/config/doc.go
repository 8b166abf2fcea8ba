// Package config handles configuration parsing and validation for ip-ranges.
//
// The configuration is an optional TOML file. Without one, DefaultConfig
// reproduces the built-in server list, provider URL and service selector.
//
// # Configuration Structure
//
//	[provider]
//	url = "https://ip-ranges.amazonaws.com/ip-ranges.json"
//	timeout_seconds = 30
//
//	[resolver]
//	hosts = ["cs.stingray360.com", "cs-affiliates.stingray360.com"]
//	upstream = "udp://1.1.1.1:53"   # optional, system resolver otherwise
//
//	[selector]
//	CLOUDFRONT = ["GLOBAL"]
//	S3 = ["us-east-1", "us-east-2"]
//
//	[output]
//	dir = "/srv/allowlists"          # IP_RANGES_OUTPUT_PATH takes precedence
//	servers_file = "stingray-time.txt"
//	combined_file = "stingray.txt"
//	line_format = "{{cidr}}"
//
// Missing sections and fields fall back to defaults. The selector holds one
// region list per service; a service cannot appear twice.
//
// # Example Usage
//
//	if err := config.LoadDotEnv(""); err != nil {
//	    log.Warnf("%v", err)
//	}
//	cfg, err := config.LoadConfig(path)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	dir, err := cfg.ResolveOutputDir()
package config
