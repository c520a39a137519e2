// Package config loads runtime settings for the EasyApt CLI.
package config

import "time"

// Config holds runtime settings for the EasyApt CLI.
//
// Fields:
//   - APIBaseURL: origin of the EasyApt backend; endpoint paths are joined
//     to it at call time.
//   - RequestTimeout: transport-level bound on each API call.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - CredentialFile: where the bearer credential is persisted; empty means
//     the default location under the user config dir.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	CredentialFile      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 30 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones, so the origin is never
// hardcoded: a deployment can point the client elsewhere without a rebuild.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
