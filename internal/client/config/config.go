// Package config loads runtime settings for the banking CLI from defaults,
// an optional JSON file, and command-line flags, in that order of precedence.
package config

// Config holds runtime settings for the banking CLI.
//
// Fields:
//   - ServerBaseURL: origin of the remote banking API, e.g. "http://localhost:8080".
//   - DatabasePath: path of the local SQLite file holding the credential slot.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.DatabasePath = "bankcli.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
