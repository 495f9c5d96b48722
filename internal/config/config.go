// Package config handles configuration for the beacon-send tool,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the beacon-send tool.
//
// Fields:
//   - IngestEndpoint: absolute URL of the ingestion endpoint.
//   - APIKey: project API key; when empty the tool prompts for it.
//   - AppVersion: version string reported as the app_version field.
//   - UserID: user identifier stamped on every event.
type Config struct {
	IngestEndpoint string
	APIKey         string
	AppVersion     string
	UserID         string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.IngestEndpoint = "http://127.0.0.1:8080/events"
	c.AppVersion = "0.1.0"
	c.UserID = "anonymous"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
