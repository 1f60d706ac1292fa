// Package config handles configuration for the coordinator service.
package config

import "time"

// Config holds runtime settings for the coordinator.
//
// AuthorityURL points at the users service that validates bearer
// tokens; AuthTimeout bounds each validation call so the coordinator
// never hangs on an unresponsive authority.
type Config struct {
	EndpointAddr string
	AuthorityURL string
	AuthTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.AuthorityURL = "http://localhost:8081"
	c.AuthTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying an
// optional JSON file, then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
