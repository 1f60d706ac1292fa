package config

import (
	"encoding/json"
	"os"

	"github.com/joshradin/federeddit/internal/flagx"
	"github.com/joshradin/federeddit/internal/timex"
)

// jsonConfig is the JSON-file DTO for Config. Duration fields accept
// both strings ("720h") and integer nanoseconds via timex.Duration.
type jsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJSON overlays Config with values from the JSON file named by
// the -c/-config flags. No flag, no overlay. An unreadable or invalid
// file is a startup fault and panics.
func parseJSON(config *Config) {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
}
