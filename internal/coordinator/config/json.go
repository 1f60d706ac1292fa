package config

import (
	"encoding/json"
	"os"

	"github.com/joshradin/federeddit/internal/flagx"
	"github.com/joshradin/federeddit/internal/timex"
)

type jsonConfig struct {
	EndpointAddr string         `json:"endpoint_addr"`
	AuthorityURL string         `json:"authority_url"`
	AuthTimeout  timex.Duration `json:"auth_timeout"`
}

// parseJSON overlays Config with values from the JSON file named by
// the -c/-config flags.
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
	config.AuthorityURL = c.AuthorityURL
	config.AuthTimeout = c.AuthTimeout.Duration
}
