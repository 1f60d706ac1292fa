package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, "http://localhost:8081", c.AuthorityURL)
	assert.Equal(t, 10*time.Second, c.AuthTimeout)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"coordinator", "-a", ":9999", "-u", "http://auth:8081", "-w", "3"}

	c := &Config{}
	c.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(c) })

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, "http://auth:8081", c.AuthorityURL)
	assert.Equal(t, 3*time.Second, c.AuthTimeout)
}

func TestParseJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(map[string]any{
		"endpoint_addr": ":7070",
		"authority_url": "http://users:8081",
		"auth_timeout":  "5s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"coordinator", "-c", path}

	c := &Config{}
	parseJSON(c)

	assert.Equal(t, ":7070", c.EndpointAddr)
	assert.Equal(t, "http://users:8081", c.AuthorityURL)
	assert.Equal(t, 5*time.Second, c.AuthTimeout)
}
