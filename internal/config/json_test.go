package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": { "env": "production", "version": "2.1.0" },
		"adapter": { "api_base_url": "https://api.example.com", "request_timeout": "12s" },
		"storage": { "db": { "dsn": "admin.db" } },
		"site": {
			"address": "0.0.0.0:8081",
			"cache_ttl": "45s",
			"rotation_interval": 5000000000,
			"allowed_origins": ["https://a.example"]
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.APIBaseURL)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "admin.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8081", cfg.Site.Address)
	assert.Equal(t, 45*time.Second, cfg.Site.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.Site.RotationInterval)
	assert.Equal(t, []string{"https://a.example"}, cfg.Site.AllowedOrigins)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"site":{"cache_ttl":"soon"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
