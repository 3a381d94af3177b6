package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	opts := Default()
	assert.Equal(t, DefaultRemoteTimeoutMS, opts.RemoteTimeoutMS)
	assert.False(t, opts.EnableRemoteMarketData)
	require.NoError(t, opts.Validate())
}

func TestRemoteTimeout(t *testing.T) {
	opts := Options{RemoteTimeoutMS: 250}
	assert.Equal(t, 250*time.Millisecond, opts.RemoteTimeout())

	opts.RemoteTimeoutMS = 0
	assert.Equal(t, DefaultRemoteTimeoutMS*time.Millisecond, opts.RemoteTimeout())
}

func TestValidate_RemoteRequiresURL(t *testing.T) {
	opts := Default()
	opts.EnableRemoteMarketData = true
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "market_data_url")

	opts.MarketDataURL = "https://market.example.com"
	require.NoError(t, opts.Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	opts := Default()
	opts.RemoteTimeoutMS = 120000
	assert.Error(t, opts.Validate())

	opts = Default()
	opts.MarketDataURL = "not a url"
	assert.Error(t, opts.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"enable_remote_market_data": true, "market_data_url": "https://market.example.com", "remote_timeout_ms": 1500}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, opts.EnableRemoteMarketData)
	assert.Equal(t, "https://market.example.com", opts.MarketDataURL)
	assert.Equal(t, 1500, opts.RemoteTimeoutMS)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}
