// Package config provides configuration loading and validation for the analysis pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultRemoteTimeoutMS bounds the remote market lookup when the caller
// does not set a timeout.
const DefaultRemoteTimeoutMS = 5000

// Options is the explicit configuration value passed into RunAnalysis.
// The pipeline reads no ambient process state; everything it needs is here.
type Options struct {
	// Remote market data source
	EnableRemoteMarketData bool   `json:"enable_remote_market_data"`
	RemoteTimeoutMS        int    `json:"remote_timeout_ms" validate:"gte=0,lte=60000"`
	MarketDataURL          string `json:"market_data_url,omitempty" validate:"omitempty,url"`
	MarketAPIKey           string `json:"market_api_key,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
	JSONLog bool `json:"json_log,omitempty"`
}

var validate = validator.New()

// Default returns the options used when no config file or flags are given.
func Default() Options {
	return Options{
		RemoteTimeoutMS: DefaultRemoteTimeoutMS,
	}
}

// RemoteTimeout returns the remote lookup timeout as a duration, falling
// back to the default when unset.
func (o Options) RemoteTimeout() time.Duration {
	if o.RemoteTimeoutMS <= 0 {
		return DefaultRemoteTimeoutMS * time.Millisecond
	}
	return time.Duration(o.RemoteTimeoutMS) * time.Millisecond
}

// Validate checks that the options carry usable values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			v := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", v.Field(), v.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	if o.EnableRemoteMarketData && o.MarketDataURL == "" {
		return fmt.Errorf("config error: 'market_data_url' is required when remote market data is enabled")
	}
	return nil
}

// LoadConfig loads options from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Options, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	opts := Default()
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &opts, nil
}
