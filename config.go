package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process configuration, loaded once at startup and
// immutable afterwards.
type Config struct {
	// AccessToken is the Oura personal access token used as a bearer
	// credential on every upstream request.
	AccessToken string `mapstructure:"oura_access_token"`

	// Port is the TCP port the MCP HTTP listener binds to.
	Port int `mapstructure:"port"`

	// BaseURL is the Oura user-collection API root. Overridable so tests
	// can point the client at a local server.
	BaseURL string `mapstructure:"oura_base_url"`

	// HTTPTimeout bounds every upstream request.
	HTTPTimeout time.Duration `mapstructure:"oura_http_timeout"`
}

// LoadConfig reads configuration from environment variables.
//
// Expected environment variables:
//   - OURA_ACCESS_TOKEN (required)
//   - PORT (optional, defaults to 8000)
//   - OURA_BASE_URL (optional, defaults to production)
//   - OURA_HTTP_TIMEOUT (optional, defaults to 10s)
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", 8000)
	v.SetDefault("oura_base_url", OuraAPIBaseURL)
	v.SetDefault("oura_http_timeout", defaultHTTPTimeout)

	v.BindEnv("oura_access_token", "OURA_ACCESS_TOKEN")
	v.BindEnv("port", "PORT")
	v.BindEnv("oura_base_url", "OURA_BASE_URL")
	v.BindEnv("oura_http_timeout", "OURA_HTTP_TIMEOUT")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("OURA_ACCESS_TOKEN environment variable is required")
	}

	return cfg, nil
}

// TokenPrefix returns the first 10 characters of the access token for
// startup diagnostics. The full token is never logged.
func (c *Config) TokenPrefix() string {
	if len(c.AccessToken) <= 10 {
		return c.AccessToken
	}
	return c.AccessToken[:10]
}
