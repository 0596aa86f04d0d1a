package authapi

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// ConfigEnv names the environment variables that override the client settings.
type ConfigEnv struct {
	BaseURL string
	Timeout string
}

// Config holds the auth API settings loaded from the [auth] table. BaseURL is
// resolved once at startup and never re-read.
type Config struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// TimeoutDuration returns the parsed timeout. Zero means no client-side timeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadEnv(env)
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env == nil {
		return
	}
	if v := os.Getenv(env.BaseURL); env.BaseURL != "" && v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(env.Timeout); env.Timeout != "" && v != "" {
		c.Timeout = v
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidBaseURL, c.BaseURL)
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
	}
	return nil
}
