package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const EnvAPIMaxBodySize = "API_MAX_BODY_SIZE"

// APIConfig controls the auth pass-through endpoints mounted under /api.
type APIConfig struct {
	MaxBodySize    string `toml:"max_body_size"`
	maxBodySizeVal int64
}

// MaxBodySizeBytes is valid after Finalize.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

func (c *APIConfig) Finalize() error {
	if c.MaxBodySize == "" {
		c.MaxBodySize = "64KB"
	}
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}

	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size
	return nil
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
}
