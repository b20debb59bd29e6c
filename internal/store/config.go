package store

import (
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/quasdata/colfam/internal/errs"
)

// Config holds the settings a driver needs to reach the backing store.
type Config struct {
	// Endpoint is the store's base URL, e.g. "http://localhost:8080" for an
	// HBase REST gateway.
	Endpoint string `yaml:"endpoint"`

	// Timeouts
	ConnectTimeout time.Duration `yaml:"connect_timeout"` // establishing a connection
	RequestTimeout time.Duration `yaml:"request_timeout"` // per-request deadline
}

// DefaultConfig returns working defaults for the given endpoint.
func DefaultConfig(endpoint string) *Config {
	return &Config{
		Endpoint:       endpoint,
		ConnectTimeout: 10 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

// LoadConfig reads a YAML config file. Missing timeouts fall back to the
// defaults; a missing endpoint is an error.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "can't read store config", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "can't parse store config", err)
	}
	if cfg.Endpoint == "" {
		return nil, errs.New(errs.ErrKindInvalidInput, "store config has no endpoint")
	}

	def := DefaultConfig(cfg.Endpoint)
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = def.ConnectTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}
	return cfg, nil
}
