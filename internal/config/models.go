package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/muurk/consultacep/internal/viacep"
)

// CurrentVersion is the only config file version understood
const CurrentVersion = 1

// Defaults for a fresh config
const (
	DefaultLookupTimeout = 10 * time.Second
	DefaultServeAddr     = ":8080"
)

// Config represents the entire user configuration file.
// Command-line flags override every field.
type Config struct {
	Version       int           `yaml:"version"`
	BaseURL       string        `yaml:"base_url"`                // ViaCEP endpoint, e.g. "https://viacep.com.br/ws"
	LookupTimeout time.Duration `yaml:"lookup_timeout"`          // Per-lookup bound, e.g. "10s"
	LogLevel      string        `yaml:"log_level,omitempty"`     // Empty means silent
	LogFile       string        `yaml:"log_file,omitempty"`      // Where the form writes logs; empty means DefaultLogFile()
	ServeAddr     string        `yaml:"serve_addr"`              // Listen address for `serve`
	OTLPEndpoint  string        `yaml:"otlp_endpoint,omitempty"` // host:port of an OTLP gRPC collector; empty disables tracing
	OTLPInsecure  bool          `yaml:"otlp_insecure"`           // Plaintext gRPC to the collector
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version:       CurrentVersion,
		BaseURL:       viacep.DefaultBaseURL,
		LookupTimeout: DefaultLookupTimeout,
		ServeAddr:     DefaultServeAddr,
		OTLPInsecure:  true,
	}
}

// applyDefaults fills fields a hand-written file may have left out
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = viacep.DefaultBaseURL
	}
	if c.LookupTimeout == 0 {
		c.LookupTimeout = DefaultLookupTimeout
	}
	if c.ServeAddr == "" {
		c.ServeAddr = DefaultServeAddr
	}
}

// Validate checks the values a lookup depends on.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an http(s) URL", c.BaseURL)
	}

	if c.LookupTimeout < 0 {
		return fmt.Errorf("invalid lookup_timeout %s: must be positive", c.LookupTimeout)
	}

	return nil
}
