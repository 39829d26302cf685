package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/nhl-streams/internal/statsapi"
)

// Environment variables read by Load
const (
	EnvAPIBaseURL = "NHL_API_BASE_URL"
	EnvStreamHost = "NHL_STREAM_HOST"
	EnvTimeout    = "NHL_HTTP_TIMEOUT"
)

const (
	// DefaultAPIBaseURL is the NHL stats API v1 root
	DefaultAPIBaseURL = statsapi.DefaultBaseURL

	// DefaultStreamHost serves the getM3U8.php playback endpoint
	DefaultStreamHost = "http://freegamez.ga"

	// DefaultTimeout bounds each stats API request
	DefaultTimeout = statsapi.Timeout

	// DefaultEnvFile is loaded if present in the working directory
	DefaultEnvFile = ".env"
)

// Config represents the resolved settings for one run
type Config struct {
	// APIBaseURL is the stats API root that schedule and content paths are resolved against
	APIBaseURL string

	// StreamHost is the scheme+host prefix of the printed playback URL
	StreamHost string

	// Timeout is the HTTP client timeout for stats API calls
	Timeout time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: DefaultAPIBaseURL,
		StreamHost: DefaultStreamHost,
		Timeout:    DefaultTimeout,
	}
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Load returns DefaultConfig with any overrides found through getenv.
func Load(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(getenv(EnvAPIBaseURL)); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(getenv(EnvStreamHost)); v != "" {
		cfg.StreamHost = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API base URL is empty")
	}
	if c.StreamHost == "" {
		return fmt.Errorf("stream host is empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
