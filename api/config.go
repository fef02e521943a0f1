package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// explorer endpoints
const (
	RiseTestnetAPI = "https://explorer.testnet.riselabs.xyz/api"

	DefaultUserAgent = "risescan/1.0"
)

// environment variables read by ConfigFromEnv
const (
	EnvBaseURL     = "RISESCAN_BASE_URL"
	EnvTimeout     = "RISESCAN_TIMEOUT"
	EnvMaxAttempts = "RISESCAN_MAX_ATTEMPTS"
	EnvRetryDelay  = "RISESCAN_RETRY_DELAY"
	EnvRateLimit   = "RISESCAN_RATE_LIMIT"
)

// Config holds the client configuration. It is read-only once passed to
// NewClient.
type Config struct {
	// BaseURL is the explorer API endpoint, e.g. https://host/api.
	BaseURL string

	// Timeout bounds a single HTTP request.
	Timeout time.Duration

	// MaxAttempts is the total number of requests sent for one call,
	// including the first. Use -1 for a single attempt (0 uses the default).
	MaxAttempts int

	// RetryDelay is the base delay used by the default linear backoff.
	RetryDelay time.Duration

	// Backoff overrides the delay strategy between attempts.
	Backoff Backoff

	// RateLimitPerSec paces requests. Use -1 to disable (0 uses the default).
	RateLimitPerSec float64

	UserAgent string

	// HTTPClient is an optional custom HTTP client; Timeout is ignored when set.
	HTTPClient *http.Client

	Logger *slog.Logger

	// Sleep replaces the wait between attempts, mostly for tests.
	Sleep SleepFunc
}

// DefaultConfig returns a config with default values.
func DefaultConfig() Config {
	return Config{
		BaseURL:         RiseTestnetAPI,
		Timeout:         30 * time.Second,
		MaxAttempts:     3,
		RetryDelay:      1 * time.Second,
		RateLimitPerSec: 5,
		UserAgent:       DefaultUserAgent,
		Logger:          slog.Default(),
	}
}

func applyDefaults(config *Config, defaults Config) {
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	// MaxAttempts: 0 means default, negative means exactly one attempt
	if config.MaxAttempts == 0 {
		config.MaxAttempts = defaults.MaxAttempts
	} else if config.MaxAttempts < 0 {
		config.MaxAttempts = 1
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = defaults.RetryDelay
	}
	if config.Backoff == nil {
		config.Backoff = LinearBackoff(config.RetryDelay)
	}
	if config.RateLimitPerSec == 0 {
		config.RateLimitPerSec = defaults.RateLimitPerSec
	}
	if config.UserAgent == "" {
		config.UserAgent = defaults.UserAgent
	}
	if config.Logger == nil {
		config.Logger = defaults.Logger
	}
	if config.Sleep == nil {
		config.Sleep = sleepContext
	}
}

// ConfigFromEnv starts from DefaultConfig and applies RISESCAN_* variables.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment win over it.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load(".env")

	config := DefaultConfig()

	if v := os.Getenv(EnvBaseURL); v != "" {
		config.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		config.Timeout = d
	}
	if v := os.Getenv(EnvMaxAttempts); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config, fmt.Errorf("%s: %w", EnvMaxAttempts, err)
		}
		config.MaxAttempts = n
	}
	if v := os.Getenv(EnvRetryDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config, fmt.Errorf("%s: %w", EnvRetryDelay, err)
		}
		config.RetryDelay = d
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return config, fmt.Errorf("%s: %w", EnvRateLimit, err)
		}
		config.RateLimitPerSec = f
	}

	return config, nil
}
