package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of a failed response body ends up in an error.
const maxErrorBody = 256

// Request describes one explorer call. Only GET is used by the explorer API.
type Request struct {
	Module string
	Action string
	Params url.Values
}

// Client handles calls to an Etherscan-compatible explorer API
type Client struct {
	config     Config
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	retry      retryPolicy
}

// NewClient creates a new explorer API client. Zero fields of config take
// their DefaultConfig values.
func NewClient(config Config) (*Client, error) {
	applyDefaults(&config, DefaultConfig())

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", config.BaseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	var limiter *rate.Limiter
	if config.RateLimitPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimitPerSec), 1)
	}

	logger := config.Logger.With("component", "explorer-client")

	return &Client{
		config:     config,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		limiter:    limiter,
		retry: retryPolicy{
			maxAttempts: config.MaxAttempts,
			backoff:     config.Backoff,
			sleep:       config.Sleep,
			onRetry: func(attempt int, err error, delay time.Duration) {
				logger.Warn("request failed, retrying",
					"attempt", attempt,
					"maxAttempts", config.MaxAttempts,
					"delay", delay,
					"error", err,
				)
			},
		},
	}, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.config
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Do sends an arbitrary module/action request. The typed methods are thin
// wrappers around it.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if req.Module == "" || req.Action == "" {
		return nil, invalid("request", "module and action are required")
	}
	return c.get(ctx, req.Module, req.Action, req.Params)
}

func (c *Client) get(ctx context.Context, module, action string, params url.Values) (*Response, error) {
	fullURL := c.requestURL(module, action, params)

	var (
		envelope   *Response
		lastStatus int
	)
	attempts, err := c.retry.do(ctx, func() error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return &nonRetryableError{err: fmt.Errorf("rate limiter: %w", err)}
			}
		}
		resp, status, err := c.doSingleRequest(ctx, fullURL)
		lastStatus = status
		if err != nil {
			return err
		}
		envelope = resp
		return nil
	})
	if err != nil {
		return nil, &NetworkError{Attempts: attempts, StatusCode: lastStatus, Err: err}
	}

	envelope.module = module
	envelope.action = action

	if !envelope.OK() {
		// status "0" with an empty list is how the explorer says "nothing found"
		if records, decodeErr := envelope.Records(); decodeErr == nil && len(records) == 0 {
			c.logger.Debug("explorer returned no results", "module", module, "action", action, "message", envelope.Message)
		} else {
			c.logger.Warn("explorer returned error", "module", module, "action", action, "message", envelope.Message, "result", truncate(envelope.ResultString()))
		}
	}

	return envelope, nil
}

func (c *Client) requestURL(module, action string, params url.Values) string {
	u := *c.baseURL
	query := u.Query()
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("module", module)
	query.Set("action", action)
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) doSingleRequest(ctx context.Context, fullURL string) (*Response, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, &nonRetryableError{err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, resp.StatusCode, &httpStatusError{code: resp.StatusCode, body: truncate(string(body))}
	}
	if resp.StatusCode >= 400 {
		return nil, resp.StatusCode, &nonRetryableError{err: &httpStatusError{code: resp.StatusCode, body: truncate(string(body))}}
	}

	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, resp.StatusCode, &nonRetryableError{err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}
	if envelope.Status != StatusOK && envelope.Status != StatusNotOK {
		return nil, resp.StatusCode, &nonRetryableError{err: fmt.Errorf("%w: unexpected status %q", ErrMalformedResponse, envelope.Status)}
	}

	return &envelope, resp.StatusCode, nil
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) int {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.StatusCode
	}
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.code
	}
	return 0
}

// WeiToEther converts a wei amount to ether (1 ETH = 10^18 wei).
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -18)
}

func truncate(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}
	return s[:maxErrorBody] + "..."
}
