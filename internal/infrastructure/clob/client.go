// Package clob implements the signed REST client for the Polymarket CLOB API.
package clob

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/vikions/opipolix-builder-dashboard/pkg/buildersig"
	"github.com/vikions/opipolix-builder-dashboard/pkg/errors"
)

// Config is the CLOB client configuration.
type Config struct {
	Host     string        `env:"HOST" envDefault:"https://clob.polymarket.com"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	PageSize int           `env:"PAGE_SIZE" envDefault:"500"`
	MaxPages int           `env:"MAX_PAGES" envDefault:"100"`

	// Bounded retry budget for transient upstream failures.
	RetryMax     uint64        `env:"RETRY_MAX" envDefault:"3"`
	RetryWaitMin time.Duration `env:"RETRY_WAIT_MIN" envDefault:"250ms"`
	RetryWaitMax time.Duration `env:"RETRY_WAIT_MAX" envDefault:"2s"`
}

// Client is the signed CLOB API client.
type Client struct {
	httpClient *http.Client
	config     Config
	creds      buildersig.Credentials
	now        func() time.Time
}

// Ensure Client implements ClobClient interface
var _ ClobClient = (*Client)(nil)

// NewClient creates a new signed CLOB client. Credentials are validated here
// so a misconfigured service fails before serving any request.
func NewClient(config Config, creds buildersig.Credentials) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
		creds:      creds,
		now:        time.Now,
	}, nil
}

// Get issues a signed GET request against the API, retrying transient
// failures (transport errors, 429 and 5xx statuses) with exponential backoff
// until the retry budget is spent. The last error is surfaced; there is no
// caching or stale fallback.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	requestPath := path
	if len(query) > 0 {
		requestPath += "?" + query.Encode()
	}

	operation := func() error {
		return c.do(ctx, requestPath, out)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.config.RetryWaitMin
	policy.MaxInterval = c.config.RetryWaitMax

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, c.config.RetryMax), ctx))
}

// do performs a single signed request attempt. Non-retryable failures are
// wrapped in backoff.Permanent so the retry loop stops immediately.
func (c *Client) do(ctx context.Context, requestPath string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Host+requestPath, nil)
	if err != nil {
		return backoff.Permanent(errors.NewErrorDetails(
			fmt.Sprintf("failed to build clob request: %v", err),
			errors.GeneralInternalServerError,
			"",
		))
	}

	headers, err := buildersig.Headers(c.creds, http.MethodGet, requestPath, "", c.now())
	if err != nil {
		return backoff.Permanent(err)
	}
	for name, values := range headers {
		req.Header[name] = values
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// transport failure or timeout, retryable within the budget
		return errors.NewErrorDetails(
			fmt.Sprintf("clob api unreachable: %v", err),
			errors.UpstreamUnreachableError,
			"",
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		statusErr := errors.NewErrorDetails(
			fmt.Sprintf("clob api responded with status %d", resp.StatusCode),
			errors.UpstreamStatusError,
			"",
		)
		if retryableStatus(resp.StatusCode) {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return backoff.Permanent(errors.NewErrorDetails(
			fmt.Sprintf("failed to decode clob response: %v", err),
			errors.UpstreamParseError,
			"",
		))
	}

	return nil
}

// Ping issues an unsigned GET /time to verify reachability at startup.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Host+"/time", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewErrorDetails(
			fmt.Sprintf("clob api unreachable: %v", err),
			errors.UpstreamUnreachableError,
			"",
		)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))

	if resp.StatusCode != http.StatusOK {
		return errors.NewErrorDetails(
			fmt.Sprintf("clob api responded with status %d", resp.StatusCode),
			errors.UpstreamStatusError,
			"",
		)
	}

	return nil
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
