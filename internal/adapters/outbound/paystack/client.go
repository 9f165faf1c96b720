// Package paystack implements the TransactionVerifier interface using
// Paystack's transaction verification API. It provides a single-attempt
// authenticated client with:
//   - Configurable timeouts and base URL
//   - Rate limiting to stay within API limits
//   - A three-way error taxonomy (provider, transport, parse)
package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/lagoslabs/txverify/internal/domain"
	"github.com/lagoslabs/txverify/internal/ports/outbound"
	"golang.org/x/time/rate"
)

// Compile-time check that Client implements outbound.TransactionVerifier.
var _ outbound.TransactionVerifier = (*Client)(nil)

// ClientConfig holds configuration for the Paystack client.
type ClientConfig struct {
	// SecretKey is the Paystack secret API key. It is sent as a bearer
	// token and must never appear in logs or error messages.
	SecretKey string

	// BaseURL is the Paystack API base URL.
	// Defaults to https://api.paystack.co
	BaseURL string

	// Timeout is the maximum time to wait for a single HTTP request.
	Timeout time.Duration

	// RateLimitPerSec is the rate limit in requests per second.
	// Defaults to 5, well under Paystack's advertised limits.
	RateLimitPerSec int

	// Logger is the structured logger for the client.
	Logger *slog.Logger

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
}

// ClientConfigDefaults returns a config with default values.
func ClientConfigDefaults() ClientConfig {
	return ClientConfig{
		BaseURL:         "https://api.paystack.co",
		Timeout:         15 * time.Second,
		RateLimitPerSec: 5,
		Logger:          slog.Default(),
	}
}

// Client implements TransactionVerifier using Paystack's API.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
}

// NewClient creates a new Paystack API client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.SecretKey == "" {
		return nil, errors.New("SecretKey is required")
	}

	defaults := ClientConfigDefaults()
	applyDefaults(&config, defaults)

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	limiter := rate.NewLimiter(rate.Limit(config.RateLimitPerSec), 1)

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     config.Logger.With("component", "paystack-client"),
		limiter:    limiter,
	}, nil
}

func applyDefaults(config *ClientConfig, defaults ClientConfig) {
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	if config.RateLimitPerSec == 0 {
		config.RateLimitPerSec = defaults.RateLimitPerSec
	}
	if config.Logger == nil {
		config.Logger = defaults.Logger
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "paystack"
}

// VerifyTransaction fetches the authoritative status of the transaction
// identified by reference. Exactly one outbound request is issued per call;
// there is no automatic retry. The returned error is one of
// *domain.ProviderError, *domain.TransportError, or *domain.ParseError.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*domain.VerificationResult, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", c.config.BaseURL, url.PathEscape(reference))

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("rate limiter: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	c.logger.Debug("verification response received",
		"reference", reference,
		"httpStatus", resp.StatusCode,
	)

	if resp.StatusCode >= 500 {
		return nil, &domain.TransportError{Err: fmt.Errorf("server error (HTTP %d)", resp.StatusCode)}
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Message != "" {
			return nil, &domain.ProviderError{StatusCode: resp.StatusCode, Message: apiErr.Message}
		}
		return nil, &domain.ParseError{Err: fmt.Errorf("unstructured error response (HTTP %d)", resp.StatusCode)}
	}

	var envelope verifyResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.ParseError{Err: fmt.Errorf("decoding envelope: %w", err)}
	}

	if !envelope.Status {
		return nil, &domain.ProviderError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if envelope.Data == nil {
		return nil, &domain.ParseError{Err: errors.New("success envelope missing data payload")}
	}

	return toResult(reference, &envelope)
}

func toResult(reference string, envelope *verifyResponse) (*domain.VerificationResult, error) {
	data := envelope.Data

	var paidAt time.Time
	if data.PaidAt != "" {
		parsed, err := time.Parse(time.RFC3339, data.PaidAt)
		if err != nil {
			return nil, &domain.ParseError{Err: fmt.Errorf("parsing paid_at %q: %w", data.PaidAt, err)}
		}
		paidAt = parsed
	}

	return &domain.VerificationResult{
		Reference:       reference,
		Status:          domain.TransactionStatus(data.Status),
		AmountMinor:     data.Amount,
		Currency:        data.Currency,
		PaidAt:          paidAt,
		Channel:         data.Channel,
		GatewayResponse: data.GatewayResponse,
		Message:         envelope.Message,
	}, nil
}
