package graphql

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shikigo-cli/shikigo/log"
	"github.com/shikigo-cli/shikigo/network"
)

const (
	defaultAttemptTimeout     = 30 * time.Second
	defaultRetryAfterFallback = 5 * time.Second
)

// Transport performs exactly one HTTP attempt for a GraphQL request and
// classifies the result. Retry policy lives entirely in the Executor, which
// keeps this attempt primitive testable in isolation from timing.
type Transport interface {
	Do(ctx context.Context, req Request) Outcome
}

// HTTPTransport posts GraphQL requests to a fixed endpoint over a shared
// http.Client, applying a per-attempt timeout and static headers.
type HTTPTransport struct {
	client            *http.Client
	url               string
	headers           map[string]string
	timeout           time.Duration
	retryAfterDefault time.Duration
}

// HTTPTransportConfig configures an HTTPTransport. Zero values fall back to
// the shared tuned client, a 30s attempt timeout, and a 5s rate-limit wait
// for 429 responses without a Retry-After header.
type HTTPTransportConfig struct {
	URL               string
	Client            *http.Client
	Headers           map[string]string
	Timeout           time.Duration
	RetryAfterDefault time.Duration
}

// NewHTTPTransport builds the production Transport implementation.
func NewHTTPTransport(cfg HTTPTransportConfig) *HTTPTransport {
	client := cfg.Client
	if client == nil {
		client = network.Client
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}
	fallback := cfg.RetryAfterDefault
	if fallback <= 0 {
		fallback = defaultRetryAfterFallback
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &HTTPTransport{
		client:            client,
		url:               cfg.URL,
		headers:           headers,
		timeout:           timeout,
		retryAfterDefault: fallback,
	}
}

// Do performs one POST of the `{query, variables}` body and classifies the
// response: 2xx → Success, 429 → RateLimited, network failures and 5xx →
// Transient, any other status → Fatal.
func (t *HTTPTransport) Do(ctx context.Context, req Request) Outcome {
	body, err := req.Body()
	if err != nil {
		// Deterministic for a given request, so retrying cannot help.
		return FatalCause(fmt.Errorf("marshal request: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return FatalCause(fmt.Errorf("create request: %w", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return Transient(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Transient(fmt.Errorf("read response body: %w", err))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return Success(resp.StatusCode, data)
	case resp.StatusCode == http.StatusTooManyRequests:
		wait := retryAfter(resp.Header, t.retryAfterDefault)
		log.Debugf("shikimori rate limited, advertised wait %s", wait)
		return RateLimited(wait)
	case resp.StatusCode >= 500:
		return Transient(fmt.Errorf("server error: HTTP %d", resp.StatusCode))
	default:
		return Fatal(resp.StatusCode, data)
	}
}

// retryAfter extracts the advertised wait from a Retry-After header, which
// may be either delay seconds or an HTTP date. Absent or unparseable values
// fall back to the configured default.
func retryAfter(header http.Header, fallback time.Duration) time.Duration {
	raw := header.Get("Retry-After")
	if raw == "" {
		return fallback
	}

	if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}

	if at, err := http.ParseTime(raw); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
	}

	return fallback
}
