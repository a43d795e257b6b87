package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"
)

// maxResponseSize caps how much of an upstream body is read.
const maxResponseSize = 10 << 20

// Config holds upstream connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implements API over HTTP. Cookies set by the upstream are kept in a jar owned by
// this client only.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
}

// envelope mirrors model.Envelope but keeps Success optional: some upstream endpoints omit it.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

// NewClient creates a client with its own cookie jar.
func NewClient(cfg Config, logger zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid upstream base URL: %q", cfg.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout,
		},
		logger: logger.With().Str("component", "platform-client").Logger(),
	}, nil
}

// endpoint joins path segments onto the base URL, escaping each segment.
func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.Join(segments, "/")
	u.RawPath = c.baseURL.EscapedPath() + "/" + strings.Join(escaped, "/")
	return u.String()
}

func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	return c.do(ctx, http.MethodGet, target, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, target string, body any, out any) error {
	if body == nil {
		return c.do(ctx, method, target, nil, "", out)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, method, target, bytes.NewReader(payload), "application/json", out)
}

// do performs the request and decodes the envelope. Data is unmarshalled into out when both
// are present.
func (c *Client) do(ctx context.Context, method, target string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("method", method).
			Str("url", target).
			Msg("upstream request failed")
		return fmt.Errorf("upstream request %s %s failed: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("upstream request")

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read upstream response: %w", err)
	}

	// an empty error body is allowed, anything else must be an envelope
	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("failed to decode upstream response (status %d): %w", resp.StatusCode, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Message
		if message == "" {
			message = env.Error
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: message}
	}

	if env.Success != nil && !*env.Success {
		return &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode upstream data: %w", err)
		}
	}

	return nil
}

var _ API = (*Client)(nil)

// Factory creates a fresh upstream client, one per browser session.
type Factory func() (API, error)

// NewFactory returns a Factory building HTTP clients with cfg.
func NewFactory(cfg Config, logger zerolog.Logger) Factory {
	return func() (API, error) {
		return NewClient(cfg, logger)
	}
}
