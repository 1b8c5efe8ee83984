package whatsyour

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/whatsyour-info/whatsyour-go/pkg/httpclient"
)

const (
	DefaultBaseURL   = "https://whatsyour.info/api"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "whatsyour-info-go/1.0.0"

	// DefaultSearchLimit is used by SearchProfiles when limit <= 0.
	DefaultSearchLimit = 10

	apiKeyURL = "https://whatsyour.info/dev"
)

// Config holds the client configuration. Zero values select the defaults.
type Config struct {
	// APIKey is sent as a bearer token on every request and gates the
	// authentication endpoints.
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	Logger Logger
	// HTTPClient replaces the resty transport, mainly for tests.
	HTTPClient httpclient.Client
}

// Client is a What'sYour.Info API client. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	headers map[string]string
	http    httpclient.Client
	log     Logger
}

// New builds a client from cfg, applying defaults for unset fields.
func New(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   userAgent,
	}
	if cfg.APIKey != "" {
		headers["Authorization"] = bearer(cfg.APIKey)
	}

	transport := cfg.HTTPClient
	if transport == nil {
		transport = httpclient.NewRestyClient(timeout)
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		timeout: timeout,
		headers: headers,
		http:    transport,
		log:     ensureLogger(cfg.Logger),
	}
}

// BaseURL returns the normalized API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// HasAPIKey reports whether the client was configured with an API key.
func (c *Client) HasAPIKey() bool { return c.apiKey != "" }

// call describes one API request.
type call struct {
	op      string
	method  string
	path    string
	body    any
	query   map[string]string
	headers map[string]string
}

// do issues a single request and maps the outcome to a JSON object or an *Error.
func (c *Client) do(ctx context.Context, in call) (map[string]any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqID := uuid.NewString()
	headers := mergeHeaders(c.headers, in.headers)
	headers["X-Request-ID"] = reqID

	req := httpclient.Request{
		Method:  in.method,
		URL:     c.baseURL + "/" + strings.TrimLeft(in.path, "/"),
		Headers: headers,
		Query:   in.query,
		Body:    in.body,
	}

	c.log.DebugObj("api request", "request", map[string]any{
		"operation":  in.op,
		"method":     in.method,
		"path":       in.path,
		"request_id": reqID,
	})

	start := time.Now()
	out, status, err := c.roundTrip(ctx, req)
	elapsed := time.Since(start)

	requestsTotal.WithLabelValues(in.op, outcomeFor(err)).Inc()
	requestDuration.WithLabelValues(in.op).Observe(elapsed.Seconds())

	fields := map[string]any{
		"operation":  in.op,
		"method":     in.method,
		"path":       in.path,
		"status":     status,
		"elapsed_ms": elapsed.Milliseconds(),
		"request_id": reqID,
	}
	if err != nil {
		fields["error"] = err.Error()
		c.log.WarnObj("api request failed", "request", fields)
		return nil, err
	}
	c.log.DebugObj("api request completed", "request", fields)
	return out, nil
}

func (c *Client) roundTrip(ctx context.Context, req httpclient.Request) (map[string]any, int, error) {
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, 0, newError(KindSDK, 0, err, "request failed")
	}

	status := resp.StatusCode()
	body := resp.Body()
	switch {
	case status == http.StatusNotFound:
		return nil, status, newError(KindNotFound, status, nil, "resource not found")
	case status == http.StatusUnauthorized:
		return nil, status, newError(KindAuthentication, status, nil, "authentication failed")
	case status < 200 || status > 299:
		return nil, status, newError(KindSDK, status, nil, "%s", errorMessage(status, body))
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, status, newError(KindDecode, status, err, "decode response body")
	}
	if out == nil {
		return nil, status, newError(KindDecode, status, nil, "response body is not a JSON object")
	}
	return out, status, nil
}

// errorMessage extracts the API's "error" field, falling back to the status code.
func errorMessage(status int, body []byte) string {
	fallback := "HTTP " + strconv.Itoa(status)
	if len(bytes.TrimSpace(body)) == 0 {
		return fallback
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	if msg, ok := payload["error"].(string); ok && msg != "" {
		return msg
	}
	return fallback
}

// mergeHeaders applies overrides over defaults; overrides win on conflicts.
func mergeHeaders(defaults, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[http.CanonicalHeaderKey(k)] = v
	}
	for k, v := range overrides {
		out[http.CanonicalHeaderKey(k)] = v
	}
	return out
}

func bearer(token string) string { return "Bearer " + token }

func (c *Client) requireAPIKey() error {
	if c.apiKey == "" {
		return newError(KindAuthentication, 0, nil, "API key is required for this operation. Get your API key at %s", apiKeyURL)
	}
	return nil
}

func pathEscape(segment string) string { return url.PathEscape(segment) }
