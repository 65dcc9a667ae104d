// Package pokeapi is a small client for the public Pokémon REST API
// (https://pokeapi.co). It only knows the two calls pokedex needs: the
// paginated index and the per-entry detail record.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/rshade/pokedex/internal/logging"
)

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pokedex"

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 5 * 1024 * 1024
)

// ErrResponseTooLarge is returned when a body exceeds maxResponseSize.
var ErrResponseTooLarge = errors.New("response too large")

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Client talks to the Pokémon API. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL overrides the API root, e.g. to point at a test server.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(strings.TrimRight(raw, "/"))
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", raw, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base URL %q: scheme and host are required", raw)
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("nil http client")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		c.httpClient.Timeout = d
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua != "" {
			c.userAgent = ua
		}
		return nil
	}
}

// WithRateLimit caps outgoing requests per second. Zero or less disables it.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) error {
		if perSecond <= 0 {
			c.limiter = nil
			return nil
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		return nil
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = logging.ComponentLogger(l, "pokeapi")
		return nil
	}
}

// NewClient builds a Client with the given options applied over defaults.
func NewClient(opts ...Option) (*Client, error) {
	base, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 32,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListPokemon fetches the first limit entries of the Pokémon index.
func (c *Client) ListPokemon(ctx context.Context, limit int) (*IndexPage, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be >= 1, got %d", limit)
	}
	u := c.baseURL.JoinPath("pokemon")
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var page IndexPage
	if err := c.getJSON(ctx, u.String(), &page); err != nil {
		return nil, fmt.Errorf("fetching pokemon index: %w", err)
	}
	return &page, nil
}

// GetPokemon fetches one detail record. ref is the url from an index entry;
// relative references are resolved against the base URL's host.
func (c *Client) GetPokemon(ctx context.Context, ref string) (*Detail, error) {
	target, err := c.resolve(ref)
	if err != nil {
		return nil, err
	}

	var d Detail
	if err = c.getJSON(ctx, target, &d); err != nil {
		return nil, fmt.Errorf("fetching pokemon %s: %w", ref, err)
	}
	return &d, nil
}

func (c *Client) resolve(ref string) (string, error) {
	if ref == "" {
		return "", errors.New("empty pokemon reference")
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid pokemon reference %q: %w", ref, err)
	}
	return c.baseURL.ResolveReference(u).String(), nil
}

func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Ctx(ctx).Str("url", target).Err(err).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug().Ctx(ctx).
		Str("url", target).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > maxResponseSize {
		return fmt.Errorf("%w: exceeded %d bytes", ErrResponseTooLarge, maxResponseSize)
	}
	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
