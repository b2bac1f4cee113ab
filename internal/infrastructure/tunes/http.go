// ABOUTME: HTTP tune fetcher against the fixed /api/tunes endpoint
// ABOUTME: Classifies failures as network, status or decode errors
package tunes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/harper/tunes-client/internal/domain"
	"github.com/harper/tunes-client/internal/domain/tune"
)

var _ domain.TuneFetcher = (*HTTPFetcher)(nil)

// DefaultPath is the resource the server publishes tunes at.
const DefaultPath = "/api/tunes"

const (
	DefaultTimeout        = 10 * time.Second
	DefaultConnectTimeout = 5 * time.Second
	DefaultMaxBodyBytes   = 8 << 20
)

type HTTPConfig struct {
	BaseURL        string
	Path           string
	Timeout        time.Duration
	ConnectTimeout time.Duration
	MaxBodyBytes   int64
	Headers        map[string]string

	// LenientStatus decodes the body whatever the status code.
	LenientStatus bool
}

type Option func(*HTTPFetcher)

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(log zerolog.Logger) Option {
	return func(h *HTTPFetcher) {
		h.log = log
	}
}

// WithHTTPClient replaces the client built from the config.
func WithHTTPClient(client *http.Client) Option {
	return func(h *HTTPFetcher) {
		h.client = client
	}
}

type HTTPFetcher struct {
	cfg    HTTPConfig
	url    string
	client *http.Client
	log    zerolog.Logger
}

func NewHTTP(cfg HTTPConfig, opts ...Option) *HTTPFetcher {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   4,
	}

	h := &HTTPFetcher{
		cfg: cfg,
		url: strings.TrimRight(cfg.BaseURL, "/") + cfg.Path,
		client: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   cfg.Timeout,
		},
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// URL is the full address every Fetch requests.
func (h *HTTPFetcher) URL() string {
	return h.url
}

func (h *HTTPFetcher) Fetch(ctx context.Context) (tune.Collection, error) {
	reqID := uuid.NewString()
	log := h.log.With().Str("request_id", reqID).Str("url", h.url).Logger()
	start := time.Now()

	log.Debug().Msg("fetching tunes")

	tunes, status, err := h.fetch(ctx, reqID)
	elapsed := time.Since(start)

	if err != nil {
		log.Debug().
			Err(err).
			Str("kind", tune.Kind(err)).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("fetch rejected")
		return nil, err
	}

	log.Debug().
		Int("status", status).
		Int("count", len(tunes)).
		Dur("elapsed", elapsed).
		Msg("fetch resolved")

	return tunes, nil
}

func (h *HTTPFetcher) fetch(ctx context.Context, reqID string) (tune.Collection, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, 0, &tune.NetworkError{URL: h.url, Err: fmt.Errorf("create request: %w", err)}
	}

	// Configured headers go first so they cannot replace the fixed ones.
	for k, v := range h.cfg.Headers {
		req.Header.Set(k, v)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, 0, &tune.NetworkError{URL: h.url, Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	if !h.cfg.LenientStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))
		return nil, resp.StatusCode, &tune.StatusError{
			URL:        h.url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, h.cfg.MaxBodyBytes+1))
	if err != nil {
		return nil, resp.StatusCode, &tune.NetworkError{URL: h.url, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > h.cfg.MaxBodyBytes {
		return nil, resp.StatusCode, &tune.DecodeError{
			Reason: fmt.Sprintf("body exceeds %d bytes", h.cfg.MaxBodyBytes),
		}
	}

	tunes, err := tune.Decode(body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return tunes, resp.StatusCode, nil
}

// IsTimeout reports whether a network error came from a deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
