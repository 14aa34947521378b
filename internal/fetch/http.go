package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent string
	Timeout   time.Duration
	// MaxBytes caps the body size; larger bodies fail the retrieval.
	MaxBytes int64
	// RequestsPerSecond throttles retrievals. Zero disables throttling.
	RequestsPerSecond float64
}

// HTTPFetcher implements Fetcher with a single GET per call. It never retries.
type HTTPFetcher struct {
	client  *http.Client
	opts    HTTPOptions
	limiter *rate.Limiter
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "waymap/1.0"
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = 32 << 20
	}
	lim := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerSecond > 0 {
		lim = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		limiter: lim,
	}
}

// Fetch GETs rawURL and returns the body. Any status outside 2xx is
// reported as *StatusError.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "rate limiter wait")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		zap.L().Warn("http request failed", zap.String("url", rawURL), zap.Error(err))
		return nil, eris.Wrap(err, "http fetch")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Status: http.StatusText(resp.StatusCode),
			URL:    rawURL,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBytes+1))
	if err != nil {
		return nil, eris.Wrap(err, "read body")
	}
	if int64(len(body)) > f.opts.MaxBytes {
		return nil, eris.Errorf("http fetch: body exceeds %d bytes", f.opts.MaxBytes)
	}
	zap.L().Debug("http fetch done",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return body, nil
}
