// Package http provides the campusguide HTTP API and an HTTP-based
// campusguide.AssetStore for images hosted on remote servers.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/campusguide"
)

// DefaultFetchTimeout is the default timeout for remote asset requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRetryDelays returns the backoff delays between attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure AssetFetcher implements campusguide.AssetStore at compile time.
var _ campusguide.AssetStore = (*AssetFetcher)(nil)

// AssetFetcher retrieves images from http and https URLs.
// Transport errors and 5xx responses are retried with backoff.
type AssetFetcher struct {
	client  *http.Client
	timeout time.Duration
	delays  []time.Duration
}

// Option configures an AssetFetcher.
type Option func(*AssetFetcher)

// WithTimeout sets the timeout for each request, including reading the body.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *AssetFetcher) {
		f.timeout = d
	}
}

// WithRetryDelays sets the delays between attempts. An empty slice disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *AssetFetcher) {
		f.delays = delays
	}
}

// NewAssetFetcher creates a new AssetFetcher.
func NewAssetFetcher(opts ...Option) *AssetFetcher {
	f := &AssetFetcher{
		timeout: DefaultFetchTimeout,
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// OpenAsset fetches the asset at url. The caller must close the returned body.
func (f *AssetFetcher) OpenAsset(ctx context.Context, url string) (*campusguide.Asset, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		asset, retry, err := f.fetch(ctx, url)
		if err == nil {
			return asset, nil
		}
		lastErr = err

		if !retry || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return nil, lastErr
}

// fetch performs a single request and reports whether a failure is worth retrying.
func (f *AssetFetcher) fetch(ctx context.Context, url string) (*campusguide.Asset, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, campusguide.Errorf(campusguide.EINVALID, "invalid asset URL %q", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		drain(resp.Body)
		return nil, false, campusguide.Errorf(campusguide.ENOTFOUND, "asset %q not found", url)
	case resp.StatusCode >= 500:
		drain(resp.Body)
		return nil, true, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	default:
		drain(resp.Body)
		return nil, false, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &campusguide.Asset{
		ContentType: contentType,
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}, false, nil
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	body.Close()
}
