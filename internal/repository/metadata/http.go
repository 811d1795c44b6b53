package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oshokin/lync-update-info/internal/domain/feed"
)

// maxDocumentBytes caps the accepted feed size.
const maxDocumentBytes = 16 << 20

var (
	errBadHTTPStatus    = errors.New("unexpected http status")
	errDocumentTooLarge = errors.New("document exceeds size limit")
)

// Fetcher downloads a document.
type Fetcher interface {
	Download(ctx context.Context, url string, header http.Header) ([]byte, error)
}

// HTTPFetcher downloads documents over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithHTTPClient replaces the underlying client, e.g. for tests or proxies.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(f *HTTPFetcher) {
		if timeout > 0 {
			client := *f.client
			client.Timeout = timeout
			f.client = &client
		}
	}
}

// NewHTTPFetcher returns a fetcher using a fresh http.Client.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client: &http.Client{},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Download GETs url with header and returns the body.
// Every failure is reported as a *feed.TransportError.
func (f *HTTPFetcher) Download(ctx context.Context, url string, header http.Header) ([]byte, error) {
	data, err := f.download(ctx, url, header)
	if err != nil {
		return nil, &feed.TransportError{URL: url, Err: err}
	}

	return data, nil
}

func (f *HTTPFetcher) download(ctx context.Context, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	response, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w", response.Status, errBadHTTPStatus)
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if len(data) > maxDocumentBytes {
		return nil, errDocumentTooLarge
	}

	return data, nil
}
