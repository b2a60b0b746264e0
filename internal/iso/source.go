package iso

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/robotomize/denom/internal/httputil"
	"github.com/robotomize/denom/internal/logging"
	"github.com/sethvargo/go-retry"
)

const DefaultURL = "https://www.six-group.com/dam/download/financial-information/data-center/iso-currrency/lists/list_one.xml"

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultRetryNum       = 2
	DefaultRetryDuration  = 2 * time.Second
)

// Source fetches the current ISO 4217 registry
//
//go:generate mockgen -source source.go -destination mock_source.go -package iso
type Source interface {
	FetchRegistry(ctx context.Context) (Registry, error)
}

type Option func(*source)

type Options struct {
	RetryNum       uint64
	RetryDuration  time.Duration
	RequestTimeout time.Duration
}

// WithRetryNum set number of repeated requests when the registry can not be downloaded
func WithRetryNum(n uint64) Option {
	return func(s *source) {
		s.opts.RetryNum = n
	}
}

// WithRetryDuration set the constant backoff between retries
func WithRetryDuration(t time.Duration) Option {
	return func(s *source) {
		s.opts.RetryDuration = t
	}
}

// WithRequestTimeout set a timeout for a single download attempt
func WithRequestTimeout(t time.Duration) Option {
	return func(s *source) {
		s.opts.RequestTimeout = t
	}
}

var _ Source = (*source)(nil)

func NewSource(client *http.Client, u url.URL, opts ...Option) *source {
	s := &source{
		url:    u,
		client: httputil.NewHTTPClient(client),
		opts: Options{
			RetryNum:       DefaultRetryNum,
			RetryDuration:  DefaultRetryDuration,
			RequestTimeout: DefaultRequestTimeout,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type source struct {
	url    url.URL
	client httputil.SourceHTTPClient
	opts   Options
}

func (s *source) FetchRegistry(ctx context.Context) (Registry, error) {
	logger := logging.FromContext(ctx)

	var b []byte

	backoff := retry.WithMaxRetries(s.opts.RetryNum, retry.NewConstant(s.opts.RetryDuration))

	attempt := 0
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
		defer cancel()

		body, err := s.client.Get(ctx, s.url)
		if err != nil {
			logger.Warnw("fetch registry", "url", s.url.String(), "attempt", attempt, "error", err)
			return retry.RetryableError(fmt.Errorf("fetch registry: %w", err))
		}

		b = body

		return nil
	}); err != nil {
		return Registry{}, err
	}

	registry, err := Decode(b)
	if err != nil {
		return Registry{}, fmt.Errorf("decode: %w", err)
	}

	logger.Debugw("registry fetched", "published", registry.Published, "entries", len(registry.Entries))

	return registry, nil
}
