// Package prelude is a Go client for the Prelude communications API:
// phone verification, transactional messaging, lookup, watch fraud
// signals and webhook ingestion.
package prelude

import (
	"errors"
	"net/http"

	"github.com/AndreaAlhena/prelude-sdk/config"
	"github.com/AndreaAlhena/prelude-sdk/lookup"
	"github.com/AndreaAlhena/prelude-sdk/transactional"
	"github.com/AndreaAlhena/prelude-sdk/transport"
	"github.com/AndreaAlhena/prelude-sdk/verify"
	"github.com/AndreaAlhena/prelude-sdk/watch"
	"github.com/AndreaAlhena/prelude-sdk/webhook"
)

var ErrMissingAPIKey = errors.New("API key is required")

// Option overrides a client default.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	timeoutS   int
	httpClient *http.Client
}

func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.baseURL = baseURL }
}

func WithTimeoutSeconds(seconds int) Option {
	return func(o *clientOptions) { o.timeoutS = seconds }
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to add
// custom transports or proxies. The client's own timeout applies.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = httpClient }
}

// Client is the entry point to the SDK. All services share one
// transport; a Client is safe for concurrent use.
type Client struct {
	cfg config.Config

	verification  *verify.Service
	transactional *transactional.Service
	lookup        *lookup.Service
	watch         *watch.Service
	webhook       *webhook.Service
}

// New builds a Client for the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := config.Default(apiKey)
	return newClient(cfg, opts...), nil
}

// NewFromEnv builds a Client from PRELUDE_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return newClient(*cfg, opts...), nil
}

func newClient(cfg config.Config, opts ...Option) *Client {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.timeoutS > 0 {
		cfg.TimeoutS = o.timeoutS
	}

	t := transport.New(cfg, o.httpClient)
	return &Client{
		cfg:           cfg,
		verification:  verify.NewService(t),
		transactional: transactional.NewService(t),
		lookup:        lookup.NewService(t),
		watch:         watch.NewService(t),
		webhook:       webhook.NewService(),
	}
}

func (c *Client) Config() config.Config {
	return c.cfg
}

func (c *Client) Verification() *verify.Service {
	return c.verification
}

func (c *Client) Transactional() *transactional.Service {
	return c.transactional
}

func (c *Client) Lookup() *lookup.Service {
	return c.lookup
}

func (c *Client) Watch() *watch.Service {
	return c.watch
}

func (c *Client) Webhook() *webhook.Service {
	return c.webhook
}
