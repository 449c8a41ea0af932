package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/kbukum/tradekit/config"
	"github.com/kbukum/tradekit/logger"
	"github.com/kbukum/tradekit/schema"
)

// Client executes REST calls against the exchange API. It owns request
// building, signing, transport, and response deserialization. A Client
// is safe for concurrent use.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	log        *logger.Logger
	signer     *Signer
	registry   *schema.Registry

	mu           sync.Mutex
	lastResponse *Response
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithLogger replaces the logger built from the configuration.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithHTTPClient replaces the underlying HTTP client. The caller owns
// its timeout and TLS settings.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRegistry replaces the model registry. The default is the
// process-wide registry models register into.
func WithRegistry(reg *schema.Registry) Option {
	return func(c *Client) {
		c.registry = reg
	}
}

// WithNonceFunc replaces the nonce source used for signing. Useful for
// reproducible signatures in tests.
func WithNonceFunc(fn NonceFunc) Option {
	return func(c *Client) {
		c.signer = c.signer.WithNonceFunc(fn)
	}
}

// NewClient creates a Client from the given configuration. A nil
// configuration starts from defaults. The configuration is validated
// after defaults are applied.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.New()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}

	c := &Client{
		cfg:      cfg,
		log:      cfg.NewLogger().WithComponent("exchange"),
		signer:   NewSigner(cfg.APIKey, cfg.APISecret),
		registry: schema.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		httpClient := &http.Client{Timeout: cfg.Timeout}
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, NewConfigError(fmt.Sprintf("build TLS config: %v", err))
		}
		if tlsCfg != nil {
			transport := http.DefaultTransport.(*http.Transport).Clone()
			transport.TLSClientConfig = tlsCfg
			httpClient.Transport = transport
		}
		c.httpClient = httpClient
	}

	return c, nil
}

// Config returns the client configuration.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// Logger returns the client logger.
func (c *Client) Logger() *logger.Logger {
	return c.log
}

// Call executes one API operation: it builds and signs the request,
// sends it, records the response envelope, and deserializes the body
// into the declared return type. The envelope is returned alongside the
// decoded value, and also on HTTP errors so callers can inspect status
// and headers.
func (c *Client) Call(ctx context.Context, method, path string, p CallParams) (any, *Response, error) {
	req, err := c.buildRequest(ctx, method, path, p)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	resp, err := c.execute(req)
	if resp != nil {
		c.setLastResponse(resp)
	}
	if err != nil {
		return nil, resp, err
	}

	c.log.Debug("request completed", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.URL.Path,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	if !resp.IsSuccess() {
		return nil, resp, ClassifyStatus(resp.StatusCode, resp.Header, resp.Body)
	}

	data, err := c.deserialize(resp, p.ReturnType)
	if err != nil {
		return nil, resp, err
	}
	return data, resp, nil
}

// execute sends the request and reads the full body into a Response
// envelope. Transport failures are classified as timeout or connection
// errors.
func (c *Client) execute(req *http.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, NewTimeoutError(err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

// LastResponse returns the envelope of the most recent completed
// request, or nil before the first one. Each call observes its own
// response only if callers serialize; concurrent calls overwrite in
// completion order.
func (c *Client) LastResponse() *Response {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResponse
}

func (c *Client) setLastResponse(resp *Response) {
	c.mu.Lock()
	c.lastResponse = resp
	c.mu.Unlock()
}
