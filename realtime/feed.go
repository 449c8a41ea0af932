package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/kbukum/tradekit/config"
	"github.com/kbukum/tradekit/exchange"
	"github.com/kbukum/tradekit/logger"
	"github.com/kbukum/tradekit/resilience"
)

const (
	realtimePath = "/realtime"

	defaultBuffer = 256
	pingInterval  = 20 * time.Second
	pongWait      = 60 * time.Second
	writeWait     = 10 * time.Second
)

// ExpiresFunc produces the expiry timestamp signed into the auth op.
// The default is one minute from now in unix seconds; tests inject a
// fixed value.
type ExpiresFunc func() int64

// Option adjusts a Feed before it connects.
type Option func(*Feed)

// WithLogger replaces the logger derived from the config.
func WithLogger(log *logger.Logger) Option {
	return func(f *Feed) { f.log = log }
}

// WithDialer replaces the websocket dialer.
func WithDialer(d *websocket.Dialer) Option {
	return func(f *Feed) { f.dialer = d }
}

// WithBuffer sets the Messages channel capacity.
func WithBuffer(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.messages = make(chan *Message, n)
		}
	}
}

// WithExpiresFunc replaces the auth expiry source.
func WithExpiresFunc(fn ExpiresFunc) Option {
	return func(f *Feed) {
		if fn != nil {
			f.expires = fn
		}
	}
}

// WithRetryConfig replaces the reconnect backoff policy.
func WithRetryConfig(cfg resilience.RetryConfig) Option {
	return func(f *Feed) { f.retry = cfg }
}

// Feed is one websocket connection to the exchange's realtime API.
type Feed struct {
	cfg     *config.Config
	log     *logger.Logger
	signer  *exchange.Signer
	dialer  *websocket.Dialer
	expires ExpiresFunc
	retry   resilience.RetryConfig

	messages chan *Message

	mu     sync.Mutex
	conn   *websocket.Conn
	topics []string
	err    error

	done      chan struct{}
	closeOnce sync.Once
}

// Connect dials the realtime endpoint, sends the auth op when
// credentials are configured, and starts the read loop. The feed runs
// until ctx is done or Close is called.
func Connect(ctx context.Context, cfg *config.Config, opts ...Option) (*Feed, error) {
	if cfg == nil {
		cfg = config.New()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, exchange.NewConfigError(err.Error())
	}

	f := &Feed{
		cfg:      cfg,
		dialer:   websocket.DefaultDialer,
		expires:  func() int64 { return time.Now().Add(time.Minute).Unix() },
		retry:    reconnectRetryConfig(),
		messages: make(chan *Message, defaultBuffer),
		done:     make(chan struct{}),
	}
	// The realtime API authenticates with the signed key pair only;
	// access tokens are a REST concept.
	if cfg.APIKey != "" && cfg.APISecret != "" {
		f.signer = exchange.NewSigner(cfg.APIKey, cfg.APISecret)
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.log == nil {
		f.log = cfg.NewLogger().WithComponent("realtime")
	}
	f.log = f.log.WithFields(logger.Fields(logger.FieldRequestID, uuid.NewString()))

	conn, err := f.dial(ctx)
	if err != nil {
		return nil, err
	}
	f.conn = conn

	go f.run(ctx)
	return f, nil
}

func reconnectRetryConfig() resilience.RetryConfig {
	return resilience.RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         0.2,
	}
}

// Messages returns the stream of table updates. The channel is closed
// when the feed shuts down; check Err for the cause.
func (f *Feed) Messages() <-chan *Message {
	return f.messages
}

// Err reports why the feed stopped. It is non-nil only when the feed
// gave up reconnecting.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Subscribe requests the given topics, e.g. "trade:XBTUSD". Topics are
// remembered and replayed after a reconnect.
func (f *Feed) Subscribe(topics ...string) error {
	if len(topics) == 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conn == nil {
		return exchange.NewConnectionError(errors.New("feed is closed"))
	}
	f.topics = append(f.topics, topics...)
	return f.writeSubscribe(f.conn, topics)
}

// Close shuts the feed down and closes the Messages channel.
func (f *Feed) Close() error {
	f.closeOnce.Do(func() {
		close(f.done)

		f.mu.Lock()
		defer f.mu.Unlock()
		if f.conn != nil {
			deadline := time.Now().Add(writeWait)
			f.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			f.conn.Close()
		}
	})
	return nil
}

func (f *Feed) url() string {
	scheme := "wss"
	if f.cfg.Scheme == "http" {
		scheme = "ws"
	}
	return scheme + "://" + f.cfg.Host + realtimePath
}

// dial opens a connection and authenticates it when credentials are
// configured.
func (f *Feed) dial(ctx context.Context) (*websocket.Conn, error) {
	url := f.url()
	conn, resp, err := f.dialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return nil, exchange.NewConnectionError(fmt.Errorf("dial %s: %w (HTTP %d)", url, err, resp.StatusCode))
		}
		return nil, exchange.NewConnectionError(fmt.Errorf("dial %s: %w", url, err))
	}

	if f.signer != nil {
		if err := f.authenticate(conn); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

// authenticate sends the signed auth op. The signature covers GET,
// the realtime path, and the expiry timestamp, with an empty body.
func (f *Feed) authenticate(conn *websocket.Conn) error {
	expires := f.expires()
	signature := f.signer.Sign(http.MethodGet, realtimePath, expires, "")
	op := request{Op: "authKeyExpires", Args: []any{f.signer.Key(), expires, signature}}
	if err := conn.WriteJSON(op); err != nil {
		return exchange.NewConnectionError(fmt.Errorf("send auth: %w", err))
	}
	return nil
}

// writeSubscribe sends a subscribe op. Callers hold f.mu.
func (f *Feed) writeSubscribe(conn *websocket.Conn, topics []string) error {
	args := make([]any, len(topics))
	for i, topic := range topics {
		args[i] = topic
	}
	if err := conn.WriteJSON(request{Op: "subscribe", Args: args}); err != nil {
		return exchange.NewConnectionError(fmt.Errorf("send subscribe: %w", err))
	}
	f.log.Debug("subscribe sent", logger.Fields(logger.FieldTopic, strings.Join(topics, ",")))
	return nil
}

// run pumps the connection and reconnects on failure until the feed
// shuts down.
func (f *Feed) run(ctx context.Context) {
	defer close(f.messages)

	for {
		err := f.pump(ctx)
		if err == nil {
			return
		}

		f.log.Warn("feed disconnected", logger.Fields(logger.FieldError, err.Error()))

		if rerr := f.reconnect(ctx); rerr != nil {
			f.mu.Lock()
			f.err = rerr
			f.mu.Unlock()
			f.log.Error("giving up on reconnect", logger.Fields(logger.FieldError, rerr.Error()))
			return
		}
	}
}

// pump reads the current connection until it fails or the feed shuts
// down. A nil return means clean shutdown.
func (f *Feed) pump(ctx context.Context) error {
	f.mu.Lock()
	conn := f.conn
	f.mu.Unlock()

	readErr := make(chan error, 1)
	go f.readLoop(conn, readErr)

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case err := <-readErr:
			select {
			case <-f.done:
				return nil
			default:
			}
			if ctx.Err() != nil {
				return nil
			}
			return err

		case <-ping.C:
			deadline := time.Now().Add(writeWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				conn.Close()
				<-readErr
				return fmt.Errorf("ping: %w", err)
			}

		case <-ctx.Done():
			conn.Close()
			<-readErr
			return nil

		case <-f.done:
			conn.Close()
			<-readErr
			return nil
		}
	}
}

// readLoop reads frames until the connection dies. The pong handler
// pushes the read deadline forward so an idle but healthy connection
// stays open.
func (f *Feed) readLoop(conn *websocket.Conn, readErr chan<- error) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}
		f.dispatch(data)
	}
}

// dispatch routes one frame: table updates go to the Messages channel,
// control frames are logged. A full channel drops the update.
func (f *Feed) dispatch(data []byte) {
	var fr frame
	if err := json.Unmarshal(data, &fr); err != nil {
		f.log.Warn("dropping undecodable frame", logger.Fields(logger.FieldError, err.Error()))
		return
	}

	switch {
	case fr.Table != "":
		msg := &Message{Table: fr.Table, Action: fr.Action, Data: fr.Data}
		select {
		case f.messages <- msg:
		default:
			f.log.Warn("dropped message - channel full", logger.Fields(logger.FieldTopic, fr.Table))
		}
	case fr.Error != "":
		f.log.Error("feed error", logger.Fields(logger.FieldError, fr.Error, logger.FieldStatus, fr.Status))
	case fr.Subscribe != "":
		f.log.Debug("subscription acknowledged", logger.Fields(logger.FieldTopic, fr.Subscribe, "success", fr.Success))
	case fr.Info != "":
		f.log.Debug("welcome received", logger.Fields("info", fr.Info))
	}
}

// reconnect dials with capped exponential backoff, then re-sends the
// auth op and every prior subscription.
func (f *Feed) reconnect(ctx context.Context) error {
	retry := f.retry
	retry.OnRetry = func(attempt int, err error, backoff time.Duration) {
		f.log.Warn("reconnect attempt failed", logger.Fields(
			logger.FieldAttempt, attempt,
			logger.FieldError, err.Error(),
			"backoff_ms", backoff.Milliseconds(),
		))
	}

	return resilience.RetryFunc(ctx, retry, func() error {
		conn, err := f.dial(ctx)
		if err != nil {
			return err
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		f.conn = conn
		if len(f.topics) > 0 {
			return f.writeSubscribe(conn, f.topics)
		}
		return nil
	})
}
