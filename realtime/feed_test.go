package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kbukum/tradekit/config"
	"github.com/kbukum/tradekit/exchange"
	"github.com/kbukum/tradekit/logger"
	"github.com/kbukum/tradekit/resilience"
)

const (
	testKey    = "LAqUlngMIQkIUjXMUreyu3qn"
	testSecret = "chNOOS4KvNXR_Xq4k4c9qsfoKWvnDecLATCRlcBwyKDYnWgO"
)

// newFeedServer upgrades each request and hands the connection to
// handler. handler runs once per connection.
func newFeedServer(t *testing.T, handler func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/realtime" {
			t.Errorf("path = %s, want /realtime", r.URL.Path)
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		handler(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func connectFeed(t *testing.T, srv *httptest.Server, mutate func(*config.Config), opts ...Option) *Feed {
	t.Helper()

	cfg := config.New()
	cfg.Scheme = "http"
	cfg.Host = strings.TrimPrefix(srv.URL, "http://")
	if mutate != nil {
		mutate(cfg)
	}

	opts = append([]Option{WithLogger(logger.NewNop())}, opts...)
	feed, err := Connect(t.Context(), cfg, opts...)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { feed.Close() })
	return feed
}

// opFrame is the decoded shape of a client op for server-side asserts.
type opFrame struct {
	Op   string `json:"op"`
	Args []any  `json:"args"`
}

func receive(t *testing.T, feed *Feed) *Message {
	t.Helper()
	select {
	case msg, ok := <-feed.Messages():
		if !ok {
			t.Fatal("Messages closed before a message arrived")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
	}
	return nil
}

// holdOpen reads until the peer goes away so the server side does not
// close the connection under the feed.
func holdOpen(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func TestConnectAndReceive(t *testing.T) {
	srv := newFeedServer(t, func(conn *websocket.Conn) {
		err := conn.WriteJSON(map[string]any{
			"table":  "trade",
			"action": "insert",
			"data": []map[string]any{{
				"symbol": "XBTUSD",
				"side":   "Buy",
				"size":   100,
				"price":  43000.5,
			}},
		})
		if err != nil {
			t.Errorf("write data frame: %v", err)
		}
		holdOpen(conn)
	})

	feed := connectFeed(t, srv, nil)

	msg := receive(t, feed)
	if msg.Table != TableTrade {
		t.Errorf("Table = %q, want trade", msg.Table)
	}
	if msg.Action != "insert" {
		t.Errorf("Action = %q, want insert", msg.Action)
	}

	trades, err := msg.Trades()
	if err != nil {
		t.Fatalf("Trades() error = %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("len(trades) = %d, want 1", len(trades))
	}
	if trades[0].Symbol != "XBTUSD" || trades[0].Size != 100 {
		t.Errorf("trade = %+v, want XBTUSD size 100", trades[0])
	}
	if want := "43000.5"; trades[0].Price.String() != want {
		t.Errorf("Price = %s, want %s", trades[0].Price, want)
	}
}

func TestConnectSendsSignedAuthOp(t *testing.T) {
	const wantSignature = "0cebd3228a8cb1f616d026a3b897e5daf39463f5f8c279757a6200eac08766e6"

	got := make(chan opFrame, 1)
	srv := newFeedServer(t, func(conn *websocket.Conn) {
		var op opFrame
		if err := conn.ReadJSON(&op); err != nil {
			t.Errorf("read auth op: %v", err)
			return
		}
		got <- op
		holdOpen(conn)
	})

	connectFeed(t, srv, func(cfg *config.Config) {
		cfg.APIKey = testKey
		cfg.APISecret = testSecret
	}, WithExpiresFunc(func() int64 { return 1000 }))

	select {
	case op := <-got:
		if op.Op != "authKeyExpires" {
			t.Errorf("op = %q, want authKeyExpires", op.Op)
		}
		if len(op.Args) != 3 {
			t.Fatalf("len(args) = %d, want 3", len(op.Args))
		}
		if op.Args[0] != testKey {
			t.Errorf("args[0] = %v, want %q", op.Args[0], testKey)
		}
		if expires, _ := op.Args[1].(float64); expires != 1000 {
			t.Errorf("args[1] = %v, want 1000", op.Args[1])
		}
		if op.Args[2] != wantSignature {
			t.Errorf("args[2] = %v, want %q", op.Args[2], wantSignature)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the auth op")
	}
}

func TestSubscribeSendsOpAndSkipsAuthWhenAnonymous(t *testing.T) {
	got := make(chan opFrame, 1)
	srv := newFeedServer(t, func(conn *websocket.Conn) {
		var op opFrame
		if err := conn.ReadJSON(&op); err != nil {
			t.Errorf("read op: %v", err)
			return
		}
		got <- op
		holdOpen(conn)
	})

	feed := connectFeed(t, srv, nil)
	if err := feed.Subscribe(Topic(TableTrade, "XBTUSD"), Topic(TableQuote, "XBTUSD")); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	select {
	case op := <-got:
		if op.Op != "subscribe" {
			t.Errorf("first op = %q, want subscribe", op.Op)
		}
		if len(op.Args) != 2 || op.Args[0] != "trade:XBTUSD" || op.Args[1] != "quote:XBTUSD" {
			t.Errorf("args = %v, want [trade:XBTUSD quote:XBTUSD]", op.Args)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the subscribe op")
	}
}

func TestReconnectReplaysSubscriptions(t *testing.T) {
	var conns atomic.Int32
	ops := make(chan opFrame, 2)

	srv := newFeedServer(t, func(conn *websocket.Conn) {
		n := conns.Add(1)

		var op opFrame
		if err := conn.ReadJSON(&op); err != nil {
			t.Errorf("read op on conn %d: %v", n, err)
			return
		}
		ops <- op

		if n == 1 {
			// Drop the first connection to force a reconnect.
			conn.Close()
			return
		}

		err := conn.WriteJSON(map[string]any{
			"table":  "trade",
			"action": "insert",
			"data":   []map[string]any{{"symbol": "XBTUSD", "size": 1, "price": 100}},
		})
		if err != nil {
			t.Errorf("write data frame: %v", err)
		}
		holdOpen(conn)
	})

	feed := connectFeed(t, srv, nil, WithRetryConfig(resilience.RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     100 * time.Millisecond,
		BackoffFactor:  2.0,
	}))
	if err := feed.Subscribe("trade:XBTUSD"); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	msg := receive(t, feed)
	if msg.Table != TableTrade {
		t.Errorf("Table = %q, want trade", msg.Table)
	}
	if got := conns.Load(); got != 2 {
		t.Errorf("connections = %d, want 2", got)
	}

	for i := 0; i < 2; i++ {
		select {
		case op := <-ops:
			if op.Op != "subscribe" {
				t.Errorf("op %d = %q, want subscribe", i, op.Op)
			}
			if len(op.Args) != 1 || op.Args[0] != "trade:XBTUSD" {
				t.Errorf("op %d args = %v, want [trade:XBTUSD]", i, op.Args)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for subscribe op %d", i)
		}
	}
}

func TestCloseClosesMessages(t *testing.T) {
	srv := newFeedServer(t, func(conn *websocket.Conn) {
		holdOpen(conn)
	})

	feed := connectFeed(t, srv, nil)
	if err := feed.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-feed.Messages():
			if !ok {
				if err := feed.Err(); err != nil {
					t.Errorf("Err() = %v, want nil after clean close", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("Messages not closed after Close")
		}
	}
}

func TestConnectRejectsNonWebsocketServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := config.New()
	cfg.Scheme = "http"
	cfg.Host = strings.TrimPrefix(srv.URL, "http://")

	_, err := Connect(t.Context(), cfg, WithLogger(logger.NewNop()))
	if !exchange.IsConnection(err) {
		t.Fatalf("Connect() error = %v, want connection error", err)
	}
}

func TestConnectRejectsInvalidConfig(t *testing.T) {
	cfg := config.New()
	cfg.APIKey = "key-without-secret"

	_, err := Connect(t.Context(), cfg, WithLogger(logger.NewNop()))
	if !exchange.IsConfig(err) {
		t.Fatalf("Connect() error = %v, want config error", err)
	}
}

func TestFeedURL(t *testing.T) {
	tests := []struct {
		scheme string
		want   string
	}{
		{"https", "wss://www.bitmex.com/realtime"},
		{"http", "ws://www.bitmex.com/realtime"},
	}

	for _, tt := range tests {
		cfg := config.New()
		cfg.Scheme = tt.scheme
		cfg.ApplyDefaults()
		f := &Feed{cfg: cfg}
		if got := f.url(); got != tt.want {
			t.Errorf("url() with scheme %s = %q, want %q", tt.scheme, got, tt.want)
		}
	}
}
