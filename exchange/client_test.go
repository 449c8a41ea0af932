package exchange

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/tradekit/config"
	"github.com/kbukum/tradekit/schema"
)

// newServerClient starts a test server and a client pointed at it.
func newServerClient(t *testing.T, handler http.Handler, mutate func(cfg *config.Config), opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newTestClient(t, func(cfg *config.Config) {
		cfg.Scheme = "http"
		cfg.Host = strings.TrimPrefix(srv.URL, "http://")
		if mutate != nil {
			mutate(cfg)
		}
	}, opts...)
}

func TestNewClient_NilConfigUsesDefaults(t *testing.T) {
	c, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient(nil) error: %v", err)
	}
	if got := c.Config().BaseURL(); got != "https://www.bitmex.com" {
		t.Errorf("BaseURL() = %q, want https://www.bitmex.com", got)
	}
	if c.LastResponse() != nil {
		t.Error("LastResponse() non-nil before first call")
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	cfg := config.New()
	cfg.APIKey = "key-without-secret"

	_, err := NewClient(cfg)
	if err == nil {
		t.Fatal("expected config error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Code != ErrCodeConfig {
		t.Errorf("error = %v, want config code", err)
	}
}

func TestClient_Call_DecodesModelList(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		if r.URL.Path != "/api/v1/instrument" {
			t.Errorf("path = %q, want /api/v1/instrument", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"symbol":"XBTUSD","riskLimit":5},{"symbol":"ETHUSD"}]`)
	})

	c := newServerClient(t, handler, nil, WithRegistry(testRegistry()))

	data, resp, err := c.Call(t.Context(), http.MethodGet, "/instrument", CallParams{
		ReturnType: schema.MustParse("Array<TestInstrument>"),
	})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}

	items := data.([]any)
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if got := items[0].(*testInstrument).Symbol; got != "XBTUSD" {
		t.Errorf("first symbol = %q, want XBTUSD", got)
	}

	last := c.LastResponse()
	if last == nil || last.StatusCode != http.StatusOK {
		t.Errorf("LastResponse() = %+v, want recorded 200", last)
	}
}

func TestClient_Call_SignedRequestReachesServer(t *testing.T) {
	wantSig := "30c8ee2ea111ee61ea91ab5e2db85dc16a218ab4e2ae14d3c472086f59dca359"

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(HeaderAPIKey); got != testAPIKey {
			t.Errorf("api-key = %q, want %q", got, testAPIKey)
		}
		if got := r.Header.Get(HeaderAPINonce); got != "1000" {
			t.Errorf("api-nonce = %q, want 1000", got)
		}
		if got := r.Header.Get(HeaderAPISignature); got != wantSig {
			t.Errorf("api-signature = %s, want %s", got, wantSig)
		}
		if got := r.URL.RawQuery; got != "count=10&symbol=XBTUSD" {
			t.Errorf("RawQuery = %q, want count=10&symbol=XBTUSD", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	})

	c := newServerClient(t, handler, func(cfg *config.Config) {
		cfg.APIKey = testAPIKey
		cfg.APISecret = testAPISecret
	}, WithNonceFunc(fixedNonce(1000)))

	_, _, err := c.Call(t.Context(), http.MethodGet, "/trade", CallParams{
		QueryParams: map[string]string{"symbol": "XBTUSD", "count": "10"},
	})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
}

func TestClient_Call_PostFormSignedOverBody(t *testing.T) {
	wantSig := "28df95522b15e2399947aca784cde56eb424e42eae8d24b5501030b85f16d535"

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != "orderQty=1&side=Buy&symbol=XBTUSD" {
			t.Errorf("body = %q, want sorted form", got)
		}
		if got := r.Header.Get("Content-Type"); got != contentTypeForm {
			t.Errorf("Content-Type = %q, want %q", got, contentTypeForm)
		}
		if got := r.Header.Get(HeaderAPISignature); got != wantSig {
			t.Errorf("api-signature = %s, want %s", got, wantSig)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"symbol":"XBTUSD","riskLimit":0}`)
	})

	c := newServerClient(t, handler, func(cfg *config.Config) {
		cfg.APIKey = testAPIKey
		cfg.APISecret = testAPISecret
	}, WithRegistry(testRegistry()), WithNonceFunc(fixedNonce(1000)))

	data, _, err := c.Call(t.Context(), http.MethodPost, "/order", CallParams{
		FormParams: map[string]any{"symbol": "XBTUSD", "side": "Buy", "orderQty": 1},
		ReturnType: schema.MustParse("TestInstrument"),
	})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if got := data.(*testInstrument).Symbol; got != "XBTUSD" {
		t.Errorf("symbol = %q, want XBTUSD", got)
	}
}

func TestClient_Call_QueryAuthPlacement(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("api-key"); got != testAPIKey {
			t.Errorf("api-key = %q, want %q", got, testAPIKey)
		}
		if got := q.Get("api-nonce"); got != "1000" {
			t.Errorf("api-nonce = %q, want 1000", got)
		}
		if got := q.Get("api-signature"); got == "" {
			t.Error("api-signature missing from query")
		}
		if got := r.Header.Get(HeaderAPISignature); got != "" {
			t.Errorf("api-signature header = %q, want unset", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	})

	c := newServerClient(t, handler, func(cfg *config.Config) {
		cfg.APIKey = testAPIKey
		cfg.APISecret = testAPISecret
		cfg.AuthIn = config.AuthInQuery
	}, WithNonceFunc(fixedNonce(1000)))

	if _, _, err := c.Call(t.Context(), http.MethodGet, "/instrument", CallParams{}); err != nil {
		t.Fatalf("Call() error: %v", err)
	}
}

func TestClient_Call_BearerToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-42" {
			t.Errorf("Authorization = %q, want Bearer tok-42", got)
		}
		if got := r.Header.Get(HeaderAPIKey); got != "" {
			t.Errorf("api-key = %q, want unset with access token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{}`)
	})

	c := newServerClient(t, handler, func(cfg *config.Config) {
		cfg.APIKey = testAPIKey
		cfg.APISecret = testAPISecret
		cfg.AccessToken = "tok-42"
	})

	if _, _, err := c.Call(t.Context(), http.MethodGet, "/user", CallParams{}); err != nil {
		t.Fatalf("Call() error: %v", err)
	}
}

func TestClient_Call_HTTPErrorClassified(t *testing.T) {
	tests := []struct {
		status    int
		check     func(error) bool
		name      string
		retryable bool
	}{
		{http.StatusUnauthorized, IsAuth, "auth", false},
		{http.StatusForbidden, IsAuth, "auth forbidden", false},
		{http.StatusNotFound, IsNotFound, "not found", false},
		{http.StatusTooManyRequests, IsRateLimit, "rate limit", true},
		{http.StatusBadRequest, func(err error) bool {
			var e *Error
			return errors.As(err, &e) && e.Code == ErrCodeValidation
		}, "validation", false},
		{http.StatusServiceUnavailable, IsServerError, "server", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				io.WriteString(w, `{"error":{"message":"it failed","name":"HTTPError"}}`)
			})
			c := newServerClient(t, handler, nil)

			_, resp, err := c.Call(t.Context(), http.MethodGet, "/instrument", CallParams{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("classification check failed for %v", err)
			}
			if got := IsRetryable(err); got != tt.retryable {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.retryable)
			}
			if resp == nil || resp.StatusCode != tt.status {
				t.Errorf("resp = %+v, want status %d", resp, tt.status)
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v is not *Error", err)
			}
			if !strings.Contains(apiErr.Message, "it failed") {
				t.Errorf("Message = %q, want API error message", apiErr.Message)
			}
			if len(apiErr.Body) == 0 {
				t.Error("Body not preserved on error")
			}

			if last := c.LastResponse(); last == nil || last.StatusCode != tt.status {
				t.Errorf("LastResponse() = %+v, want status %d", last, tt.status)
			}
		})
	}
}

func TestClient_Call_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	c := newTestClient(t, func(cfg *config.Config) {
		cfg.Scheme = "http"
		cfg.Host = host
	})

	_, resp, err := c.Call(t.Context(), http.MethodGet, "/instrument", CallParams{})
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !IsConnection(err) {
		t.Errorf("IsConnection() = false for %v", err)
	}
	if !IsRetryable(err) {
		t.Error("connection errors should be retryable")
	}
	if resp != nil {
		t.Errorf("resp = %+v, want nil", resp)
	}
	if c.LastResponse() != nil {
		t.Error("LastResponse() set despite transport failure")
	}
}

func TestClient_Call_Timeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	c := newServerClient(t, handler, func(cfg *config.Config) {
		cfg.Timeout = 30 * time.Millisecond
	})

	_, _, err := c.Call(t.Context(), http.MethodGet, "/instrument", CallParams{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !IsTimeout(err) {
		t.Errorf("IsTimeout() = false for %v", err)
	}
}

func TestClient_Call_ContextCancel(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	c := newServerClient(t, handler, nil)

	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, _, err := c.Call(ctx, http.MethodGet, "/instrument", CallParams{})
	if err == nil {
		t.Fatal("expected error after cancel")
	}
}

func TestClient_Call_EmptyBodyDecodesNil(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	c := newServerClient(t, handler, nil, WithRegistry(testRegistry()))

	data, resp, err := c.Call(t.Context(), http.MethodDelete, "/order", CallParams{
		ReturnType: schema.MustParse("TestInstrument"),
	})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if data != nil {
		t.Errorf("data = %v, want nil for empty body", data)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
}

func TestClient_Call_DecodeErrorStillRecordsResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<html>maintenance</html>")
	})

	c := newServerClient(t, handler, nil, WithRegistry(testRegistry()))

	_, resp, err := c.Call(t.Context(), http.MethodGet, "/instrument", CallParams{
		ReturnType: schema.MustParse("Array<TestInstrument>"),
	})
	if err == nil {
		t.Fatal("expected content type error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Code != ErrCodeContentType {
		t.Errorf("error = %v, want content type code", err)
	}
	if resp == nil {
		t.Fatal("resp = nil, want envelope on decode failure")
	}
	if last := c.LastResponse(); last == nil || last.StatusCode != http.StatusOK {
		t.Errorf("LastResponse() = %+v, want recorded response", last)
	}
}

