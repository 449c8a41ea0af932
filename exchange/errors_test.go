package exchange

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeAuth, "auth"},
		{ErrCodeNotFound, "not_found"},
		{ErrCodeRateLimit, "rate_limit"},
		{ErrCodeValidation, "validation"},
		{ErrCodeServer, "server"},
		{ErrCodeContentType, "content_type"},
		{ErrCodeDecode, "decode"},
		{ErrCodeUnknownModel, "unknown_model"},
		{ErrCodeConfig, "config"},
		{ErrorCode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	withStatus := &Error{StatusCode: 404, Code: ErrCodeNotFound, Message: "Not Found"}
	if got := withStatus.Error(); got != "exchange: not_found (HTTP 404): Not Found" {
		t.Errorf("Error() = %q", got)
	}

	noStatus := &Error{Code: ErrCodeDecode, Message: "bad shape"}
	if got := noStatus.Error(); got != "exchange: decode: bad shape" {
		t.Errorf("Error() = %q", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewDecodeError("decode failed", fmt.Errorf("wrapping: %w", inner))

	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantCode  ErrorCode
		retryable bool
	}{
		{401, ErrCodeAuth, false},
		{403, ErrCodeAuth, false},
		{404, ErrCodeNotFound, false},
		{429, ErrCodeRateLimit, true},
		{400, ErrCodeValidation, false},
		{418, ErrCodeValidation, false},
		{500, ErrCodeServer, true},
		{503, ErrCodeServer, true},
	}

	for _, tt := range tests {
		err := ClassifyStatus(tt.status, nil, nil)
		if err == nil {
			t.Fatalf("ClassifyStatus(%d) = nil", tt.status)
		}
		if err.Code != tt.wantCode {
			t.Errorf("ClassifyStatus(%d).Code = %s, want %s", tt.status, err.Code, tt.wantCode)
		}
		if err.Retryable != tt.retryable {
			t.Errorf("ClassifyStatus(%d).Retryable = %v, want %v", tt.status, err.Retryable, tt.retryable)
		}
		if err.StatusCode != tt.status {
			t.Errorf("ClassifyStatus(%d).StatusCode = %d", tt.status, err.StatusCode)
		}
	}

	for _, status := range []int{200, 201, 204, 299} {
		if err := ClassifyStatus(status, nil, nil); err != nil {
			t.Errorf("ClassifyStatus(%d) = %v, want nil", status, err)
		}
	}
}

func TestClassifyStatus_PreservesHeaderAndBody(t *testing.T) {
	header := http.Header{"Retry-After": []string{"30"}}
	body := []byte(`{"error":{"message":"Rate limit exceeded","name":"RateLimitError"}}`)

	err := ClassifyStatus(429, header, body)
	if err.Header.Get("Retry-After") != "30" {
		t.Errorf("Retry-After = %q, want 30", err.Header.Get("Retry-After"))
	}
	if string(err.Body) != string(body) {
		t.Errorf("Body = %q, want original body", err.Body)
	}
	if want := "RateLimitError: Rate limit exceeded"; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"name and message", `{"error":{"message":"Invalid symbol","name":"ValidationError"}}`, "ValidationError: Invalid symbol"},
		{"message only", `{"error":{"message":"Invalid symbol"}}`, "Invalid symbol"},
		{"empty error object", `{"error":{}}`, "HTTP 400"},
		{"plain body", `service unavailable`, "HTTP 400"},
		{"empty body", ``, "HTTP 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apiErrorMessage(400, []byte(tt.body)); got != tt.want {
				t.Errorf("apiErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsHelpers_MatchWrappedErrors(t *testing.T) {
	base := ClassifyStatus(429, nil, nil)
	wrapped := fmt.Errorf("list trades: %w", base)

	if !IsRateLimit(wrapped) {
		t.Error("IsRateLimit() = false for wrapped error")
	}
	if !IsRetryable(wrapped) {
		t.Error("IsRetryable() = false for wrapped error")
	}
	if IsAuth(wrapped) {
		t.Error("IsAuth() = true for rate limit error")
	}
	if IsRateLimit(errors.New("plain")) {
		t.Error("IsRateLimit() = true for plain error")
	}
}

func TestConstructors(t *testing.T) {
	if err := NewTimeoutError(errors.New("deadline")); !err.Retryable || err.Code != ErrCodeTimeout {
		t.Errorf("NewTimeoutError() = %+v", err)
	}
	if err := NewConnectionError(errors.New("refused")); !err.Retryable || err.Code != ErrCodeConnection {
		t.Errorf("NewConnectionError() = %+v", err)
	}
	if err := NewValidationError("missing symbol"); err.Retryable || err.Code != ErrCodeValidation {
		t.Errorf("NewValidationError() = %+v", err)
	}
	if err := NewUnknownModelError("Margin"); !strings.Contains(err.Message, "Margin") {
		t.Errorf("NewUnknownModelError() message = %q", err.Message)
	}
	if err := NewContentTypeError("text/html"); !strings.Contains(err.Message, "text/html") {
		t.Errorf("NewContentTypeError() message = %q", err.Message)
	}
}
