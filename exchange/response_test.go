package exchange

import (
	"net/http"
	"testing"
)

func TestResponse_IsSuccessIsError(t *testing.T) {
	tests := []struct {
		status  int
		success bool
		isErr   bool
	}{
		{200, true, false},
		{204, true, false},
		{299, true, false},
		{301, false, false},
		{400, false, true},
		{404, false, true},
		{500, false, true},
	}

	for _, tt := range tests {
		r := &Response{StatusCode: tt.status}
		if got := r.IsSuccess(); got != tt.success {
			t.Errorf("IsSuccess(%d) = %v, want %v", tt.status, got, tt.success)
		}
		if got := r.IsError(); got != tt.isErr {
			t.Errorf("IsError(%d) = %v, want %v", tt.status, got, tt.isErr)
		}
	}
}

func TestResponse_ContentType(t *testing.T) {
	r := &Response{Header: http.Header{"Content-Type": []string{"application/json; charset=utf-8"}}}
	if got := r.ContentType(); got != "application/json; charset=utf-8" {
		t.Errorf("ContentType() = %q", got)
	}

	empty := &Response{}
	if got := empty.ContentType(); got != "" {
		t.Errorf("ContentType() = %q, want empty", got)
	}
}
