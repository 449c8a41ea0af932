package exchange

import "net/http"

// Response is the envelope for one HTTP exchange: status, headers, and
// the fully buffered body. Header is the standard http.Header, so
// lookups are case-insensitive.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the HTTP status line text, e.g. "200 OK".
	Status string
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// ContentType returns the Content-Type header value.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}
