package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeAuth indicates an authentication/authorization failure (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates rate limiting (429).
	ErrCodeRateLimit
	// ErrCodeValidation indicates a client-side validation error (400).
	ErrCodeValidation
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
	// ErrCodeContentType indicates a response content type the
	// deserializer cannot handle.
	ErrCodeContentType
	// ErrCodeDecode indicates a response body that does not match the
	// declared return type.
	ErrCodeDecode
	// ErrCodeUnknownModel indicates a return type naming a model that
	// was never registered.
	ErrCodeUnknownModel
	// ErrCodeConfig indicates unusable client configuration, such as an
	// unsupported auth placement.
	ErrCodeConfig
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeServer:
		return "server"
	case ErrCodeContentType:
		return "content_type"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeUnknownModel:
		return "unknown_model"
	case ErrCodeConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is a structured client error with classification. API errors
// carry the response status, headers, and raw body for diagnosis.
type Error struct {
	// StatusCode is the HTTP status code (0 for non-HTTP errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Retryable indicates whether the operation can be retried.
	Retryable bool
	// Header holds the response headers (may be nil).
	Header http.Header
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("exchange: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("exchange: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:      ErrCodeTimeout,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:      ErrCodeConnection,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewValidationError creates a client-side validation error.
func NewValidationError(msg string) *Error {
	return &Error{
		Code:      ErrCodeValidation,
		Message:   msg,
		Retryable: false,
	}
}

// NewContentTypeError creates an unsupported-content-type error.
func NewContentTypeError(contentType string) *Error {
	return &Error{
		Code:      ErrCodeContentType,
		Message:   fmt.Sprintf("cannot deserialize content type %q", contentType),
		Retryable: false,
	}
}

// NewDecodeError creates a decode error for a body/return-type mismatch.
func NewDecodeError(msg string, err error) *Error {
	return &Error{
		Code:      ErrCodeDecode,
		Message:   msg,
		Retryable: false,
		Err:       err,
	}
}

// NewUnknownModelError creates an error for an unregistered model name.
func NewUnknownModelError(name string) *Error {
	return &Error{
		Code:      ErrCodeUnknownModel,
		Message:   fmt.Sprintf("model %q is not registered", name),
		Retryable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(msg string) *Error {
	return &Error{
		Code:      ErrCodeConfig,
		Message:   msg,
		Retryable: false,
	}
}

// ClassifyStatus converts a non-2xx HTTP response into a typed error.
// Returns nil for 2xx status codes.
func ClassifyStatus(statusCode int, header http.Header, body []byte) *Error {
	base := func(code ErrorCode, retryable bool) *Error {
		return &Error{
			StatusCode: statusCode,
			Code:       code,
			Message:    apiErrorMessage(statusCode, body),
			Retryable:  retryable,
			Header:     header,
			Body:       body,
		}
	}

	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == 401 || statusCode == 403:
		return base(ErrCodeAuth, false)
	case statusCode == 404:
		return base(ErrCodeNotFound, false)
	case statusCode == 429:
		return base(ErrCodeRateLimit, true)
	case statusCode >= 400 && statusCode < 500:
		return base(ErrCodeValidation, false)
	case statusCode >= 500:
		return base(ErrCodeServer, true)
	default:
		return base(ErrCodeServer, false)
	}
}

// apiErrorMessage extracts the message from an exchange error body,
// which has the form {"error":{"message":"...","name":"..."}}. Falls
// back to the status code when the body has another shape.
func apiErrorMessage(statusCode int, body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
			Name    string `json:"name"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		if payload.Error.Name != "" {
			return fmt.Sprintf("%s: %s", payload.Error.Name, payload.Error.Message)
		}
		return payload.Error.Message
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeAuth
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotFound
}

// IsRateLimit checks if an error is a rate-limit error.
func IsRateLimit(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRateLimit
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeValidation
}

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeServer
}

// IsDecode checks if an error is a decode error.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}

// IsConfig checks if an error reports client misconfiguration.
func IsConfig(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConfig
}

// IsRetryable checks if an error is retryable. The client itself never
// retries; this feeds resilience.RetryConfig.RetryIf for callers that do.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
