package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/tradekit/config"
	"github.com/kbukum/tradekit/logger"
	"github.com/kbukum/tradekit/schema"
)

// Content types the request builder knows how to encode.
const (
	contentTypeJSON      = "application/json"
	contentTypeForm      = "application/x-www-form-urlencoded"
	contentTypeMultipart = "multipart/form-data"
)

// CallParams carries the per-call inputs for Call. Wrappers build a
// fresh value per call; the engine never mutates the caller's maps.
type CallParams struct {
	// HeaderParams override the default request headers.
	HeaderParams map[string]string
	// QueryParams are URL query parameters, percent-encoded in sorted
	// key order.
	QueryParams map[string]string
	// FormParams become the request body for form-urlencoded and
	// multipart content types. Values are stringified; FileParam values
	// upload as multipart file parts.
	FormParams map[string]any
	// Body is the explicit request body for other content types:
	// string and []byte pass through, anything else is JSON-encoded.
	Body any
	// ReturnType declares the response shape. Nil skips deserialization.
	ReturnType *schema.Descriptor
}

// bodyVerbs are the methods that carry a request body.
var bodyVerbs = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// buildRequest assembles the signed *http.Request for one call.
//
// Order matters: the body is encoded first, then headers are merged
// (defaults under caller overrides), and authentication runs last so
// the signature covers the exact bytes going on the wire.
func (c *Client) buildRequest(ctx context.Context, method, path string, p CallParams) (*http.Request, error) {
	method = strings.ToUpper(method)
	requestPath := joinPath(c.cfg.BasePath, path)
	encodedQuery := encodeQuery(p.QueryParams)

	header := c.defaultHeaders(method)
	for k, v := range p.HeaderParams {
		header.Set(k, v)
	}

	var body []byte
	if bodyVerbs[method] {
		var err error
		body, err = encodeBody(header, p)
		if err != nil {
			return nil, err
		}
	}

	if err := c.applyAuth(method, requestPath, &encodedQuery, header, body); err != nil {
		return nil, err
	}

	fullURL := c.cfg.BaseURL() + requestPath
	if encodedQuery != "" {
		fullURL += "?" + encodedQuery
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}
	req.Header = header

	if c.cfg.Debug {
		c.log.Debug("request prepared", logger.Fields(
			logger.FieldMethod, method,
			logger.FieldPath, requestPath,
			"query", encodedQuery,
			"body", string(body),
		))
	}

	return req, nil
}

// defaultHeaders returns the headers every request starts from. Body
// verbs default to form encoding; everything else advertises JSON.
func (c *Client) defaultHeaders(method string) http.Header {
	header := make(http.Header)
	header.Set("Accept", contentTypeJSON)
	header.Set("User-Agent", c.cfg.UserAgent)
	if bodyVerbs[method] {
		header.Set("Content-Type", contentTypeForm)
	} else {
		header.Set("Content-Type", contentTypeJSON)
	}
	return header
}

// applyAuth attaches credentials. An access token short-circuits as a
// bearer header; otherwise the key pair signs the request and the
// values land in headers or the query per configuration.
func (c *Client) applyAuth(method, requestPath string, encodedQuery *string, header http.Header, body []byte) error {
	if c.cfg.AccessToken != "" {
		header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
		return nil
	}
	if c.cfg.APIKey == "" || c.cfg.APISecret == "" {
		return nil
	}

	signPath := requestPath
	if *encodedQuery != "" {
		signPath += "?" + *encodedQuery
	}
	key, nonce, signature := c.signer.SignedValues(method, signPath, string(body))

	switch c.cfg.AuthIn {
	case config.AuthInHeader, "":
		applyAuthHeaders(header, key, nonce, signature)
	case config.AuthInQuery:
		if *encodedQuery != "" {
			*encodedQuery += "&"
		}
		*encodedQuery += authQuery(key, nonce, signature)
	default:
		return NewConfigError(fmt.Sprintf("unsupported auth placement %q", c.cfg.AuthIn))
	}

	if c.cfg.Debug {
		// Deliberately verbose: this trace exists to debug signature
		// mismatches and includes the secret in cleartext.
		c.log.Debug("request signed", logger.Fields(
			"nonce", nonce,
			"api_key", key,
			"api_secret", c.cfg.APISecret,
			"sign_path", signPath,
			"signature", signature,
		))
	}
	return nil
}

// encodeBody renders the request body for a body verb. The effective
// Content-Type picks the encoding; multipart rewrites the header with
// its boundary.
func encodeBody(header http.Header, p CallParams) ([]byte, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(header.Get("Content-Type"), ";", 2)[0]))

	switch {
	case mediaType == contentTypeForm:
		return encodeFormParams(p.FormParams)
	case mediaType == contentTypeMultipart:
		data, contentType, err := encodeMultipart(p.FormParams)
		if err != nil {
			return nil, err
		}
		header.Set("Content-Type", contentType)
		return data, nil
	case p.Body == nil:
		return nil, nil
	default:
		switch v := p.Body.(type) {
		case string:
			return []byte(v), nil
		case []byte:
			return v, nil
		default:
			data, err := json.Marshal(v)
			if err != nil {
				return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
			}
			return data, nil
		}
	}
}

// encodeFormParams renders form params as application/x-www-form-urlencoded.
// url.Values.Encode sorts keys, which keeps signatures deterministic.
func encodeFormParams(form map[string]any) ([]byte, error) {
	if len(form) == 0 {
		return nil, nil
	}
	vals := make(url.Values, len(form))
	for k, v := range form {
		switch v.(type) {
		case FileParam, *FileParam:
			return nil, NewValidationError(fmt.Sprintf("form field %q holds a file; use multipart/form-data", k))
		}
		vals.Set(k, paramToString(v))
	}
	return []byte(vals.Encode()), nil
}

// encodeQuery renders query params percent-encoded in sorted key order.
func encodeQuery(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	vals := make(url.Values, len(query))
	for k, v := range query {
		vals.Set(k, v)
	}
	return vals.Encode()
}

// paramToString renders a parameter value the way the API expects:
// RFC 3339 for times, comma-joined for string lists, plain decimal for
// numbers.
func paramToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case []string:
		return strings.Join(t, ",")
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// joinPath joins the base path and endpoint path with exactly one
// slash between segments and a leading slash.
func joinPath(basePath, path string) string {
	joined := basePath + "/" + path
	for strings.Contains(joined, "//") {
		joined = strings.ReplaceAll(joined, "//", "/")
	}
	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	if joined != "/" {
		joined = strings.TrimSuffix(joined, "/")
	}
	return joined
}
