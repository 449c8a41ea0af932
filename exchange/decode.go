package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/tradekit/schema"
)

// deserialize turns a response body into the value described by d.
// A nil descriptor or empty body yields nil. File descriptors stream
// the body to disk instead of decoding it.
func (c *Client) deserialize(resp *Response, d *schema.Descriptor) (any, error) {
	if d == nil {
		return nil, nil
	}
	if d.Kind == schema.KindFile {
		return c.saveDownload(resp)
	}
	if len(resp.Body) == 0 {
		return nil, nil
	}
	if err := requireJSON(resp.ContentType()); err != nil {
		return nil, err
	}

	var data any
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		switch d.Kind {
		case schema.KindString, schema.KindDate, schema.KindDateTime:
			// Plain-text bodies still satisfy string and time shapes.
			data = string(resp.Body)
		default:
			return nil, NewDecodeError(fmt.Sprintf("parse response body: %v", err), err)
		}
	}

	out, err := convertValue(c.registry, data, d)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, NewDecodeError(err.Error(), err)
	}
	return out, nil
}

// requireJSON rejects response content types the decoder cannot parse.
// An absent content type is assumed to be JSON.
func requireJSON(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return NewContentTypeError(contentType)
	}
	if mediaType != contentTypeJSON && !strings.HasSuffix(mediaType, "+json") {
		return NewContentTypeError(contentType)
	}
	return nil
}

// convertValue maps decoded JSON onto the shape described by d.
// JSON null converts to nil for every shape.
func convertValue(reg *schema.Registry, v any, d *schema.Descriptor) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch d.Kind {
	case schema.KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return fmt.Sprintf("%v", v), nil

	case schema.KindInteger:
		return convertInteger(v)

	case schema.KindFloat:
		return convertFloat(v)

	case schema.KindBool:
		b, _ := v.(bool)
		return b, nil

	case schema.KindDate:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("cannot convert %T to Date", v)
		}
		return parseDate(s)

	case schema.KindDateTime:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("cannot convert %T to DateTime", v)
		}
		return parseDateTime(s)

	case schema.KindObject:
		return v, nil

	case schema.KindFile:
		return nil, fmt.Errorf("File is only supported as the response root")

	case schema.KindArray:
		items, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("cannot convert %T to %s", v, d)
		}
		out := make([]any, len(items))
		for i, item := range items {
			cv, err := convertValue(reg, item, d.Elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = cv
		}
		return out, nil

	case schema.KindMap:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot convert %T to %s", v, d)
		}
		out := make(map[string]any, len(obj))
		for k, item := range obj {
			cv, err := convertValue(reg, item, d.Elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = cv
		}
		return out, nil

	case schema.KindModel:
		return convertModel(reg, v, d.Name)

	default:
		return nil, fmt.Errorf("unsupported descriptor %s", d)
	}
}

// convertModel populates a registered model from a JSON object.
// Fields that are absent or falsy in the payload keep their zero
// value; empty arrays and objects are assigned like any other value.
func convertModel(reg *schema.Registry, v any, name string) (any, error) {
	spec, ok := reg.Lookup(name)
	if !ok {
		return nil, NewUnknownModelError(name)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cannot convert %T to model %s", v, name)
	}

	model := spec.New()
	for _, field := range spec.Fields {
		raw, present := obj[field.Wire]
		if !present || isFalsy(raw) {
			continue
		}
		cv, err := convertValue(reg, raw, field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", name, field.Attr, err)
		}
		field.Set(model, cv)
	}
	return model, nil
}

func convertInteger(v any) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert %q to Integer", t)
	default:
		return 0, fmt.Errorf("cannot convert %T to Integer", v)
	}
}

func convertFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to Float", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to Float", v)
	}
}

// isFalsy reports whether a decoded JSON value is skipped during model
// population: null, false, numeric zero, and the empty string. Empty
// arrays and objects are not falsy.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	default:
		return false
	}
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as DateTime", s)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := parseDateTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as Date", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}
