package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/tradekit/exchange"
)

// ListParams are the table-query parameters shared by the collection
// endpoints. Zero values are omitted from the request.
type ListParams struct {
	// Symbol filters to one instrument symbol.
	Symbol string
	// Filter narrows results server-side; it is sent JSON-encoded, e.g.
	// {"open": true}.
	Filter map[string]any
	// Columns restricts which fields the server returns.
	Columns []string
	// Count caps the number of results.
	Count int
	// Start is the result offset for paging.
	Start int
	// Reverse returns newest results first.
	Reverse bool
	// StartTime and EndTime bound results by timestamp.
	StartTime time.Time
	EndTime   time.Time
}

func (p ListParams) toQuery() (map[string]string, error) {
	q := make(map[string]string)
	if p.Symbol != "" {
		q["symbol"] = p.Symbol
	}
	if len(p.Filter) > 0 {
		data, err := json.Marshal(p.Filter)
		if err != nil {
			return nil, exchange.NewValidationError(fmt.Sprintf("encode filter: %v", err))
		}
		q["filter"] = string(data)
	}
	if len(p.Columns) > 0 {
		q["columns"] = strings.Join(p.Columns, ",")
	}
	if p.Count > 0 {
		q["count"] = strconv.Itoa(p.Count)
	}
	if p.Start > 0 {
		q["start"] = strconv.Itoa(p.Start)
	}
	if p.Reverse {
		q["reverse"] = "true"
	}
	if !p.StartTime.IsZero() {
		q["startTime"] = p.StartTime.UTC().Format(time.RFC3339)
	}
	if !p.EndTime.IsZero() {
		q["endTime"] = p.EndTime.UTC().Format(time.RFC3339)
	}
	return q, nil
}

// Form helpers omit zero values; absent fields never reach the wire.

func setString(form map[string]any, key, value string) {
	if value != "" {
		form[key] = value
	}
}

func setInt(form map[string]any, key string, value int) {
	if value != 0 {
		form[key] = value
	}
}

func setFloat(form map[string]any, key string, value float64) {
	if value != 0 {
		form[key] = value
	}
}
