package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Feed tables with typed row decoders.
const (
	TableTrade = "trade"
	TableQuote = "quote"
)

// Topic scopes a table subscription to one symbol:
//
//	Topic(TableTrade, "XBTUSD") == "trade:XBTUSD"
//
// An empty symbol subscribes to the whole table.
func Topic(table, symbol string) string {
	if symbol == "" {
		return table
	}
	return table + ":" + symbol
}

// request is a client-to-server op frame.
type request struct {
	Op   string `json:"op"`
	Args []any  `json:"args"`
}

// frame is the superset of everything the server sends: the welcome
// banner, subscribe acks, errors, and table updates. A non-empty Table
// marks a data frame.
type frame struct {
	Info      string `json:"info"`
	Success   bool   `json:"success"`
	Subscribe string `json:"subscribe"`
	Error     string `json:"error"`
	Status    int    `json:"status"`

	Table  string          `json:"table"`
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Message is one table update pushed by the exchange.
type Message struct {
	// Table names the feed table, e.g. "trade".
	Table string
	// Action is the update kind: partial, insert, update, or delete.
	Action string
	// Data holds the raw rows.
	Data json.RawMessage
}

// Trade is one executed trade row.
type Trade struct {
	Timestamp     time.Time       `json:"timestamp"`
	Symbol        string          `json:"symbol"`
	Side          string          `json:"side"`
	Size          int64           `json:"size"`
	Price         decimal.Decimal `json:"price"`
	TickDirection string          `json:"tickDirection"`
	TrdMatchID    string          `json:"trdMatchID"`
}

// Quote is one top-of-book row.
type Quote struct {
	Timestamp time.Time       `json:"timestamp"`
	Symbol    string          `json:"symbol"`
	BidPrice  decimal.Decimal `json:"bidPrice"`
	BidSize   int64           `json:"bidSize"`
	AskPrice  decimal.Decimal `json:"askPrice"`
	AskSize   int64           `json:"askSize"`
}

// Trades decodes the rows of a trade message.
func (m *Message) Trades() ([]Trade, error) {
	if m.Table != TableTrade {
		return nil, fmt.Errorf("realtime: message table is %q, not %q", m.Table, TableTrade)
	}
	var trades []Trade
	if err := json.Unmarshal(m.Data, &trades); err != nil {
		return nil, fmt.Errorf("realtime: decode trades: %w", err)
	}
	return trades, nil
}

// Quotes decodes the rows of a quote message.
func (m *Message) Quotes() ([]Quote, error) {
	if m.Table != TableQuote {
		return nil, fmt.Errorf("realtime: message table is %q, not %q", m.Table, TableQuote)
	}
	var quotes []Quote
	if err := json.Unmarshal(m.Data, &quotes); err != nil {
		return nil, fmt.Errorf("realtime: decode quotes: %w", err)
	}
	return quotes, nil
}
