package models

import (
	"time"

	"github.com/kbukum/tradekit/schema"
)

// Instrument is a tradeable contract or index.
type Instrument struct {
	Symbol        string
	RootSymbol    string
	State         string
	QuoteCurrency string
	Listing       time.Time
	Expiry        time.Time
	Settle        time.Time
	LotSize       int64
	TickSize      float64
	Multiplier    int64
	Capped        bool
	RiskLimit     int64
	RiskStep      int64
	MakerFee      float64
	TakerFee      float64
	LastPrice     float64
	MarkPrice     float64
	OpenInterest  int64
	Volume24h     int64
	Timestamp     time.Time
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "Instrument",
		New:  func() any { return &Instrument{} },
		Fields: []schema.FieldSpec{
			{Attr: "symbol", Wire: "symbol", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Instrument).Symbol = v.(string) }},
			{Attr: "root_symbol", Wire: "rootSymbol", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Instrument).RootSymbol = v.(string) }},
			{Attr: "state", Wire: "state", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Instrument).State = v.(string) }},
			{Attr: "quote_currency", Wire: "quoteCurrency", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Instrument).QuoteCurrency = v.(string) }},
			{Attr: "listing", Wire: "listing", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*Instrument).Listing = v.(time.Time) }},
			{Attr: "expiry", Wire: "expiry", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*Instrument).Expiry = v.(time.Time) }},
			{Attr: "settle", Wire: "settle", Type: schema.MustParse("Date"),
				Set: func(m, v any) { m.(*Instrument).Settle = v.(time.Time) }},
			{Attr: "lot_size", Wire: "lotSize", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Instrument).LotSize = v.(int64) }},
			{Attr: "tick_size", Wire: "tickSize", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Instrument).TickSize = v.(float64) }},
			{Attr: "multiplier", Wire: "multiplier", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Instrument).Multiplier = v.(int64) }},
			{Attr: "capped", Wire: "capped", Type: schema.MustParse("Boolean"),
				Set: func(m, v any) { m.(*Instrument).Capped = v.(bool) }},
			{Attr: "risk_limit", Wire: "riskLimit", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Instrument).RiskLimit = v.(int64) }},
			{Attr: "risk_step", Wire: "riskStep", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Instrument).RiskStep = v.(int64) }},
			{Attr: "maker_fee", Wire: "makerFee", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Instrument).MakerFee = v.(float64) }},
			{Attr: "taker_fee", Wire: "takerFee", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Instrument).TakerFee = v.(float64) }},
			{Attr: "last_price", Wire: "lastPrice", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Instrument).LastPrice = v.(float64) }},
			{Attr: "mark_price", Wire: "markPrice", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Instrument).MarkPrice = v.(float64) }},
			{Attr: "open_interest", Wire: "openInterest", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Instrument).OpenInterest = v.(int64) }},
			{Attr: "volume_24h", Wire: "volume24h", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Instrument).Volume24h = v.(int64) }},
			{Attr: "timestamp", Wire: "timestamp", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*Instrument).Timestamp = v.(time.Time) }},
		},
	})
}
