package models

import (
	"time"

	"github.com/kbukum/tradekit/schema"
)

// Position is an open or closed position in one instrument.
type Position struct {
	Account          int64
	Symbol           string
	Currency         string
	Leverage         float64
	CrossMargin      bool
	CurrentQty       int64
	AvgEntryPrice    float64
	MarkPrice        float64
	LiquidationPrice float64
	UnrealisedPnl    int64
	RealisedPnl      int64
	IsOpen           bool
	Timestamp        time.Time
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "Position",
		New:  func() any { return &Position{} },
		Fields: []schema.FieldSpec{
			{Attr: "account", Wire: "account", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Position).Account = v.(int64) }},
			{Attr: "symbol", Wire: "symbol", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Position).Symbol = v.(string) }},
			{Attr: "currency", Wire: "currency", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Position).Currency = v.(string) }},
			{Attr: "leverage", Wire: "leverage", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Position).Leverage = v.(float64) }},
			{Attr: "cross_margin", Wire: "crossMargin", Type: schema.MustParse("Boolean"),
				Set: func(m, v any) { m.(*Position).CrossMargin = v.(bool) }},
			{Attr: "current_qty", Wire: "currentQty", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Position).CurrentQty = v.(int64) }},
			{Attr: "avg_entry_price", Wire: "avgEntryPrice", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Position).AvgEntryPrice = v.(float64) }},
			{Attr: "mark_price", Wire: "markPrice", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Position).MarkPrice = v.(float64) }},
			{Attr: "liquidation_price", Wire: "liquidationPrice", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Position).LiquidationPrice = v.(float64) }},
			{Attr: "unrealised_pnl", Wire: "unrealisedPnl", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Position).UnrealisedPnl = v.(int64) }},
			{Attr: "realised_pnl", Wire: "realisedPnl", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Position).RealisedPnl = v.(int64) }},
			{Attr: "is_open", Wire: "isOpen", Type: schema.MustParse("Boolean"),
				Set: func(m, v any) { m.(*Position).IsOpen = v.(bool) }},
			{Attr: "timestamp", Wire: "timestamp", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*Position).Timestamp = v.(time.Time) }},
		},
	})
}
