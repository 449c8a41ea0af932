package models

import (
	"time"

	"github.com/kbukum/tradekit/schema"
)

// Trade is one public execution.
type Trade struct {
	Timestamp       time.Time
	Symbol          string
	Side            string
	Size            int64
	Price           float64
	TickDirection   string
	TrdMatchID      string
	GrossValue      int64
	HomeNotional    float64
	ForeignNotional float64
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "Trade",
		New:  func() any { return &Trade{} },
		Fields: []schema.FieldSpec{
			{Attr: "timestamp", Wire: "timestamp", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*Trade).Timestamp = v.(time.Time) }},
			{Attr: "symbol", Wire: "symbol", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Trade).Symbol = v.(string) }},
			{Attr: "side", Wire: "side", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Trade).Side = v.(string) }},
			{Attr: "size", Wire: "size", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Trade).Size = v.(int64) }},
			{Attr: "price", Wire: "price", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Trade).Price = v.(float64) }},
			{Attr: "tick_direction", Wire: "tickDirection", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Trade).TickDirection = v.(string) }},
			{Attr: "trd_match_id", Wire: "trdMatchID", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Trade).TrdMatchID = v.(string) }},
			{Attr: "gross_value", Wire: "grossValue", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Trade).GrossValue = v.(int64) }},
			{Attr: "home_notional", Wire: "homeNotional", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Trade).HomeNotional = v.(float64) }},
			{Attr: "foreign_notional", Wire: "foreignNotional", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Trade).ForeignNotional = v.(float64) }},
		},
	})
}
