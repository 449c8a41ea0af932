package models

import (
	"time"

	"github.com/kbukum/tradekit/schema"
)

// Stats is the rolling 24h exchange summary for one root symbol.
type Stats struct {
	RootSymbol   string
	Currency     string
	Volume24h    int64
	Turnover24h  int64
	OpenInterest int64
	OpenValue    int64
}

// StatsHistory is one day of exchange volume for a root symbol.
type StatsHistory struct {
	Date       time.Time
	RootSymbol string
	Currency   string
	Volume     int64
	Turnover   int64
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "Stats",
		New:  func() any { return &Stats{} },
		Fields: []schema.FieldSpec{
			{Attr: "root_symbol", Wire: "rootSymbol", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Stats).RootSymbol = v.(string) }},
			{Attr: "currency", Wire: "currency", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Stats).Currency = v.(string) }},
			{Attr: "volume_24h", Wire: "volume24h", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Stats).Volume24h = v.(int64) }},
			{Attr: "turnover_24h", Wire: "turnover24h", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Stats).Turnover24h = v.(int64) }},
			{Attr: "open_interest", Wire: "openInterest", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Stats).OpenInterest = v.(int64) }},
			{Attr: "open_value", Wire: "openValue", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Stats).OpenValue = v.(int64) }},
		},
	})

	schema.Register(&schema.ModelSpec{
		Name: "StatsHistory",
		New:  func() any { return &StatsHistory{} },
		Fields: []schema.FieldSpec{
			{Attr: "date", Wire: "date", Type: schema.MustParse("Date"),
				Set: func(m, v any) { m.(*StatsHistory).Date = v.(time.Time) }},
			{Attr: "root_symbol", Wire: "rootSymbol", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*StatsHistory).RootSymbol = v.(string) }},
			{Attr: "currency", Wire: "currency", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*StatsHistory).Currency = v.(string) }},
			{Attr: "volume", Wire: "volume", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*StatsHistory).Volume = v.(int64) }},
			{Attr: "turnover", Wire: "turnover", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*StatsHistory).Turnover = v.(int64) }},
		},
	})
}
