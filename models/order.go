package models

import (
	"time"

	"github.com/kbukum/tradekit/schema"
)

// Order is a placed order and its execution state.
type Order struct {
	OrderID          string
	ClOrdID          string
	Account          int64
	Symbol           string
	Side             string
	OrderQty         int64
	Price            float64
	StopPx           float64
	OrdType          string
	TimeInForce      string
	ExecInst         string
	OrdStatus        string
	WorkingIndicator bool
	LeavesQty        int64
	CumQty           int64
	AvgPx            float64
	Text             string
	TransactTime     time.Time
	Timestamp        time.Time
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "Order",
		New:  func() any { return &Order{} },
		Fields: []schema.FieldSpec{
			{Attr: "order_id", Wire: "orderID", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).OrderID = v.(string) }},
			{Attr: "cl_ord_id", Wire: "clOrdID", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).ClOrdID = v.(string) }},
			{Attr: "account", Wire: "account", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Order).Account = v.(int64) }},
			{Attr: "symbol", Wire: "symbol", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).Symbol = v.(string) }},
			{Attr: "side", Wire: "side", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).Side = v.(string) }},
			{Attr: "order_qty", Wire: "orderQty", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Order).OrderQty = v.(int64) }},
			{Attr: "price", Wire: "price", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Order).Price = v.(float64) }},
			{Attr: "stop_px", Wire: "stopPx", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Order).StopPx = v.(float64) }},
			{Attr: "ord_type", Wire: "ordType", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).OrdType = v.(string) }},
			{Attr: "time_in_force", Wire: "timeInForce", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).TimeInForce = v.(string) }},
			{Attr: "exec_inst", Wire: "execInst", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).ExecInst = v.(string) }},
			{Attr: "ord_status", Wire: "ordStatus", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).OrdStatus = v.(string) }},
			{Attr: "working_indicator", Wire: "workingIndicator", Type: schema.MustParse("Boolean"),
				Set: func(m, v any) { m.(*Order).WorkingIndicator = v.(bool) }},
			{Attr: "leaves_qty", Wire: "leavesQty", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Order).LeavesQty = v.(int64) }},
			{Attr: "cum_qty", Wire: "cumQty", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Order).CumQty = v.(int64) }},
			{Attr: "avg_px", Wire: "avgPx", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Order).AvgPx = v.(float64) }},
			{Attr: "text", Wire: "text", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Order).Text = v.(string) }},
			{Attr: "transact_time", Wire: "transactTime", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*Order).TransactTime = v.(time.Time) }},
			{Attr: "timestamp", Wire: "timestamp", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*Order).Timestamp = v.(time.Time) }},
		},
	})
}
