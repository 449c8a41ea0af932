package models

import "github.com/kbukum/tradekit/schema"

// Commission holds the fee rates for one instrument. The commission
// endpoint returns a map keyed by symbol.
type Commission struct {
	MakerFee      float64
	TakerFee      float64
	SettlementFee float64
	MaxFee        float64
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "Commission",
		New:  func() any { return &Commission{} },
		Fields: []schema.FieldSpec{
			{Attr: "maker_fee", Wire: "makerFee", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Commission).MakerFee = v.(float64) }},
			{Attr: "taker_fee", Wire: "takerFee", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Commission).TakerFee = v.(float64) }},
			{Attr: "settlement_fee", Wire: "settlementFee", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Commission).SettlementFee = v.(float64) }},
			{Attr: "max_fee", Wire: "maxFee", Type: schema.MustParse("Float"),
				Set: func(m, v any) { m.(*Commission).MaxFee = v.(float64) }},
		},
	})
}
