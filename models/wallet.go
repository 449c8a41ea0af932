package models

import (
	"time"

	"github.com/kbukum/tradekit/schema"
)

// Wallet is an account balance summary. Amounts are in the currency's
// smallest unit.
type Wallet struct {
	Account        int64
	Currency       string
	Amount         int64
	Deposited      int64
	Withdrawn      int64
	PendingCredit  int64
	PendingDebit   int64
	ConfirmedDebit int64
	Addr           string
	Timestamp      time.Time
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "Wallet",
		New:  func() any { return &Wallet{} },
		Fields: []schema.FieldSpec{
			{Attr: "account", Wire: "account", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Wallet).Account = v.(int64) }},
			{Attr: "currency", Wire: "currency", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Wallet).Currency = v.(string) }},
			{Attr: "amount", Wire: "amount", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Wallet).Amount = v.(int64) }},
			{Attr: "deposited", Wire: "deposited", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Wallet).Deposited = v.(int64) }},
			{Attr: "withdrawn", Wire: "withdrawn", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Wallet).Withdrawn = v.(int64) }},
			{Attr: "pending_credit", Wire: "pendingCredit", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Wallet).PendingCredit = v.(int64) }},
			{Attr: "pending_debit", Wire: "pendingDebit", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Wallet).PendingDebit = v.(int64) }},
			{Attr: "confirmed_debit", Wire: "confirmedDebit", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*Wallet).ConfirmedDebit = v.(int64) }},
			{Attr: "addr", Wire: "addr", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*Wallet).Addr = v.(string) }},
			{Attr: "timestamp", Wire: "timestamp", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*Wallet).Timestamp = v.(time.Time) }},
		},
	})
}
