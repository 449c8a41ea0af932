package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/kbukum/tradekit/exchange"
	"github.com/kbukum/tradekit/models"
	"github.com/kbukum/tradekit/schema"
	"github.com/kbukum/tradekit/validation"
)

var (
	typeOrder     = schema.MustParse("Order")
	typeOrderList = schema.MustParse("Array<Order>")
)

// Order sides accepted by Create.
const (
	SideBuy  = "Buy"
	SideSell = "Sell"
)

// Order types accepted by Create.
const (
	OrdTypeMarket    = "Market"
	OrdTypeLimit     = "Limit"
	OrdTypeStop      = "Stop"
	OrdTypeStopLimit = "StopLimit"
)

// Time-in-force values accepted by Create.
const (
	TimeInForceGoodTillCancel    = "GoodTillCancel"
	TimeInForceImmediateOrCancel = "ImmediateOrCancel"
	TimeInForceFillOrKill        = "FillOrKill"
)

// OrderService places, amends, and cancels orders.
type OrderService struct {
	client *exchange.Client
}

// List returns orders matching the query. By default the exchange
// returns open and closed orders for the authenticated account.
func (s *OrderService) List(ctx context.Context, params ListParams) ([]*models.Order, error) {
	query, err := params.toQuery()
	if err != nil {
		return nil, err
	}
	data, _, err := s.client.Call(ctx, http.MethodGet, "/order", exchange.CallParams{
		QueryParams: query,
		ReturnType:  typeOrderList,
	})
	if err != nil {
		return nil, err
	}
	return schema.Slice[*models.Order](data), nil
}

// CreateOrderParams describes a new order. Zero-valued fields are
// omitted so the exchange applies its own defaults, e.g. leaving Price
// unset on a Market order.
type CreateOrderParams struct {
	Symbol      string
	Side        string
	OrderQty    int
	Price       float64
	StopPx      float64
	OrdType     string
	ClOrdID     string
	TimeInForce string
	ExecInst    string
	Text        string
}

func (p CreateOrderParams) validate() error {
	return validation.New().
		Required("symbol", p.Symbol).
		OneOf("side", p.Side, []string{SideBuy, SideSell}).
		OneOf("ordType", p.OrdType, []string{OrdTypeMarket, OrdTypeLimit, OrdTypeStop, OrdTypeStopLimit}).
		OneOf("timeInForce", p.TimeInForce, []string{TimeInForceGoodTillCancel, TimeInForceImmediateOrCancel, TimeInForceFillOrKill}).
		Min("orderQty", p.OrderQty, 0).
		Validate()
}

func (p CreateOrderParams) form() map[string]any {
	form := make(map[string]any)
	setString(form, "symbol", p.Symbol)
	setString(form, "side", p.Side)
	setInt(form, "orderQty", p.OrderQty)
	setFloat(form, "price", p.Price)
	setFloat(form, "stopPx", p.StopPx)
	setString(form, "ordType", p.OrdType)
	setString(form, "clOrdID", p.ClOrdID)
	setString(form, "timeInForce", p.TimeInForce)
	setString(form, "execInst", p.ExecInst)
	setString(form, "text", p.Text)
	return form
}

// Create places a new order and returns it as accepted by the exchange.
func (s *OrderService) Create(ctx context.Context, params CreateOrderParams) (*models.Order, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	data, _, err := s.client.Call(ctx, http.MethodPost, "/order", exchange.CallParams{
		FormParams: params.form(),
		ReturnType: typeOrder,
	})
	if err != nil {
		return nil, err
	}
	order, _ := data.(*models.Order)
	return order, nil
}

// AmendOrderParams identifies an open order by OrderID or OrigClOrdID
// and carries the fields to change.
type AmendOrderParams struct {
	OrderID     string
	OrigClOrdID string
	ClOrdID     string
	OrderQty    int
	LeavesQty   int
	Price       float64
	StopPx      float64
	Text        string
}

func (p AmendOrderParams) validate() error {
	return validation.New().
		Custom(p.OrderID != "" || p.OrigClOrdID != "", "orderID", "either orderID or origClOrdID is required").
		Validate()
}

func (p AmendOrderParams) form() map[string]any {
	form := make(map[string]any)
	setString(form, "orderID", p.OrderID)
	setString(form, "origClOrdID", p.OrigClOrdID)
	setString(form, "clOrdID", p.ClOrdID)
	setInt(form, "orderQty", p.OrderQty)
	setInt(form, "leavesQty", p.LeavesQty)
	setFloat(form, "price", p.Price)
	setFloat(form, "stopPx", p.StopPx)
	setString(form, "text", p.Text)
	return form
}

// Amend changes the quantity or price of an open order.
func (s *OrderService) Amend(ctx context.Context, params AmendOrderParams) (*models.Order, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	data, _, err := s.client.Call(ctx, http.MethodPut, "/order", exchange.CallParams{
		FormParams: params.form(),
		ReturnType: typeOrder,
	})
	if err != nil {
		return nil, err
	}
	order, _ := data.(*models.Order)
	return order, nil
}

// CancelOrderParams identifies orders to cancel by exchange or client
// order id. Multiple ids cancel in one request.
type CancelOrderParams struct {
	OrderIDs []string
	ClOrdIDs []string
	Text     string
}

func (p CancelOrderParams) validate() error {
	return validation.New().
		Custom(len(p.OrderIDs) > 0 || len(p.ClOrdIDs) > 0, "orderID", "either orderID or clOrdID is required").
		Validate()
}

func (p CancelOrderParams) form() map[string]any {
	form := make(map[string]any)
	setString(form, "orderID", strings.Join(p.OrderIDs, ","))
	setString(form, "clOrdID", strings.Join(p.ClOrdIDs, ","))
	setString(form, "text", p.Text)
	return form
}

// Cancel cancels the identified orders and returns their final state.
func (s *OrderService) Cancel(ctx context.Context, params CancelOrderParams) ([]*models.Order, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	data, _, err := s.client.Call(ctx, http.MethodDelete, "/order", exchange.CallParams{
		FormParams: params.form(),
		ReturnType: typeOrderList,
	})
	if err != nil {
		return nil, err
	}
	return schema.Slice[*models.Order](data), nil
}
