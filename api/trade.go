package api

import (
	"context"
	"net/http"

	"github.com/kbukum/tradekit/exchange"
	"github.com/kbukum/tradekit/models"
	"github.com/kbukum/tradekit/schema"
)

var typeTradeList = schema.MustParse("Array<Trade>")

// TradeService queries executed trades.
type TradeService struct {
	client *exchange.Client
}

// List returns trades matching the query, oldest first unless
// params.Reverse is set.
func (s *TradeService) List(ctx context.Context, params ListParams) ([]*models.Trade, error) {
	query, err := params.toQuery()
	if err != nil {
		return nil, err
	}
	data, _, err := s.client.Call(ctx, http.MethodGet, "/trade", exchange.CallParams{
		QueryParams: query,
		ReturnType:  typeTradeList,
	})
	if err != nil {
		return nil, err
	}
	return schema.Slice[*models.Trade](data), nil
}
