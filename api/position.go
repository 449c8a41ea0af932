package api

import (
	"context"
	"net/http"

	"github.com/kbukum/tradekit/exchange"
	"github.com/kbukum/tradekit/models"
	"github.com/kbukum/tradekit/schema"
	"github.com/kbukum/tradekit/validation"
)

var (
	typePosition     = schema.MustParse("Position")
	typePositionList = schema.MustParse("Array<Position>")
)

// PositionService queries and adjusts open positions.
type PositionService struct {
	client *exchange.Client
}

// List returns the account's positions matching the query.
func (s *PositionService) List(ctx context.Context, params ListParams) ([]*models.Position, error) {
	query, err := params.toQuery()
	if err != nil {
		return nil, err
	}
	data, _, err := s.client.Call(ctx, http.MethodGet, "/position", exchange.CallParams{
		QueryParams: query,
		ReturnType:  typePositionList,
	})
	if err != nil {
		return nil, err
	}
	return schema.Slice[*models.Position](data), nil
}

// UpdateLeverage sets the leverage on a position. A leverage of 0
// selects cross margin.
func (s *PositionService) UpdateLeverage(ctx context.Context, symbol string, leverage float64) (*models.Position, error) {
	err := validation.New().
		Required("symbol", symbol).
		Custom(leverage >= 0 && leverage <= 100, "leverage", "must be between 0 and 100").
		Validate()
	if err != nil {
		return nil, err
	}
	form := map[string]any{
		"symbol":   symbol,
		"leverage": leverage,
	}
	data, _, err := s.client.Call(ctx, http.MethodPost, "/position/leverage", exchange.CallParams{
		FormParams: form,
		ReturnType: typePosition,
	})
	if err != nil {
		return nil, err
	}
	position, _ := data.(*models.Position)
	return position, nil
}
