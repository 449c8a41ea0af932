package api

import (
	"context"
	"net/http"

	"github.com/kbukum/tradekit/exchange"
	"github.com/kbukum/tradekit/models"
	"github.com/kbukum/tradekit/schema"
)

var typeInstrumentList = schema.MustParse("Array<Instrument>")

// InstrumentService queries tradeable contracts and indices.
type InstrumentService struct {
	client *exchange.Client
}

// List returns instruments matching the query.
func (s *InstrumentService) List(ctx context.Context, params ListParams) ([]*models.Instrument, error) {
	query, err := params.toQuery()
	if err != nil {
		return nil, err
	}
	data, _, err := s.client.Call(ctx, http.MethodGet, "/instrument", exchange.CallParams{
		QueryParams: query,
		ReturnType:  typeInstrumentList,
	})
	if err != nil {
		return nil, err
	}
	return schema.Slice[*models.Instrument](data), nil
}

// Active returns instruments that are currently open for trading.
func (s *InstrumentService) Active(ctx context.Context) ([]*models.Instrument, error) {
	data, _, err := s.client.Call(ctx, http.MethodGet, "/instrument/active", exchange.CallParams{
		ReturnType: typeInstrumentList,
	})
	if err != nil {
		return nil, err
	}
	return schema.Slice[*models.Instrument](data), nil
}
