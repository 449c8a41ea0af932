package api

import (
	"github.com/kbukum/tradekit/config"
	"github.com/kbukum/tradekit/exchange"

	// Register all wire models with the default schema registry.
	_ "github.com/kbukum/tradekit/models"
)

// API bundles the per-resource services over one exchange client.
type API struct {
	Instrument *InstrumentService
	Order      *OrderService
	Position   *PositionService
	Trade      *TradeService
	User       *UserService
	Stats      *StatsService

	client *exchange.Client
}

// New builds the service set over an existing client.
func New(client *exchange.Client) *API {
	return &API{
		Instrument: &InstrumentService{client: client},
		Order:      &OrderService{client: client},
		Position:   &PositionService{client: client},
		Trade:      &TradeService{client: client},
		User:       &UserService{client: client},
		Stats:      &StatsService{client: client},
		client:     client,
	}
}

// NewFromConfig constructs the underlying client and the service set
// in one step.
func NewFromConfig(cfg *config.Config, opts ...exchange.Option) (*API, error) {
	client, err := exchange.NewClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return New(client), nil
}

// Client returns the underlying exchange client, for direct Call use
// or LastResponse inspection.
func (a *API) Client() *exchange.Client {
	return a.client
}
