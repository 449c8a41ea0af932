package api

import (
	"context"
	"net/http"

	"github.com/kbukum/tradekit/exchange"
	"github.com/kbukum/tradekit/models"
	"github.com/kbukum/tradekit/schema"
)

var (
	typeUser          = schema.MustParse("User")
	typeWallet        = schema.MustParse("Wallet")
	typeCommissionMap = schema.MustParse("Map<String,Commission>")
)

// UserService queries the authenticated account.
type UserService struct {
	client *exchange.Client
}

// Get returns the authenticated user.
func (s *UserService) Get(ctx context.Context) (*models.User, error) {
	data, _, err := s.client.Call(ctx, http.MethodGet, "/user", exchange.CallParams{
		ReturnType: typeUser,
	})
	if err != nil {
		return nil, err
	}
	user, _ := data.(*models.User)
	return user, nil
}

// Wallet returns the account balance. currency is optional; the
// exchange defaults to its settlement currency when empty.
func (s *UserService) Wallet(ctx context.Context, currency string) (*models.Wallet, error) {
	var query map[string]string
	if currency != "" {
		query = map[string]string{"currency": currency}
	}
	data, _, err := s.client.Call(ctx, http.MethodGet, "/user/wallet", exchange.CallParams{
		QueryParams: query,
		ReturnType:  typeWallet,
	})
	if err != nil {
		return nil, err
	}
	wallet, _ := data.(*models.Wallet)
	return wallet, nil
}

// Commission returns the account's fee schedule keyed by symbol.
func (s *UserService) Commission(ctx context.Context) (map[string]*models.Commission, error) {
	data, _, err := s.client.Call(ctx, http.MethodGet, "/user/commission", exchange.CallParams{
		ReturnType: typeCommissionMap,
	})
	if err != nil {
		return nil, err
	}
	return schema.StringMap[*models.Commission](data), nil
}
