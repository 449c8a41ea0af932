package api

import (
	"context"
	"net/http"

	"github.com/kbukum/tradekit/exchange"
	"github.com/kbukum/tradekit/models"
	"github.com/kbukum/tradekit/schema"
)

var (
	typeStatsList        = schema.MustParse("Array<Stats>")
	typeStatsHistoryList = schema.MustParse("Array<StatsHistory>")
	typeFile             = schema.MustParse("File")
)

// StatsService queries exchange-wide volume statistics.
type StatsService struct {
	client *exchange.Client
}

// List returns current turnover and volume per contract root.
func (s *StatsService) List(ctx context.Context) ([]*models.Stats, error) {
	data, _, err := s.client.Call(ctx, http.MethodGet, "/stats", exchange.CallParams{
		ReturnType: typeStatsList,
	})
	if err != nil {
		return nil, err
	}
	return schema.Slice[*models.Stats](data), nil
}

// History returns daily volume per contract root.
func (s *StatsService) History(ctx context.Context) ([]*models.StatsHistory, error) {
	data, _, err := s.client.Call(ctx, http.MethodGet, "/stats/history", exchange.CallParams{
		ReturnType: typeStatsHistoryList,
	})
	if err != nil {
		return nil, err
	}
	return schema.Slice[*models.StatsHistory](data), nil
}

// ExportHistory downloads the daily history as a CSV file. The file is
// written under the configured temp directory; the caller owns it.
func (s *StatsService) ExportHistory(ctx context.Context) (*exchange.File, error) {
	data, _, err := s.client.Call(ctx, http.MethodGet, "/stats/history", exchange.CallParams{
		HeaderParams: map[string]string{"Accept": "text/csv"},
		ReturnType:   typeFile,
	})
	if err != nil {
		return nil, err
	}
	file, _ := data.(*exchange.File)
	return file, nil
}
