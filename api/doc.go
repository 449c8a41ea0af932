// Package api provides typed, per-resource services over the exchange
// client: instruments, orders, positions, trades, user/account data,
// and exchange statistics.
//
// Each service method validates its parameters, issues one REST call,
// and returns decoded model values. Importing this package registers
// all wire models, so return type descriptors resolve without further
// setup.
//
// # Basic Usage
//
//	cfg := config.New()
//	cfg.APIKey = os.Getenv("TRADEKIT_API_KEY")
//	cfg.APISecret = os.Getenv("TRADEKIT_API_SECRET")
//
//	client, err := api.NewFromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := client.Order.List(ctx, api.ListParams{
//	    Symbol: "XBTUSD",
//	    Count:  50,
//	})
package api
