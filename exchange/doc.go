// Package exchange is the core engine for calling the exchange REST
// API: it builds requests from per-call parameters, signs them with
// HMAC-SHA256 key-pair credentials, executes them over HTTP, and
// deserializes JSON responses into registered models driven by type
// descriptors.
//
// Service wrappers in the api package call into this engine; most
// programs use those instead of Call directly.
//
// # Basic Usage
//
//	cfg := config.New()
//	cfg.APIKey = "my-key"
//	cfg.APISecret = "my-secret"
//
//	client, err := exchange.NewClient(cfg)
//	if err != nil {
//	    return err
//	}
//
//	data, _, err := client.Call(ctx, http.MethodGet, "/instrument", exchange.CallParams{
//	    QueryParams: map[string]string{"symbol": "XBTUSD"},
//	    ReturnType:  schema.MustParse("Array<Instrument>"),
//	})
//
// # Authentication
//
// When an access token is configured it is sent as a bearer header.
// Otherwise each request is signed over UPPER(method) + path + nonce +
// body and carries api-key, api-nonce, and api-signature, either as
// headers or as query parameters depending on configuration.
//
// # Errors
//
// All failures surface as *Error with a Code that classifies the
// failure. Helpers such as IsAuth, IsRateLimit, and IsRetryable inspect
// wrapped errors with errors.As.
package exchange
