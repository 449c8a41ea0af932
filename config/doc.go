// Package config holds the client configuration for the tradekit SDK:
// endpoint location, API credentials, transport limits, TLS settings,
// and logging.
//
// Configuration can be built programmatically:
//
//	cfg := config.New()
//	cfg.APIKey = "..."
//	cfg.APISecret = "..."
//
// or loaded from a tradekit.yml file, a .env file, and TRADEKIT_*
// environment variables via Load:
//
//	cfg, err := config.Load()
//
// Environment variables override file values; TRADEKIT_API_SECRET maps
// to api_secret, TRADEKIT_TLS_SKIP_VERIFY to tls.skip_verify, and so on.
package config
