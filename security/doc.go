// Package security provides TLS configuration for the exchange
// transport.
//
// The REST client and the realtime feed both dial the exchange over
// TLS; this package turns file-based settings (CA bundle, client
// certificate) into a *tls.Config.
//
//	cfg := security.TLSConfig{
//	    CAFile:   "/path/to/ca.pem",
//	    CertFile: "/path/to/cert.pem",
//	    KeyFile:  "/path/to/key.pem",
//	}
//
//	tlsConfig, err := cfg.Build()
package security
