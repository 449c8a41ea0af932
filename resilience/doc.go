// Package resilience provides retry with exponential backoff and jitter.
//
// The REST client never retries on its own: every call is a single
// attempt and the caller decides what failure means. This package is
// for the callers that do want retries, and for the realtime feed's
// reconnect loop:
//
//	order, err := resilience.Retry(ctx, resilience.RetryConfig{
//	    MaxAttempts: 3,
//	    RetryIf:     exchange.IsRetryable,
//	}, func() (*models.Order, error) {
//	    return orders.Create(ctx, params)
//	})
package resilience
