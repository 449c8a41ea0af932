// Package logger provides structured logging for the tradekit SDK,
// built on zerolog.
//
// The SDK never writes through a process-global logger: every client
// carries its own *logger.Logger instance, so embedding applications
// keep full control over level and output. Use NewNop to silence the
// SDK entirely.
package logger
