// Package logging defines the minimal structured-logging interface used
// by the SDK for diagnostics. Implementations can wrap slog, zap,
// zerolog, etc. Diagnostic logging is never the error-delivery channel:
// dispatch results always reach the caller through the returned channel.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "event dispatch failed", "event_type", et, "error", err)
type Logger interface {
	// Debug logs fine-grained dispatch details.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
