package logging

import "context"

// NilLogger drops all log events. It is used when no logger is supplied.
type NilLogger struct{}

func NewNilLogger() *NilLogger {
	return &NilLogger{}
}

func (n *NilLogger) Debug(_ context.Context, _ string, _ ...any) {}
func (n *NilLogger) Info(_ context.Context, _ string, _ ...any)  {}
func (n *NilLogger) Warn(_ context.Context, _ string, _ ...any)  {}
func (n *NilLogger) Error(_ context.Context, _ string, _ ...any) {}

// With returns the same no-op logger.
func (n *NilLogger) With(_ ...any) Logger { return n }
