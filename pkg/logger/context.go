package logger

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EchoKey is the echo context key holding the request-scoped logger
const EchoKey = "logger"

type ctxKey struct{}

// WithContext returns a copy of ctx carrying l
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Lookup returns the logger carried by ctx, if any
func Lookup(ctx context.Context) (*zap.Logger, bool) {
	l, ok := ctx.Value(ctxKey{}).(*zap.Logger)
	return l, ok && l != nil
}

// FromContext returns the logger carried by ctx, or the global logger
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := Lookup(ctx); ok {
		return l
	}
	return GetLogger()
}

// FromEcho returns the request logger set by the request ID middleware, or
// the global logger
func FromEcho(c echo.Context) *zap.Logger {
	if l, ok := c.Get(EchoKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return GetLogger()
}

// EchoContext returns the request context with the request logger attached
func EchoContext(c echo.Context) context.Context {
	return WithContext(c.Request().Context(), FromEcho(c))
}
