// Package goaplog provides tick-scoped structured logging for the
// engine, modeled on the correlation-id pattern of an HTTP middleware
// stack but anchored to an agent tick instead of a request.
package goaplog

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const loggerContextKey contextKey = "goaplog_logger"

var base zerolog.Logger

func init() {
	base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// NewTick attaches a fresh trace id and agent id to the base logger and
// returns a context carrying it alongside the logger itself, so callers
// can either thread the context further or log directly.
func NewTick(ctx context.Context, agentID string) (context.Context, zerolog.Logger) {
	logger := base.With().
		Str("agent_id", agentID).
		Str("tick_id", uuid.NewString()).
		Logger()
	return context.WithValue(ctx, loggerContextKey, logger), logger
}

// FromContext returns the logger stamped by NewTick, or the package
// base logger if the context carries none.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(zerolog.Logger); ok {
		return logger
	}
	return base
}

// LogInvariantViolation logs at error level immediately before the
// caller panics, so the failure is visible in logs even if the panic
// is recovered further up the call stack.
func LogInvariantViolation(ctx context.Context, message string, err error) {
	FromContext(ctx).Error().Err(err).Msg(message)
}
