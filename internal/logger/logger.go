// Package logger configures the structured slog output shared by the
// HTTP server and the CLI, and carries per-request trace IDs through
// context.Context so a kline or quote request can be followed across
// the handler, service, and upstream client layers.
package logger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"
)

type ctxKey struct{}

// Init builds the process-wide JSON logger. Every record carries the
// service name so logs from the server and the CLI can be told apart
// when they land in the same sink.
func Init(service string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(h).With(slog.String("service", service))

	// Bare slog.Info() calls in third-party code pick this up too.
	slog.SetDefault(log)
	return log
}

// NewTraceID returns a random 16-hex-char request identifier. Random
// rather than timestamp-derived so two requests arriving in the same
// nanosecond from one proxy address still get distinct IDs.
func NewTraceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("t-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

// WithTraceID stores a trace ID in the context for downstream propagation.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, traceID)
}

// TraceID extracts the trace ID from context. Returns "" if not set.
func TraceID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}

// LogWithTrace returns slog attributes including the trace ID from
// context, for use as slog.Warn("msg", logger.LogWithTrace(ctx)...).
func LogWithTrace(ctx context.Context) []any {
	tid := TraceID(ctx)
	if tid == "" {
		return nil
	}
	return []any{slog.String("trace_id", tid)}
}
