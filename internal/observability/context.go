package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// contextKey indexes the request-scoped values that decorate log lines.
type contextKey int

const (
	traceIDKey contextKey = iota
	spanIDKey
	requestIDKey
	providerKey
	modelKey
	categoryKey

	contextKeyCount
)

// logFieldNames is ordered by contextKey.
//
//nolint:gochecknoglobals // Static lookup table
var logFieldNames = [contextKeyCount]string{
	"trace_id",
	"span_id",
	"request_id",
	"provider",
	"model",
	"category",
}

const (
	traceIDBytes = 16 // W3C trace-context trace ID size
	spanIDBytes  = 8
)

func withValue(ctx context.Context, key contextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func value(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withValue(ctx, traceIDKey, traceID)
}

// WithSpanID injects span ID into context.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return withValue(ctx, spanIDKey, spanID)
}

// WithRequestID injects the request ID that attempt records are keyed by.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, requestIDKey, requestID)
}

// WithProvider injects the adapter name for the current attempt.
func WithProvider(ctx context.Context, provider string) context.Context {
	return withValue(ctx, providerKey, provider)
}

// WithModel injects the upstream model id for the current attempt.
func WithModel(ctx context.Context, model string) context.Context {
	return withValue(ctx, modelKey, model)
}

// WithCategory injects the requested category.
func WithCategory(ctx context.Context, category string) context.Context {
	return withValue(ctx, categoryKey, category)
}

// GetTraceID extracts trace ID from context.
func GetTraceID(ctx context.Context) string { return value(ctx, traceIDKey) }

// GetSpanID extracts span ID from context.
func GetSpanID(ctx context.Context) string { return value(ctx, spanIDKey) }

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string { return value(ctx, requestIDKey) }

// GetProvider extracts the adapter name from context.
func GetProvider(ctx context.Context) string { return value(ctx, providerKey) }

// GetModel extracts the model id from context.
func GetModel(ctx context.Context) string { return value(ctx, modelKey) }

// GetCategory extracts the requested category from context.
func GetCategory(ctx context.Context) string { return value(ctx, categoryKey) }

// GenerateTraceID returns 32 random hex chars.
func GenerateTraceID() string {
	return randomHex(traceIDBytes)
}

// GenerateSpanID returns 16 random hex chars.
func GenerateSpanID() string {
	return randomHex(spanIDBytes)
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}

func randomHex(size int) string {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		id := uuid.New()
		return hex.EncodeToString(id[:])[:size*2]
	}
	return hex.EncodeToString(buf)
}
