package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key under which the request trace ID is stored
// by the tracing middleware.
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext extracts the request trace ID from ctx.
// The second return value reports whether a trace ID was present.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
