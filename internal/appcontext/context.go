// Package appcontext carries request-scoped identifiers through context for
// log correlation.
package appcontext

import "context"

type ContextKey string

var RequestIDKey = ContextKey("X-Request-Id")

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	value, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return value
}
