package logging

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	intentKey    contextKey = "intent"
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithIntent adds the name of the user intent being handled to the context.
func WithIntent(ctx context.Context, intent string) context.Context {
	return context.WithValue(ctx, intentKey, intent)
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetIntent retrieves the intent name from the context.
// Returns empty string if not present.
func GetIntent(ctx context.Context) string {
	if intent, ok := ctx.Value(intentKey).(string); ok {
		return intent
	}
	return ""
}
