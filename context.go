package crediflow

import "context"

type contextKey struct {
	name string
}

var requestIDKey = &contextKey{"request_id"}

// WithRequestID returns a context carrying a correlation id for one outbound
// call. Interceptors such as middleware.Logging set one when absent.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the correlation id for the current call.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
