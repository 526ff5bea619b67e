package middleware

import (
	"context"
	"encoding/base64"

	crediflow "github.com/crediflow/crediflow-go"
)

// BasicAuth creates an interceptor that adds an HTTP basic Authorization
// header to every outbound call.
func BasicAuth(username, password string) crediflow.CallInterceptor {
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))

	return func(ctx context.Context, req *crediflow.Request, next crediflow.CallFunc) (*crediflow.Response, error) {
		req.Header.Set("Authorization", "Basic "+credentials)
		return next(ctx, req)
	}
}

// APIKey creates an interceptor that adds an apiKey header to every
// outbound call.
func APIKey(key string) crediflow.CallInterceptor {
	return func(ctx context.Context, req *crediflow.Request, next crediflow.CallFunc) (*crediflow.Response, error) {
		req.Header.Set("apiKey", key)
		return next(ctx, req)
	}
}
