// Package middleware provides ready-made call interceptors for the SDK:
// structured logging with request correlation, and header-based auth.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	crediflow "github.com/crediflow/crediflow-go"
)

// Logging creates an interceptor that logs outbound calls using slog.
// Each call gets a correlation id, attached to the log records and sent to
// the backend as X-Request-ID. An id already present on the context is
// reused, so one id can span several calls of a workflow.
func Logging(logger *slog.Logger) crediflow.CallInterceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, req *crediflow.Request, next crediflow.CallFunc) (*crediflow.Response, error) {
		requestID, ok := crediflow.RequestIDFromContext(ctx)
		if !ok {
			requestID = uuid.NewString()
			ctx = crediflow.WithRequestID(ctx, requestID)
		}
		req.Header.Set("X-Request-ID", requestID)

		start := time.Now()

		logger.InfoContext(ctx, "call started",
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("url", req.URL),
		)

		res, err := next(ctx, req)
		duration := time.Since(start)

		if err != nil {
			logger.ErrorContext(ctx, "call failed",
				slog.String("request_id", requestID),
				slog.String("method", req.Method),
				slog.String("url", req.URL),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
		} else {
			logger.InfoContext(ctx, "call completed",
				slog.String("request_id", requestID),
				slog.String("method", req.Method),
				slog.String("url", req.URL),
				slog.Duration("duration", duration),
				slog.Int("status", res.Status),
			)
		}

		return res, err
	}
}
