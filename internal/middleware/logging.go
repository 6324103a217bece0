package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs one line per RPC
// with the procedure, protocol, request ID and latency. Failed calls add the
// Connect code: server faults are logged at ERROR, everything else at WARN.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("protocol", req.Peer().Protocol),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			if id := RequestIDFromContext(ctx); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}
			if err == nil {
				slog.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, slog.String("code", code.String()), slog.Any("error", err))
			slog.LogAttrs(ctx, levelForCode(code), "RPC error", attrs...)
			return resp, err
		}
	}
}

func levelForCode(code connect.Code) slog.Level {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
