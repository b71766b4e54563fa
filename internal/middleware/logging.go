package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/Denniskaninu/chama-smart-sync/internal/metrics"
)

// LoggingInterceptor logs every RPC call and records its outcome in the
// RPC metrics. It logs the procedure name, user ID, duration, and any error
// codes/messages. Install it inside the auth interceptor so the user ID is
// known.
type LoggingInterceptor struct {
	logger *slog.Logger
}

var _ connect.Interceptor = (*LoggingInterceptor)(nil)

func NewLoggingInterceptor(logger *slog.Logger) *LoggingInterceptor {
	return &LoggingInterceptor{logger: logger}
}

func (i *LoggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient {
			return next(ctx, req)
		}
		start := time.Now()
		resp, err := next(ctx, req)
		i.record(ctx, req.Spec().Procedure, start, err)
		return resp, err
	}
}

func (i *LoggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *LoggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		i.logger.Info("Stream opened", "procedure", conn.Spec().Procedure, "user_id", GetUserID(ctx))
		err := next(ctx, conn)
		i.record(ctx, conn.Spec().Procedure, start, err)
		return err
	}
}

func (i *LoggingInterceptor) record(ctx context.Context, procedure string, start time.Time, err error) {
	elapsed := time.Since(start)
	userID := GetUserID(ctx) // empty if pre-auth

	code := "ok"
	if err != nil {
		code = connect.CodeOf(err).String()
	}
	metrics.RPCRequestsTotal.WithLabelValues(procedure, code).Inc()
	metrics.RPCDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())

	duration := elapsed.Milliseconds()
	if err == nil {
		i.logger.Info("RPC ok",
			"procedure", procedure,
			"user_id", userID,
			"duration_ms", duration,
		)
		return
	}

	var connectErr *connect.Error
	if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal && connectErr.Code() != connect.CodeUnknown {
		i.logger.Warn("RPC error",
			"procedure", procedure,
			"code", connectErr.Code(),
			"error", connectErr.Message(),
			"user_id", userID,
			"duration_ms", duration,
		)
		return
	}
	i.logger.Error("RPC error",
		"procedure", procedure,
		"error", err,
		"user_id", userID,
		"duration_ms", duration,
	)
}
