// Package logctx logs with the request-scoped fields carried by a context.
package logctx

import (
	"context"

	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger"
	"go.uber.org/zap"
)

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func from(ctx context.Context) *zap.SugaredLogger {
	l := logger.Sugar()
	if id := RequestID(ctx); id != "" {
		l = l.With("request_id", id)
	}
	return l
}

func Debugw(ctx context.Context, msg string, keysAndValues ...any) {
	from(ctx).Debugw(msg, keysAndValues...)
}

func Infow(ctx context.Context, msg string, keysAndValues ...any) {
	from(ctx).Infow(msg, keysAndValues...)
}

func Warnw(ctx context.Context, msg string, keysAndValues ...any) {
	from(ctx).Warnw(msg, keysAndValues...)
}

func Errorw(ctx context.Context, msg string, keysAndValues ...any) {
	from(ctx).Errorw(msg, keysAndValues...)
}

func Infof(ctx context.Context, template string, args ...any) {
	from(ctx).Infof(template, args...)
}

func Errorf(ctx context.Context, template string, args ...any) {
	from(ctx).Errorf(template, args...)
}
