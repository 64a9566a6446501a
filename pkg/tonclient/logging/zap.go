package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
)

// NewZap returns a Logger backed by a zap logger. Passing nil yields a no-op
// zap logger. slog.Attr arguments (for example from Redacted) are converted to
// zap fields; everything else follows zap's loosely typed key/value rules.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{sugar: logger.Sugar()}
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapLogger) Debug(_ context.Context, msg string, args ...any) {
	l.sugar.Debugw(msg, zapArgs(args)...)
}

func (l *zapLogger) Info(_ context.Context, msg string, args ...any) {
	l.sugar.Infow(msg, zapArgs(args)...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, args ...any) {
	l.sugar.Warnw(msg, zapArgs(args)...)
}

func (l *zapLogger) Error(_ context.Context, msg string, args ...any) {
	l.sugar.Errorw(msg, zapArgs(args)...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{sugar: l.sugar.With(zapArgs(args)...)}
}

func zapArgs(args []any) []any {
	var out []any
	for i, a := range args {
		attr, ok := a.(slog.Attr)
		if !ok {
			continue
		}
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i] = zap.Any(attr.Key, attr.Value.Resolve().Any())
	}
	if out == nil {
		return args
	}
	return out
}
