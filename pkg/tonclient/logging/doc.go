// Package logging provides a minimal logging facade for the tonclient bridge.
//
// The Logger interface is context-aware and intentionally small:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// Beyond the plain slog adapter, this package adds a zap backend (NewZap),
// which translates slog.Attr arguments such as Redacted into zap fields, and
// Nop for callers that want silence without configuring slog:
//
//	logger := logging.New(nil)                   // slog.Default()
//	logger := logging.NewZap(zap.NewExample())   // go.uber.org/zap
//
// The loader reports one record per load attempt. Request parameters are
// never logged verbatim; the bridge emits logging.Redacted("params") instead.
package logging
