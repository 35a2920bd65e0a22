package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unsafe"
)

// Logger defines the subset of slog functionality used by the bridge.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds to
// slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Pointer renders an opaque pointer as a hex attribute.
func Pointer(key string, p unsafe.Pointer) slog.Attr {
	return slog.String(key, fmt.Sprintf("%#x", uintptr(p)))
}

// Handle renders a registry handle or any other integer identifier.
func Handle(key string, h uintptr) slog.Attr {
	return slog.Uint64(key, uint64(h))
}
