package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// InitLogger installs the default slog logger described by config. Logs go to
// stderr, and additionally to a rotated file when config.File is set. The
// returned closer releases the file and is safe to call when no file is used.
func InitLogger(config Config) io.Closer {
	return InitLoggerTo(config, os.Stderr)
}

// InitLoggerTo is InitLogger with console output sent to console instead of stderr.
func InitLoggerTo(config Config, console io.Writer) io.Closer {
	if config.File == "" {
		InitLoggerWithWriter(config, console)
		return nopCloser{}
	}

	maxAge := config.MaxAgeDays
	if maxAge <= 0 {
		maxAge = DefaultMaxAgeDays
	}
	file := &lumberjack.Logger{
		Filename: config.File,
		MaxAge:   maxAge,
		MaxSize:  MaxFileSizeMB,
		Compress: true,
	}
	InitLoggerWithWriter(config, io.MultiWriter(console, file))
	return file
}

// InitLoggerWithWriter installs the default slog logger writing to w.
func InitLoggerWithWriter(config Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(config.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
