// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	// Context keys for logging
	ContextKeyRequestID  ContextKey = "request_id"
	ContextKeyClientIP   ContextKey = "client_ip"
	ContextKeyUserAgent  ContextKey = "user_agent"
	ContextKeyMethod     ContextKey = "method"
	ContextKeyPath       ContextKey = "path"
	ContextKeyStatusCode ContextKey = "status_code"
	ContextKeyDuration   ContextKey = "duration_ms"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level          string
	Format         string // json, text
	Output         io.Writer
	AddSource      bool
	Environment    string
	ServiceName    string
	ServiceVersion string
}

// SetupLogger builds the process logger from level and format and makes it
// the slog default.
func SetupLogger(level string, format string) *slog.Logger {
	logger := NewLogger(&LogConfig{
		Level:          level,
		Format:         format,
		Output:         os.Stdout,
		AddSource:      strings.EqualFold(level, "debug"),
		ServiceName:    os.Getenv("SERVICE_NAME"),
		ServiceVersion: os.Getenv("SERVICE_VERSION"),
		Environment:    os.Getenv("APP_ENV"),
	})
	slog.SetDefault(logger)
	return logger
}

// NewLogger creates a logger that pulls request fields from the context and
// redacts secrets.
func NewLogger(config *LogConfig) *slog.Logger {
	if config == nil {
		config = &LogConfig{Level: "info", Format: "json"}
	}
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(config.Level),
		AddSource: config.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return replaceAttr(config, groups, a)
		},
	}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = NewPrettyTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	handler = NewContextHandler(handler)
	handler = NewSanitizationHandler(handler)

	var attrs []slog.Attr
	if config.ServiceName != "" {
		attrs = append(attrs, slog.String("app", config.ServiceName))
	}
	if config.ServiceVersion != "" {
		attrs = append(attrs, slog.String("version", config.ServiceVersion))
	}
	if config.Environment != "" {
		attrs = append(attrs, slog.String("env", config.Environment))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultContextKeys() []ContextKey {
	return []ContextKey{
		ContextKeyRequestID,
		ContextKeyClientIP,
		ContextKeyUserAgent,
		ContextKeyMethod,
		ContextKeyPath,
		ContextKeyStatusCode,
		ContextKeyDuration,
	}
}

// extractContextAttrs turns the request values set by middleware into attrs.
// Durations are logged as fractional milliseconds.
func extractContextAttrs(ctx context.Context, keys []ContextKey) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		switch v := ctx.Value(key).(type) {
		case nil:
		case string:
			if v != "" {
				attrs = append(attrs, slog.String(string(key), v))
			}
		case time.Duration:
			attrs = append(attrs, slog.Float64(string(key), float64(v.Microseconds())/1000))
		case uuid.UUID:
			attrs = append(attrs, slog.String(string(key), v.String()))
		default:
			attrs = append(attrs, slog.Any(string(key), v))
		}
	}
	return attrs
}

func replaceAttr(config *LogConfig, _ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
		}
	}

	// log aggregators read severity
	if a.Key == slog.LevelKey && config.Format != "text" {
		a.Key = "severity"
	}

	return a
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

// WithRequestID stores a request id in ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, id)
}
