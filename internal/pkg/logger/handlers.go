// internal/pkg/logger/handlers.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"
)

// ContextHandler extracts values from context and adds them to log records
type ContextHandler struct {
	handler slog.Handler
	keys    []ContextKey
}

// NewContextHandler creates a handler that enriches logs with context values
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		handler: handler,
		keys:    defaultContextKeys(),
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if ctx == nil {
		return h.handler.Handle(ctx, record)
	}

	if attrs := extractContextAttrs(ctx, h.keys); len(attrs) > 0 {
		record = record.Clone()
		record.AddAttrs(attrs...)
	}
	return h.handler.Handle(ctx, record)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs), keys: h.keys}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name), keys: h.keys}
}

const redacted = "***REDACTED***"

type redaction struct {
	pattern *regexp.Regexp
	repl    string
}

// SanitizationHandler masks credentials before they reach the output
type SanitizationHandler struct {
	handler    slog.Handler
	redactions []redaction
	blacklist  []string
}

// NewSanitizationHandler creates a handler that sanitizes sensitive data
func NewSanitizationHandler(handler slog.Handler) *SanitizationHandler {
	return &SanitizationHandler{
		handler: handler,
		redactions: []redaction{
			{regexp.MustCompile(`(?i)\b(password|secret|token|api[-_]?key)\s*[:=]\s*["']?[^"'\s&]+`), "$1=" + redacted},
			{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9\-._~+/]+=*`), "Bearer " + redacted},
			{regexp.MustCompile(`\b(?:\d{4}[-\s]?){3}\d{4}\b`), redacted}, // card numbers
			{regexp.MustCompile(`\b(pi|seti)_[A-Za-z0-9]+_secret_[A-Za-z0-9]+`), "${1}_" + redacted},
			{regexp.MustCompile(`\b([rs]k)_(live|test)_[A-Za-z0-9]+`), "${1}_${2}_" + redacted},
		},
		blacklist: []string{
			"authorization", "password", "secret", "token", "cookie", "api_key", "apikey",
		},
	}
}

func (h *SanitizationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *SanitizationHandler) Handle(ctx context.Context, record slog.Record) error {
	clean := slog.NewRecord(record.Time, record.Level, h.sanitizeString(record.Message), record.PC)
	record.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(h.sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clean)
}

func (h *SanitizationHandler) sensitive(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, blacklisted := range h.blacklist {
		if strings.Contains(lowerKey, blacklisted) {
			return true
		}
	}
	return false
}

func (h *SanitizationHandler) sanitizeAttr(attr slog.Attr) slog.Attr {
	if h.sensitive(attr.Key) {
		return slog.String(attr.Key, redacted)
	}

	switch attr.Value.Kind() {
	case slog.KindString:
		attr.Value = slog.StringValue(h.sanitizeString(attr.Value.String()))
	case slog.KindGroup:
		group := attr.Value.Group()
		clean := make([]slog.Attr, 0, len(group))
		for _, a := range group {
			clean = append(clean, h.sanitizeAttr(a))
		}
		attr.Value = slog.GroupValue(clean...)
	}

	return attr
}

func (h *SanitizationHandler) sanitizeString(s string) string {
	for _, r := range h.redactions {
		s = r.pattern.ReplaceAllString(s, r.repl)
	}
	return s
}

func (h *SanitizationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, h.sanitizeAttr(a))
	}
	return &SanitizationHandler{
		handler:    h.handler.WithAttrs(clean),
		redactions: h.redactions,
		blacklist:  h.blacklist,
	}
}

func (h *SanitizationHandler) WithGroup(name string) slog.Handler {
	return &SanitizationHandler{
		handler:    h.handler.WithGroup(name),
		redactions: h.redactions,
		blacklist:  h.blacklist,
	}
}

// PrettyTextHandler provides human-readable colored output for development
type PrettyTextHandler struct {
	*slog.TextHandler
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

// NewPrettyTextHandler creates a pretty text handler
func NewPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyTextHandler {
	return &PrettyTextHandler{
		TextHandler: slog.NewTextHandler(w, opts),
		mu:          &sync.Mutex{},
		w:           w,
	}
}

func (h *PrettyTextHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	level := r.Level.String()
	levelColor := getLevelColor(r.Level)
	resetColor := "\033[0m"

	fmt.Fprintf(h.w, "%s%s %s%s%s %s",
		levelColor,
		r.Time.Format("2006-01-02 15:04:05.000"),
		level,
		resetColor,
		strings.Repeat(" ", max(0, 6-len(level))),
		r.Message,
	)

	write := func(a slog.Attr) bool {
		fmt.Fprintf(h.w, " \033[36m%s\033[0m=%v", a.Key, a.Value)
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)

	_, err := fmt.Fprintln(h.w)
	return err
}

func (h *PrettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyTextHandler{
		TextHandler: h.TextHandler,
		mu:          h.mu,
		w:           h.w,
		attrs:       append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

func getLevelColor(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "\033[37m" // White
	case slog.LevelInfo:
		return "\033[34m" // Blue
	case slog.LevelWarn:
		return "\033[33m" // Yellow
	case slog.LevelError:
		return "\033[31m" // Red
	default:
		return "\033[0m"
	}
}
