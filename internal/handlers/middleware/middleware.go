// internal/handlers/middleware/middleware.go
package middleware

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ammerola/wreckers-gateway/internal/adapters/apiclient"
	"github.com/ammerola/wreckers-gateway/internal/pkg/logger"
)

// DefaultRequestIDHeader carries the request id in and out
const DefaultRequestIDHeader = "X-Request-ID"

// slowRequest is when a completed request is logged as a warning
const slowRequest = 5 * time.Second

// Chain applies middlewares so the first one listed runs first
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// RequestID adds a unique request ID to each request, reusing one set by a
// proxy in header.
func RequestID(header string) func(http.Handler) http.Handler {
	if header == "" {
		header = DefaultRequestIDHeader
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(header)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(header, requestID)
			next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
		})
	}
}

// Logger logs every completed request
func Logger(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := r.Context()
			ctx = context.WithValue(ctx, logger.ContextKeyClientIP, getClientIP(r))
			ctx = context.WithValue(ctx, logger.ContextKeyUserAgent, r.UserAgent())
			ctx = context.WithValue(ctx, logger.ContextKeyMethod, r.Method)
			ctx = context.WithValue(ctx, logger.ContextKeyPath, r.URL.Path)

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r.WithContext(ctx))

			duration := time.Since(start)
			ctx = context.WithValue(ctx, logger.ContextKeyStatusCode, wrapped.statusCode)
			ctx = context.WithValue(ctx, logger.ContextKeyDuration, duration)

			logLevel := slog.LevelInfo
			switch {
			case wrapped.statusCode >= 500:
				logLevel = slog.LevelError
			case wrapped.statusCode >= 400, duration > slowRequest:
				logLevel = slog.LevelWarn
			}

			l.Log(ctx, logLevel, "request completed",
				slog.String("query", r.URL.RawQuery),
				slog.Int("bytes", wrapped.bytesWritten),
				slog.Bool("slow_request", duration > slowRequest),
			)
		})
	}
}

// Recovery turns a handler panic into a 500 carrying the request id.
// http.ErrAbortHandler is re-raised so the server can drop the connection.
func Recovery(slogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slogger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())))

				writeError(w, http.StatusInternalServerError, map[string]string{
					"error":      "Internal Server Error",
					"request_id": logger.RequestID(r.Context()),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter limits requests per client IP
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
	mu       sync.Mutex
	limiters map[string]*rateLimiter
}

type rateLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows requests per window for each client IP
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		idle:     10 * time.Minute,
		now:      time.Now,
		limiters: make(map[string]*rateLimiter),
	}
}

// Allow reports whether ip may make a request now
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	l, ok := rl.limiters[ip]
	if !ok {
		l = &rateLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastSeen = now
	return l.limiter.AllowN(now, 1)
}

// Cleanup forgets clients idle for longer than the idle window
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for ip, l := range rl.limiters {
		if now.Sub(l.lastSeen) > rl.idle {
			delete(rl.limiters, ip)
			removed++
		}
	}
	return removed
}

// Run cleans up idle clients until ctx ends
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(getClientIP(r)) {
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, map[string]string{
				"error": "Too many requests, please try again shortly.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

const (
	corsMethods = "GET, POST, PUT, DELETE, OPTIONS, PATCH"
	corsHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID, Idempotency-Key"
)

// CORS echoes allowed origins back with credentials enabled, since the
// admin cookie has to cross origins. "*" allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, "*")
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			_, ok := allowed[origin]

			if origin != "" && (ok || allowAny) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Allow-Headers", corsHeaders)
				h.Set("Access-Control-Max-Age", "86400")
				h.Add("Vary", "Origin")
			}

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if preflight {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// secureHeaders are set on every API response. The API serves JSON and
// XML only, so the CSP denies everything.
var secureHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
}

// SecureHeaders adds hardening headers, plus HSTS on TLS connections
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, kv := range secureHeaders {
			w.Header().Set(kv[0], kv[1])
		}
		if r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		next.ServeHTTP(w, r)
	})
}

// Timeout bounds the request context, so backend calls made while serving
// it give up after timeout.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuth forwards the caller's admin token to the backend. The token is
// read from the Authorization header or the admin cookie; requests with
// neither are rejected before any backend call.
func AdminAuth(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" && cookieName != "" {
				if c, err := r.Cookie(cookieName); err == nil {
					token = strings.TrimSpace(c.Value)
				}
			}

			if token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
				return
			}

			next.ServeHTTP(w, r.WithContext(apiclient.WithToken(r.Context(), token)))
		})
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Compression gzips responses for clients that accept it
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := &gzipResponseWriter{ResponseWriter: w}
		defer gz.Close()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(gz, r)
	})
}

// writeError sends a small JSON body. Middleware sits outside the handlers
// package, so it cannot reuse their response helpers.
func writeError(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// responseWriter records the status and size for the access log
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	written      bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.written {
		return
	}
	rw.written = true
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// ClientIP resolves the client address once per request. X-Forwarded-For
// and X-Real-IP are only believed when the direct peer is in trusted; the
// forwarded chain is walked right to left and the first untrusted hop wins.
func ClientIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	isTrusted := func(addr netip.Addr) bool {
		addr = addr.Unmap()
		return slices.ContainsFunc(trusted, func(p netip.Prefix) bool { return p.Contains(addr) })
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := remoteHost(r)
			if peer, err := netip.ParseAddr(ip); err == nil && isTrusted(peer) {
				ip = forwardedFor(r, ip, isTrusted)
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), logger.ContextKeyClientIP, ip)))
		})
	}
}

func forwardedFor(r *http.Request, peer string, isTrusted func(netip.Addr) bool) string {
	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				return peer
			}
			if !isTrusted(addr) {
				return addr.Unmap().String()
			}
		}
		return peer
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.Unmap().String()
	}
	return peer
}

// getClientIP returns the address resolved by ClientIP, or the direct peer
// when that middleware is not installed.
func getClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(logger.ContextKeyClientIP).(string); ok && ip != "" {
		return ip
	}
	return remoteHost(r)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

type gzipResponseWriter struct {
	http.ResponseWriter
	writer *gzip.Writer
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.writer == nil {
		w.writer = gzip.NewWriter(w.ResponseWriter)
	}
	return w.writer.Write(b)
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Close() {
	if w.writer != nil {
		_ = w.writer.Close()
	}
}

// Flush implements http.Flusher
func (w *gzipResponseWriter) Flush() {
	if w.writer != nil {
		_ = w.writer.Flush()
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
