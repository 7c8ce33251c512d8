// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	redis_a "github.com/ammerola/wreckers-gateway/internal/adapters/redis_adapter"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
	"github.com/ammerola/wreckers-gateway/internal/pkg/config"
)

// Pinger is a dependency that can report whether it is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	redis     *redis.Client
	asynq     *asynq.Inspector
	storage   Pinger
	queries   *query.Client
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler. The inspector, storage and
// query client are optional.
func NewHealthHandler(
	redisClient *redis.Client,
	asynqInspector *asynq.Inspector,
	storage Pinger,
	queries *query.Client,
	cfg *config.Config,
	logger *slog.Logger,
) *HealthHandler {
	return &HealthHandler{
		redis:     redisClient,
		asynq:     asynqInspector,
		storage:   storage,
		queries:   queries,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus represents the health status of the gateway
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Backend     string                 `json:"backend"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	System      SystemInfo             `json:"system"`
	QueryCache  *query.Stats           `json:"query_cache,omitempty"`
}

// ServiceInfo represents the status of a service dependency
type ServiceInfo struct {
	Status       string         `json:"status"`
	Message      string         `json:"message,omitempty"`
	ResponseTime string         `json:"response_time,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}

// SystemInfo represents process-level information
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
	NumGC         uint32 `json:"num_gc"`
}

// dependency checks one backing service and fills details on success
type dependency struct {
	name     string
	required bool
	check    func(ctx context.Context, details map[string]any) error
}

func (h *HealthHandler) dependencies() []dependency {
	deps := []dependency{{name: "redis", required: true, check: h.checkRedis}}
	if h.asynq != nil {
		deps = append(deps, dependency{name: "asynq", check: h.checkAsynq})
	}
	if h.storage != nil {
		deps = append(deps, dependency{name: "storage", required: true, check: func(ctx context.Context, _ map[string]any) error {
			return h.storage.Ping(ctx)
		}})
	}
	return deps
}

func (h *HealthHandler) run(ctx context.Context, p dependency) ServiceInfo {
	start := time.Now()
	details := make(map[string]any)

	if err := p.check(ctx, details); err != nil {
		h.logger.ErrorContext(ctx, "health check failed",
			slog.String("dependency", p.name),
			slog.String("error", err.Error()))
		return ServiceInfo{Status: "unhealthy", Message: err.Error()}
	}

	info := ServiceInfo{Status: "healthy", ResponseTime: time.Since(start).String()}
	if len(details) > 0 {
		info.Details = details
	}
	return info
}

// Health handles GET /health. Any unhealthy dependency degrades the answer.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := HealthStatus{
		Status:      "healthy",
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Backend:     h.config.Backend.BaseURL,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now(),
		Services:    make(map[string]ServiceInfo),
		System:      systemInfo(),
	}

	for _, p := range h.dependencies() {
		info := h.run(ctx, p)
		health.Services[p.name] = info
		if info.Status != "healthy" {
			health.Status = "degraded"
		}
	}

	if h.queries != nil {
		stats := h.queries.Stats()
		health.QueryCache = &stats
	}

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	h.write(ctx, w, status, health)
}

// Readiness handles GET /ready. Only required dependencies count.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := true
	details := make(map[string]string)

	for _, p := range h.dependencies() {
		if !p.required {
			continue
		}
		if err := p.check(ctx, map[string]any{}); err != nil {
			ready = false
			details[p.name] = "not ready"
			continue
		}
		details[p.name] = "ready"
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	h.write(ctx, w, status, map[string]any{
		"ready":   ready,
		"details": details,
	})
}

func (h *HealthHandler) write(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response",
			slog.String("error", err.Error()))
	}
}

// checkRedis pings the query cache store and reports pool and sitemap state
func (h *HealthHandler) checkRedis(ctx context.Context, details map[string]any) error {
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return err
	}

	pool := h.redis.PoolStats()
	details["total_conns"] = pool.TotalConns
	details["idle_conns"] = pool.IdleConns

	if n, err := h.redis.Exists(ctx, redis_a.SitemapKey).Result(); err == nil {
		details["sitemap_cached"] = n > 0
	}
	return nil
}

// checkAsynq reports the backlog of the job queues
func (h *HealthHandler) checkAsynq(_ context.Context, details map[string]any) error {
	queues, err := h.asynq.Queues()
	if err != nil {
		return err
	}

	backlog := make(map[string]any, len(queues))
	for _, name := range queues {
		q, err := h.asynq.GetQueueInfo(name)
		if err != nil {
			continue
		}
		backlog[name] = map[string]int{
			"pending":   q.Pending,
			"active":    q.Active,
			"scheduled": q.Scheduled,
			"retry":     q.Retry,
			"archived":  q.Archived,
		}
	}
	details["queues"] = backlog

	if servers, err := h.asynq.Servers(); err == nil {
		details["workers"] = len(servers)
	}
	return nil
}

func systemInfo() SystemInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		MemoryAllocMB: mem.Alloc >> 20,
		NumGC:         mem.NumGC,
	}
}
