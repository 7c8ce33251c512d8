// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// Task types
const (
	TypeSitemapGenerate = "sitemap:generate"
	TypeCatalogWarmup   = "catalog:warmup"
)

// Queues the tasks go to
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// sitemapDebounce collapses bursts of admin edits into one rebuild
const sitemapDebounce = 30 * time.Second

// SitemapPayload says why a rebuild was requested
type SitemapPayload struct {
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requestedAt"`
}

// NewSitemapTask creates a sitemap rebuild task
func NewSitemapTask(reason string) (*asynq.Task, error) {
	b, err := json.Marshal(SitemapPayload{Reason: reason, RequestedAt: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap payload: %w", err)
	}
	return asynq.NewTask(TypeSitemapGenerate, b), nil
}

// NewWarmupTask creates a catalog warm-up task
func NewWarmupTask() *asynq.Task {
	return asynq.NewTask(TypeCatalogWarmup, nil)
}

// TaskClient is the part of asynq.Client the enqueuer needs
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer schedules background work on asynq
type Enqueuer struct {
	client   TaskClient
	maxRetry int
	logger   *slog.Logger
}

var _ ports.TaskEnqueuer = (*Enqueuer)(nil)

// NewEnqueuer creates a new enqueuer
func NewEnqueuer(client TaskClient, maxRetry int, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{
		client:   client,
		maxRetry: maxRetry,
		logger:   logger.With(slog.String("component", "enqueuer")),
	}
}

// EnqueueSitemapRefresh schedules a sitemap rebuild. Requests arriving
// while one is already queued are dropped.
func (e *Enqueuer) EnqueueSitemapRefresh(ctx context.Context, reason string) error {
	task, err := NewSitemapTask(reason)
	if err != nil {
		return err
	}

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(e.maxRetry),
		asynq.Unique(sitemapDebounce),
		asynq.ProcessIn(sitemapDebounce),
		asynq.Retention(time.Hour))
	if errors.Is(err, asynq.ErrDuplicateTask) {
		e.logger.DebugContext(ctx, "sitemap refresh already queued", slog.String("reason", reason))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue sitemap refresh: %w", err)
	}

	e.logger.InfoContext(ctx, "sitemap refresh queued",
		slog.String("task_id", info.ID),
		slog.String("reason", reason))
	return nil
}

// EnqueueCatalogWarmup schedules a catalog warm-up
func (e *Enqueuer) EnqueueCatalogWarmup(ctx context.Context) error {
	info, err := e.client.EnqueueContext(ctx, NewWarmupTask(),
		asynq.Queue(QueueLow),
		asynq.MaxRetry(1),
		asynq.Unique(time.Minute))
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue catalog warmup: %w", err)
	}

	e.logger.DebugContext(ctx, "catalog warmup queued", slog.String("task_id", info.ID))
	return nil
}
