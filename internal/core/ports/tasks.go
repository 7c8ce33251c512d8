// internal/core/ports/tasks.go
package ports

import "context"

// TaskEnqueuer schedules background work
type TaskEnqueuer interface {
	EnqueueSitemapRefresh(ctx context.Context, reason string) error
	EnqueueCatalogWarmup(ctx context.Context) error
}
