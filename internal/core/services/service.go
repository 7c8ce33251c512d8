// internal/core/services/service.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
)

var (
	// ErrRecaptchaRequired is returned when a public form arrives without a token
	ErrRecaptchaRequired = errors.New("recaptcha verification is required")
	// ErrGalleryUpload is returned when any image of a gallery fails to upload
	ErrGalleryUpload = errors.New("gallery upload failed")
	// ErrNotFound is returned when the backend has no such resource
	ErrNotFound = errors.New("resource not found")
)

// IsNotFound reports whether err is a 404 from the backend or ErrNotFound
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var status interface{ HTTPStatus() int }
	return errors.As(err, &status) && status.HTTPStatus() == http.StatusNotFound
}

// Policies holds the query options per kind of data
type Policies struct {
	Catalog query.Options
	Reviews query.Options
	Admin   query.Options
	Content query.Options
}

// DefaultPolicies returns the stock cache policies. Admin data is never
// served from cache; reviews retry once.
func DefaultPolicies() Policies {
	return Policies{
		Catalog: query.Options{StaleTime: 5 * time.Minute, CacheTime: 10 * time.Minute},
		Reviews: query.Options{StaleTime: 10 * time.Minute, CacheTime: 30 * time.Minute, Retry: 1},
		Admin:   query.Options{StaleTime: 0, CacheTime: time.Minute},
		Content: query.Options{StaleTime: time.Minute, CacheTime: 5 * time.Minute},
	}
}

// enqueueSitemap schedules a sitemap refresh. Failures only log; the
// mutation that triggered it already succeeded.
func enqueueSitemap(ctx context.Context, tasks ports.TaskEnqueuer, logger *slog.Logger, reason string) {
	if tasks == nil {
		return
	}
	if err := tasks.EnqueueSitemapRefresh(ctx, reason); err != nil {
		logger.WarnContext(ctx, "failed to enqueue sitemap refresh",
			slog.String("reason", reason),
			slog.String("error", err.Error()))
	}
}
