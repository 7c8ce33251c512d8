// internal/workers/warmup_processor.go
package workers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
)

// WarmupProcessor loads the queries every visitor hits first, so the query
// cache is warm before they arrive.
type WarmupProcessor struct {
	parts   *services.PartsService
	catalog *services.CatalogService
	reviews *services.ReviewsService
	logger  *slog.Logger
}

// NewWarmupProcessor creates a new warm-up processor
func NewWarmupProcessor(parts *services.PartsService, catalog *services.CatalogService, reviews *services.ReviewsService, logger *slog.Logger) *WarmupProcessor {
	return &WarmupProcessor{
		parts:   parts,
		catalog: catalog,
		reviews: reviews,
		logger:  logger.With(slog.String("processor", "warmup")),
	}
}

// ProcessTask handles TypeCatalogWarmup
func (p *WarmupProcessor) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	return p.Warm(ctx)
}

// Warm loads the landing queries concurrently. It fails only when every
// query failed; a partly warm cache is still useful.
func (p *WarmupProcessor) Warm(ctx context.Context) error {
	jobs := map[string]func(context.Context) error{
		"parts": func(ctx context.Context) error {
			_, err := p.parts.List(ctx, domain.PartsParams{Page: 1})
			return err
		},
		"cars": func(ctx context.Context) error {
			_, err := p.catalog.Cars(ctx, domain.CarsParams{Page: 1})
			return err
		},
		"makes": func(ctx context.Context) error {
			_, err := p.catalog.Makes(ctx)
			return err
		},
		"filters": func(ctx context.Context) error {
			_, err := p.catalog.Filters(ctx, domain.PartsParams{})
			return err
		},
		"reviews": func(ctx context.Context) error {
			_, err := p.reviews.List(ctx, 0)
			return err
		},
	}

	errs := make(chan error, len(jobs))
	var g errgroup.Group
	for name, job := range jobs {
		g.Go(func() error {
			if err := job(ctx); err != nil {
				p.logger.WarnContext(ctx, "warmup query failed",
					slog.String("query", name),
					slog.String("error", err.Error()))
				errs <- err
			}
			return nil
		})
	}
	_ = g.Wait()
	close(errs)

	var failed []error
	for err := range errs {
		failed = append(failed, err)
	}

	if len(failed) == len(jobs) {
		return errors.Join(failed...)
	}

	p.logger.InfoContext(ctx, "catalog warmed",
		slog.Int("queries", len(jobs)),
		slog.Int("failed", len(failed)))
	return nil
}
