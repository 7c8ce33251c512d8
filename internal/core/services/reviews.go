// internal/core/services/reviews.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
)

const (
	defaultReviewsLimit = 6
	maxReviewsLimit     = 50
)

// ReviewsService serves customer testimonials
type ReviewsService struct {
	api    ports.ReviewsAPI
	client *query.Client
	opts   query.Options
	logger *slog.Logger
}

// NewReviewsService creates a new reviews service
func NewReviewsService(api ports.ReviewsAPI, client *query.Client, opts query.Options, logger *slog.Logger) *ReviewsService {
	return &ReviewsService{
		api:    api,
		client: client,
		opts:   opts,
		logger: logger.With(slog.String("service", "reviews")),
	}
}

// List returns up to limit reviews
func (s *ReviewsService) List(ctx context.Context, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = defaultReviewsLimit
	}
	limit = min(limit, maxReviewsLimit)

	reviews, err := query.Fetch(ctx, s.client, query.ReviewsKey(limit), s.opts, func(ctx context.Context) ([]domain.Review, error) {
		return s.api.List(ctx, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
