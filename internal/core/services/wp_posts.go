// internal/core/services/wp_posts.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
)

// WpPostsService manages content posts. Every write invalidates the posts
// family and schedules a sitemap refresh.
type WpPostsService struct {
	api    ports.WpPostsAPI
	client *query.Client
	tasks  ports.TaskEnqueuer
	opts   query.Options
	logger *slog.Logger
}

// NewWpPostsService creates a new posts service. tasks may be nil.
func NewWpPostsService(api ports.WpPostsAPI, client *query.Client, tasks ports.TaskEnqueuer, opts query.Options, logger *slog.Logger) *WpPostsService {
	return &WpPostsService{
		api:    api,
		client: client,
		tasks:  tasks,
		opts:   opts,
		logger: logger.With(slog.String("service", "wp_posts")),
	}
}

var postFamilies = []query.Family{query.FamilyWpPosts}

// List returns posts matching params
func (s *WpPostsService) List(ctx context.Context, params domain.ListParams) ([]domain.WpPost, error) {
	params = params.Normalize()
	posts, err := query.Fetch(ctx, s.client, query.WpPostsKey(params), s.opts, func(ctx context.Context) ([]domain.WpPost, error) {
		return s.api.List(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Get returns one post
func (s *WpPostsService) Get(ctx context.Context, id int64) (*domain.WpPost, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	post, err := query.Fetch(ctx, s.client, query.WpPostKey(id), s.opts, func(ctx context.Context) (*domain.WpPost, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return post, nil
}

// Create adds a post
func (s *WpPostsService) Create(ctx context.Context, in *domain.WpPostInput) (*domain.WpPost, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.WpPost, error) {
		return s.api.Create(ctx, in)
	}, postFamilies)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.InfoContext(ctx, "post created", slog.Int64("post_id", int64(post.ID)))
	enqueueSitemap(ctx, s.tasks, s.logger, "post created")
	return post, nil
}

// Update replaces a post
func (s *WpPostsService) Update(ctx context.Context, id int64, in *domain.WpPostInput) (*domain.WpPost, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.WpPost, error) {
		return s.api.Update(ctx, id, in)
	}, postFamilies)
	if err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "post updated", slog.Int64("post_id", id))
	enqueueSitemap(ctx, s.tasks, s.logger, "post updated")
	return post, nil
}

// Delete removes a post
func (s *WpPostsService) Delete(ctx context.Context, id int64) error {
	_, err := query.Mutate(ctx, s.client, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.Delete(ctx, id)
	}, postFamilies)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "post deleted", slog.Int64("post_id", id))
	enqueueSitemap(ctx, s.tasks, s.logger, "post deleted")
	return nil
}

// Meta returns every meta entry of a post
func (s *WpPostsService) Meta(ctx context.Context, id int64) (map[string]any, error) {
	meta, err := query.Fetch(ctx, s.client, query.WpPostMetaKey(id, ""), s.opts, func(ctx context.Context) (map[string]any, error) {
		return s.api.Meta(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get meta of post %d: %w", id, err)
	}
	return meta, nil
}

// GetMeta returns one meta entry of a post
func (s *WpPostsService) GetMeta(ctx context.Context, id int64, key string) (*domain.WpPostMeta, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	meta, err := query.Fetch(ctx, s.client, query.WpPostMetaKey(id, key), s.opts, func(ctx context.Context) (*domain.WpPostMeta, error) {
		return s.api.GetMeta(ctx, id, key)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get meta %q of post %d: %w", key, id, err)
	}
	return meta, nil
}

// SetMeta writes one meta entry of a post
func (s *WpPostsService) SetMeta(ctx context.Context, id int64, key string, value any) (*domain.WpPostMeta, error) {
	if strings.TrimSpace(key) == "" {
		errs := domain.FieldErrors{}
		errs.Add("key", "Meta key is required")
		return nil, errs
	}

	meta, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.WpPostMeta, error) {
		return s.api.SetMeta(ctx, id, key, value)
	}, postFamilies)
	if err != nil {
		return nil, fmt.Errorf("failed to set meta %q of post %d: %w", key, id, err)
	}
	return meta, nil
}
