// internal/adapters/apiclient/wp_posts.go
package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// WpPostsAPI manages content posts
type WpPostsAPI struct {
	c *Client
}

var _ ports.WpPostsAPI = (*WpPostsAPI)(nil)

// NewWpPostsAPI creates a new posts resource
func NewWpPostsAPI(c *Client) *WpPostsAPI {
	return &WpPostsAPI{c: c}
}

func postPath(id int64) string {
	return "wp-posts/" + strconv.FormatInt(id, 10)
}

// List fetches posts
func (a *WpPostsAPI) List(ctx context.Context, params domain.ListParams) ([]domain.WpPost, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "wp-posts", listQuery(params), nil)
	if err != nil {
		return nil, err
	}
	posts, _, err := decodePage[domain.WpPost](body, "posts")
	return posts, err
}

// Get fetches one post
func (a *WpPostsAPI) Get(ctx context.Context, id int64) (*domain.WpPost, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, postPath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodePost(body)
}

// Create adds a post
func (a *WpPostsAPI) Create(ctx context.Context, in *domain.WpPostInput) (*domain.WpPost, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "wp-posts", nil, in)
	if err != nil {
		return nil, err
	}
	return decodePost(body)
}

// Update replaces a post
func (a *WpPostsAPI) Update(ctx context.Context, id int64, in *domain.WpPostInput) (*domain.WpPost, error) {
	body, err := a.c.doJSON(ctx, http.MethodPut, postPath(id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodePost(body)
}

// Delete removes a post
func (a *WpPostsAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.c.doJSON(ctx, http.MethodDelete, postPath(id), nil, nil)
	return err
}

// Meta fetches every meta entry of a post
func (a *WpPostsAPI) Meta(ctx context.Context, id int64) (map[string]any, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, postPath(id)+"/meta", nil, nil)
	if err != nil {
		return nil, err
	}

	meta, err := unwrap[map[string]any](body, "meta")
	if err != nil {
		return nil, err
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, nil
}

// GetMeta fetches a single meta entry
func (a *WpPostsAPI) GetMeta(ctx context.Context, id int64, key string) (*domain.WpPostMeta, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, postPath(id)+"/meta/"+pathID(key), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeMeta(body, key)
}

// SetMeta writes a single meta entry
func (a *WpPostsAPI) SetMeta(ctx context.Context, id int64, key string, value any) (*domain.WpPostMeta, error) {
	body, err := a.c.doJSON(ctx, http.MethodPut, postPath(id)+"/meta/"+pathID(key), nil,
		map[string]any{"value": value})
	if err != nil {
		return nil, err
	}
	return decodeMeta(body, key)
}

func decodePost(body []byte) (*domain.WpPost, error) {
	post, err := unwrap[domain.WpPost](body, "post")
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func decodeMeta(body []byte, key string) (*domain.WpPostMeta, error) {
	meta, err := unwrap[domain.WpPostMeta](body)
	if err != nil {
		return nil, err
	}
	if meta.Key == "" {
		meta.Key = key
	}
	return &meta, nil
}
