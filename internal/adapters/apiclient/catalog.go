// internal/adapters/apiclient/catalog.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// CollectionsAPI lists makes and models
type CollectionsAPI struct {
	c *Client
}

var _ ports.CollectionsAPI = (*CollectionsAPI)(nil)

// NewCollectionsAPI creates a new collections resource
func NewCollectionsAPI(c *Client) *CollectionsAPI {
	return &CollectionsAPI{c: c}
}

// Makes lists all vehicle makes
func (a *CollectionsAPI) Makes(ctx context.Context) ([]domain.Make, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "collections/makes", nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]domain.Make](body, "makes")
}

// Models lists the models of a make, or every model when makeName is empty
func (a *CollectionsAPI) Models(ctx context.Context, makeName string) ([]domain.Model, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "collections/models",
		NewQuery().Set("make", makeName).Values(), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]domain.Model](body, "models")
}

// FiltersAPI returns filter options
type FiltersAPI struct {
	c *Client
}

var _ ports.FiltersAPI = (*FiltersAPI)(nil)

// NewFiltersAPI creates a new filters resource
func NewFiltersAPI(c *Client) *FiltersAPI {
	return &FiltersAPI{c: c}
}

// Get fetches the filter options for the current selection. Paging is
// irrelevant here and is not sent.
func (a *FiltersAPI) Get(ctx context.Context, params domain.PartsParams) (*domain.FilterOptions, error) {
	q := NewQuery().
		Set("year", params.Year).
		Set("make", params.Make).
		Set("model", params.Model).
		Set("category", params.Category)

	body, err := a.c.doJSON(ctx, http.MethodGet, "filters", q.Values(), nil)
	if err != nil {
		return nil, err
	}

	opts, err := unwrap[domain.FilterOptions](body, "filters")
	if err != nil {
		return nil, err
	}
	return &opts, nil
}

// ReviewsAPI lists testimonials
type ReviewsAPI struct {
	c *Client
}

var _ ports.ReviewsAPI = (*ReviewsAPI)(nil)

// NewReviewsAPI creates a new reviews resource
func NewReviewsAPI(c *Client) *ReviewsAPI {
	return &ReviewsAPI{c: c}
}

// List fetches up to limit reviews; zero means the backend default
func (a *ReviewsAPI) List(ctx context.Context, limit int) ([]domain.Review, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "reviews", NewQuery().Set("limit", limit).Values(), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]domain.Review](body, "reviews")
}
