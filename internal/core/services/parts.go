// internal/core/services/parts.go
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

// PartsService serves the public parts catalog through the query cache
type PartsService struct {
	api    ports.PartsAPI
	client *query.Client
	opts   query.Options
	logger *slog.Logger
}

// NewPartsService creates a new parts service
func NewPartsService(api ports.PartsAPI, client *query.Client, opts query.Options, logger *slog.Logger) *PartsService {
	return &PartsService{
		api:    api,
		client: client,
		opts:   opts,
		logger: logger.With(slog.String("service", "parts")),
	}
}

// List returns one page of parts for the given filters
func (s *PartsService) List(ctx context.Context, params domain.PartsParams) (*domain.PartsPage, error) {
	params = params.Normalize()
	page, err := query.Fetch(ctx, s.client, query.PartsKey(params), s.opts, func(ctx context.Context) (*domain.PartsPage, error) {
		return s.api.List(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	return page, nil
}

// Get returns a single part
func (s *PartsService) Get(ctx context.Context, id string) (*domain.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	part, err := query.Fetch(ctx, s.client, query.PartKey(id), s.opts, func(ctx context.Context) (*domain.Part, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get part %s: %w", id, err)
	}
	return part, nil
}

// WatchList returns an observer over parts listings. The observer keeps
// the previous page visible while the next one loads; callers drive it with
// SetKey(PartsKey(params)) and must Close it.
func (s *PartsService) WatchList() *query.Observer[*domain.PartsPage] {
	return query.NewObserver(s.client, query.CatalogBrowsing(s.opts), func(ctx context.Context, key query.Key) (*domain.PartsPage, error) {
		return s.api.List(ctx, paramsFromKey(key))
	})
}

// paramsFromKey rebuilds the listing parameters encoded in a parts key
func paramsFromKey(key query.Key) domain.PartsParams {
	str := func(name string) string {
		s, _ := key.Params[name].(string)
		return s
	}
	page, _ := key.Params["page"].(int)
	size, _ := key.Params["pageSize"].(int)

	return domain.PartsParams{
		Page:     page,
		PageSize: size,
		Year:     str("year"),
		Make:     str("make"),
		Model:    str("model"),
		Category: str("category"),
		Q:        str("q"),
	}.Normalize()
}
