// internal/core/services/catalog.go
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

// CatalogService serves vehicle collections, filter options and public cars
type CatalogService struct {
	collections ports.CollectionsAPI
	filters     ports.FiltersAPI
	cars        ports.CarsAPI
	client      *query.Client
	opts        query.Options
	logger      *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(collections ports.CollectionsAPI, filters ports.FiltersAPI, cars ports.CarsAPI, client *query.Client, opts query.Options, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		collections: collections,
		filters:     filters,
		cars:        cars,
		client:      client,
		opts:        opts,
		logger:      logger.With(slog.String("service", "catalog")),
	}
}

// Makes returns every vehicle make
func (s *CatalogService) Makes(ctx context.Context) ([]domain.Make, error) {
	makes, err := query.Fetch(ctx, s.client, query.MakesKey(), s.opts, s.collections.Makes)
	if err != nil {
		return nil, fmt.Errorf("failed to list makes: %w", err)
	}
	return makes, nil
}

// Models returns the models of a make. Without a make there is nothing to
// ask for and the result is empty.
func (s *CatalogService) Models(ctx context.Context, makeName string) ([]domain.Model, error) {
	makeName = strings.TrimSpace(makeName)
	if makeName == "" {
		return []domain.Model{}, nil
	}

	models, err := query.Fetch(ctx, s.client, query.ModelsKey(makeName), s.opts, func(ctx context.Context) ([]domain.Model, error) {
		return s.collections.Models(ctx, makeName)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list models for %s: %w", makeName, err)
	}
	return models, nil
}

// Filters returns the filter options narrowed by the current selection
func (s *CatalogService) Filters(ctx context.Context, params domain.PartsParams) (*domain.FilterOptions, error) {
	opts, err := query.Fetch(ctx, s.client, query.FiltersKey(params), s.opts, func(ctx context.Context) (*domain.FilterOptions, error) {
		return s.filters.Get(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load filters: %w", err)
	}
	return opts, nil
}

// Cars returns one page of public cars
func (s *CatalogService) Cars(ctx context.Context, params domain.CarsParams) (*domain.CarsPage, error) {
	params = params.Normalize()
	page, err := query.Fetch(ctx, s.client, query.CarsKey(params), s.opts, func(ctx context.Context) (*domain.CarsPage, error) {
		return s.cars.List(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return page, nil
}

// Car returns a single public car
func (s *CatalogService) Car(ctx context.Context, id string) (*domain.Car, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	car, err := query.Fetch(ctx, s.client, query.CarKey(id), s.opts, func(ctx context.Context) (*domain.Car, error) {
		return s.cars.Get(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get car %s: %w", id, err)
	}
	return car, nil
}
