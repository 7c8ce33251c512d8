// internal/core/services/admin_cars.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
)

// AdminCarsService manages the car inventory from the admin console
type AdminCarsService struct {
	api    ports.AdminCarsAPI
	client *query.Client
	tasks  ports.TaskEnqueuer
	opts   query.Options
	logger *slog.Logger
}

// NewAdminCarsService creates a new admin cars service. tasks may be nil.
func NewAdminCarsService(api ports.AdminCarsAPI, client *query.Client, tasks ports.TaskEnqueuer, opts query.Options, logger *slog.Logger) *AdminCarsService {
	return &AdminCarsService{
		api:    api,
		client: client,
		tasks:  tasks,
		opts:   opts,
		logger: logger.With(slog.String("service", "admin_cars")),
	}
}

// a car write changes both the admin and public listings
var carFamilies = []query.Family{query.FamilyAdminCars, query.FamilyCars, query.FamilyCar}

// List returns one page of cars
func (s *AdminCarsService) List(ctx context.Context, params domain.CarsParams) (*domain.CarsPage, error) {
	params = params.Normalize()
	page, err := query.Fetch(ctx, s.client, query.AdminCarsKey(params), s.opts, func(ctx context.Context) (*domain.CarsPage, error) {
		return s.api.List(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return page, nil
}

// Get returns one car
func (s *AdminCarsService) Get(ctx context.Context, id int64) (*domain.Car, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	car, err := query.Fetch(ctx, s.client, query.AdminCarKey(id), s.opts, func(ctx context.Context) (*domain.Car, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get car %d: %w", id, err)
	}
	return car, nil
}

// Create adds a car
func (s *AdminCarsService) Create(ctx context.Context, in *domain.CarInput) (*domain.Car, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	car, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.Car, error) {
		return s.api.Create(ctx, in)
	}, carFamilies)
	if err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	s.logger.InfoContext(ctx, "car created", slog.Int64("car_id", car.EffectiveID()))
	enqueueSitemap(ctx, s.tasks, s.logger, "car created")
	return car, nil
}

// Update replaces a car
func (s *AdminCarsService) Update(ctx context.Context, id int64, in *domain.CarInput) (*domain.Car, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	car, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.Car, error) {
		return s.api.Update(ctx, id, in)
	}, carFamilies)
	if err != nil {
		return nil, fmt.Errorf("failed to update car %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "car updated", slog.Int64("car_id", id))
	return car, nil
}

// Delete removes a car
func (s *AdminCarsService) Delete(ctx context.Context, id int64) error {
	_, err := query.Mutate(ctx, s.client, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.Delete(ctx, id)
	}, carFamilies)
	if err != nil {
		return fmt.Errorf("failed to delete car %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "car deleted", slog.Int64("car_id", id))
	enqueueSitemap(ctx, s.tasks, s.logger, "car deleted")
	return nil
}
