// internal/core/services/offers.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
)

// OffersService lists and moderates customer offers
type OffersService struct {
	api    ports.OffersAPI
	client *query.Client
	opts   query.Options
	logger *slog.Logger
}

// NewOffersService creates a new offers service
func NewOffersService(api ports.OffersAPI, client *query.Client, opts query.Options, logger *slog.Logger) *OffersService {
	return &OffersService{
		api:    api,
		client: client,
		opts:   opts,
		logger: logger.With(slog.String("service", "offers")),
	}
}

// List returns one page of offers with normalized statuses
func (s *OffersService) List(ctx context.Context, params domain.ListParams) (*domain.OffersPage, error) {
	params = params.Normalize()
	page, err := query.Fetch(ctx, s.client, query.OffersKey(params), s.opts, func(ctx context.Context) (*domain.OffersPage, error) {
		return s.api.List(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return page, nil
}

// UpdateStatus moves an offer to a new status. Only the statuses an admin
// can pick are accepted.
func (s *OffersService) UpdateStatus(ctx context.Context, id string, status domain.OfferStatus) (*domain.OfferItem, error) {
	switch status {
	case domain.OfferStatusNew, domain.OfferStatusApproved, domain.OfferStatusRejected, domain.OfferStatusRead:
	default:
		errs := domain.FieldErrors{}
		errs.Add("status", "Status must be new, approved, rejected or read")
		return nil, errs
	}

	item, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.OfferItem, error) {
		return s.api.UpdateStatus(ctx, id, status)
	}, []query.Family{query.FamilyOffers})
	if err != nil {
		return nil, fmt.Errorf("failed to update offer %s: %w", id, err)
	}

	s.logger.InfoContext(ctx, "offer status updated",
		slog.String("offer_id", id),
		slog.String("status", string(status)))

	return item, nil
}

// Delete removes an offer
func (s *OffersService) Delete(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, s.client, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.Delete(ctx, id)
	}, []query.Family{query.FamilyOffers})
	if err != nil {
		return fmt.Errorf("failed to delete offer %s: %w", id, err)
	}

	s.logger.InfoContext(ctx, "offer deleted", slog.String("offer_id", id))
	return nil
}
