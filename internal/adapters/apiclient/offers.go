// internal/adapters/apiclient/offers.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/samber/lo"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// OffersAPI manages customer offers. The routes sit under admin/ so the
// bearer token is attached.
type OffersAPI struct {
	c *Client
}

var _ ports.OffersAPI = (*OffersAPI)(nil)

// NewOffersAPI creates a new offers resource
func NewOffersAPI(c *Client) *OffersAPI {
	return &OffersAPI{c: c}
}

// List fetches one page of offers with statuses normalized
func (a *OffersAPI) List(ctx context.Context, params domain.ListParams) (*domain.OffersPage, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "admin/offers", listQuery(params), nil)
	if err != nil {
		return nil, err
	}

	records, pagination, err := decodePage[domain.OfferRecord](body, "offers")
	if err != nil {
		return nil, err
	}

	return &domain.OffersPage{
		Items: lo.Map(records, func(rec domain.OfferRecord, _ int) domain.OfferItem {
			return domain.NormalizeOffer(rec)
		}),
		Pagination: pagination,
	}, nil
}

// UpdateStatus changes an offer's status
func (a *OffersAPI) UpdateStatus(ctx context.Context, id string, status domain.OfferStatus) (*domain.OfferItem, error) {
	body, err := a.c.doJSON(ctx, http.MethodPatch, "admin/offers/"+pathID(id), nil,
		domain.OfferStatusUpdate{Status: status})
	if err != nil {
		return nil, err
	}

	rec, err := unwrap[domain.OfferRecord](body, "offer")
	if err != nil {
		return nil, err
	}

	offer := domain.NormalizeOffer(rec)
	return &offer, nil
}

// Delete removes an offer
func (a *OffersAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.doJSON(ctx, http.MethodDelete, "admin/offers/"+pathID(id), nil, nil)
	return err
}
