// internal/adapters/apiclient/admin_parts.go
package apiclient

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// AdminPartsAPI manages parts for the admin console
type AdminPartsAPI struct {
	c      *Client
	logger *slog.Logger
}

var _ ports.AdminPartsAPI = (*AdminPartsAPI)(nil)

// NewAdminPartsAPI creates a new admin parts resource
func NewAdminPartsAPI(c *Client) *AdminPartsAPI {
	return &AdminPartsAPI{c: c, logger: c.logger.With(slog.String("resource", "admin-parts"))}
}

// Create adds a part and returns it normalized
func (a *AdminPartsAPI) Create(ctx context.Context, in *domain.PartInput) (*domain.Part, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "admin/parts", nil, in)
	if err != nil {
		return nil, err
	}
	return a.decode(body)
}

// Update replaces a part's fields
func (a *AdminPartsAPI) Update(ctx context.Context, id string, in *domain.PartInput) (*domain.Part, error) {
	body, err := a.c.doJSON(ctx, http.MethodPut, "admin/parts/"+pathID(id), nil, in)
	if err != nil {
		return nil, err
	}
	return a.decode(body)
}

// Delete removes a part
func (a *AdminPartsAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.doJSON(ctx, http.MethodDelete, "admin/parts/"+pathID(id), nil, nil)
	return err
}

func (a *AdminPartsAPI) decode(body []byte) (*domain.Part, error) {
	raw, err := unwrap[domain.RawPart](body, "part")
	if err != nil {
		return nil, err
	}
	part := domain.NormalizePart(raw, a.logger)
	return &part, nil
}
